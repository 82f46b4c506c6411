package domain

// Frequency is how often a subscription bills.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// IsValid reports whether f is a known billing frequency.
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// SubscriptionPlan is a recurring payment the user tracks.
type SubscriptionPlan struct {
	ID          *int64    `json:"id,omitempty"`
	ServiceName string    `json:"service_name"`
	Plan        *string   `json:"plan,omitempty"`
	Amount      *float64  `json:"amount,omitempty"`
	Frequency   Frequency `json:"frequency"`
	RenewalDate *Date     `json:"renewal_date,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
}

// NewSubscriptionPlan creates a plan for serviceName billed at frequency.
func NewSubscriptionPlan(serviceName string, frequency Frequency) SubscriptionPlan {
	return SubscriptionPlan{
		ServiceName: serviceName,
		Frequency:   frequency,
	}
}

// Identity returns the store-assigned id, if any.
func (s SubscriptionPlan) Identity() (int64, bool) {
	if s.ID == nil {
		return 0, false
	}
	return *s.ID, true
}

// WithIdentity returns a copy of the plan carrying id.
func (s SubscriptionPlan) WithIdentity(id int64) SubscriptionPlan {
	s.ID = &id
	return s
}

// IsValid checks the frequency and that the amount is not negative.
func (s SubscriptionPlan) IsValid() bool {
	if !s.Frequency.IsValid() {
		return false
	}
	if s.Amount != nil && *s.Amount < 0 {
		return false
	}
	return true
}

// AmountOrZero returns the billing amount, treating a missing amount as zero.
func (s SubscriptionPlan) AmountOrZero() float64 {
	if s.Amount == nil {
		return 0
	}
	return *s.Amount
}
