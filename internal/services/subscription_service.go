package services

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"my-admin/internal/clock"
	"my-admin/internal/domain"
	"my-admin/internal/errors"
	"my-admin/internal/logging"
	"my-admin/internal/repository"
	"my-admin/internal/validation"
)

// Renewal urgency thresholds in days.
const (
	soonDays     = 7
	upcomingDays = 30
)

type subscriptionServiceImpl struct {
	store     *repository.Store[domain.SubscriptionPlan]
	clock     clock.Clock
	loc       *time.Location
	validator *validation.SubscriptionValidator
	logger    *slog.Logger
}

// NewSubscriptionService creates a new SubscriptionService instance
func NewSubscriptionService(store *repository.Store[domain.SubscriptionPlan], clk clock.Clock, v *validation.Validator, loc *time.Location, logger *slog.Logger) SubscriptionService {
	if clk == nil {
		clk = clock.System()
	}
	if v == nil {
		v = validation.NewValidator()
	}
	return &subscriptionServiceImpl{
		store:     store,
		clock:     clk,
		loc:       loc,
		validator: validation.NewSubscriptionValidatorWith(v),
		logger:    logging.WithComponent(logger, logging.ComponentServices),
	}
}

func (s *subscriptionServiceImpl) CreateSubscription(ctx context.Context, plan domain.SubscriptionPlan) (domain.SubscriptionPlan, error) {
	plan.ServiceName = strings.TrimSpace(plan.ServiceName)
	if err := s.validator.ValidateSubscription(plan); err != nil {
		return domain.SubscriptionPlan{}, err
	}

	plan.ID = nil
	saved, err := s.store.Save(ctx, plan)
	if err != nil {
		return domain.SubscriptionPlan{}, err
	}
	id, _ := saved.Identity()
	s.logger.Debug("subscription created", logging.FieldID, id)
	return saved, nil
}

// UpdateSubscription re-saves an existing plan under its own identity.
func (s *subscriptionServiceImpl) UpdateSubscription(ctx context.Context, plan domain.SubscriptionPlan) (domain.SubscriptionPlan, error) {
	id, ok := plan.Identity()
	if !ok {
		return domain.SubscriptionPlan{}, errors.NewInvalidInputError("id", nil, "an existing subscription is required")
	}
	plan.ServiceName = strings.TrimSpace(plan.ServiceName)
	if err := s.validator.ValidateSubscription(plan); err != nil {
		return domain.SubscriptionPlan{}, err
	}
	if _, err := s.GetSubscription(ctx, id); err != nil {
		return domain.SubscriptionPlan{}, err
	}

	saved, err := s.store.Save(ctx, plan)
	if err != nil {
		return domain.SubscriptionPlan{}, err
	}
	s.logger.Debug("subscription updated", logging.FieldID, id)
	return saved, nil
}

func (s *subscriptionServiceImpl) GetSubscription(ctx context.Context, id int64) (domain.SubscriptionPlan, error) {
	if err := s.validator.ValidateSubscriptionID(id); err != nil {
		return domain.SubscriptionPlan{}, err
	}
	plan, found, err := s.store.GetByID(ctx, id)
	if err != nil {
		return domain.SubscriptionPlan{}, err
	}
	if !found {
		return domain.SubscriptionPlan{}, errors.NewNotFoundError("subscription", strconv.FormatInt(id, 10))
	}
	return plan, nil
}

// ListSubscriptions orders plans by renewal date, undated plans last by service name.
func (s *subscriptionServiceImpl) ListSubscriptions(ctx context.Context) ([]domain.SubscriptionPlan, error) {
	plans, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(plans, func(i, j int) bool {
		a, b := plans[i], plans[j]
		switch {
		case a.RenewalDate != nil && b.RenewalDate != nil:
			return a.RenewalDate.Before(*b.RenewalDate)
		case a.RenewalDate != nil:
			return true
		case b.RenewalDate != nil:
			return false
		}
		return a.ServiceName < b.ServiceName
	})
	return plans, nil
}

func (s *subscriptionServiceImpl) DeleteSubscription(ctx context.Context, id int64) error {
	if err := s.validator.ValidateSubscriptionID(id); err != nil {
		return err
	}
	removed, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return errors.NewNotFoundError("subscription", strconv.FormatInt(id, 10))
	}
	return nil
}

// CostSummary normalizes every plan to a monthly figure and projects a year of it.
func (s *subscriptionServiceImpl) CostSummary(ctx context.Context) (CostSummary, error) {
	plans, err := s.store.GetAll(ctx)
	if err != nil {
		return CostSummary{}, err
	}
	monthly := MonthlyEquivalentTotal(plans)
	return CostSummary{
		Count:   len(plans),
		Monthly: monthly,
		Yearly:  monthly * monthsPerYear,
	}, nil
}

// UpcomingRenewals returns plans renewing between today and windowDays from
// now, soonest first.
func (s *subscriptionServiceImpl) UpcomingRenewals(ctx context.Context, windowDays int) ([]Renewal, error) {
	plans, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	renewals := make([]Renewal, 0)
	for _, plan := range plans {
		urgency, daysLeft := s.Urgency(plan)
		if urgency == UrgencyNone || daysLeft < 0 || daysLeft > windowDays {
			continue
		}
		renewals = append(renewals, Renewal{Plan: plan, DaysLeft: daysLeft, Urgency: urgency})
	}

	sort.SliceStable(renewals, func(i, j int) bool {
		return renewals[i].DaysLeft < renewals[j].DaysLeft
	})
	return renewals, nil
}

// Urgency classifies a plan's renewal date relative to today and returns the
// days left, negative once the date has passed.
func (s *subscriptionServiceImpl) Urgency(plan domain.SubscriptionPlan) (Urgency, int) {
	if plan.RenewalDate == nil {
		return UrgencyNone, 0
	}
	today := domain.DateOf(s.clock.Now(), s.loc)
	daysLeft := today.DaysUntil(*plan.RenewalDate)

	switch {
	case daysLeft < 0:
		return UrgencyOverdue, daysLeft
	case daysLeft <= soonDays:
		return UrgencySoon, daysLeft
	case daysLeft <= upcomingDays:
		return UrgencyUpcoming, daysLeft
	default:
		return UrgencyLater, daysLeft
	}
}
