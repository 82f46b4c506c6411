package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"my-admin/internal/domain"
	"my-admin/internal/services"
)

// SubscriptionAddCommand handles the sub add command
type SubscriptionAddCommand struct {
	app       *App
	amount    float64
	frequency string
	plan      string
	renewal   string
	notes     string
}

// NewSubscriptionAddCommand creates a new sub add command handler
func NewSubscriptionAddCommand(app *App) *SubscriptionAddCommand {
	return &SubscriptionAddCommand{app: app, frequency: string(domain.FrequencyMonthly)}
}

// Execute runs the sub add command
func (c *SubscriptionAddCommand) Execute(ctx context.Context, args []string) error {
	renewal, err := parseDate("renewal", c.renewal)
	if err != nil {
		return c.app.errorHandler.Handle("add subscription", err)
	}

	plan := domain.NewSubscriptionPlan(strings.Join(args, " "), domain.Frequency(c.frequency))
	amount := c.amount
	plan.Amount = &amount
	plan.RenewalDate = renewal
	if c.plan != "" {
		plan.Plan = &c.plan
	}
	if c.notes != "" {
		plan.Notes = &c.notes
	}

	saved, err := c.app.services.SubscriptionService.CreateSubscription(ctx, plan)
	if err != nil {
		return c.app.errorHandler.Handle("add subscription", err)
	}

	c.app.println("Added subscription " + describePlan(saved))
	return nil
}

// describePlan renders "id: name (amount frequency, monthly per month)".
func describePlan(plan domain.SubscriptionPlan) string {
	id, _ := plan.Identity()
	return fmt.Sprintf("%d: %s (%.2f %s, %.2f per month)",
		id, plan.ServiceName, plan.AmountOrZero(), plan.Frequency, services.MonthlyEquivalent(plan))
}

// SubscriptionEditCommand handles the sub edit command. Nil fields keep their
// stored value; an empty plan, renewal or notes clears it.
type SubscriptionEditCommand struct {
	app       *App
	service   *string
	amount    *float64
	frequency *string
	plan      *string
	renewal   *string
	notes     *string
}

// NewSubscriptionEditCommand creates a new sub edit command handler
func NewSubscriptionEditCommand(app *App) *SubscriptionEditCommand {
	return &SubscriptionEditCommand{app: app}
}

func (c *SubscriptionEditCommand) hasChanges() bool {
	return c.service != nil || c.amount != nil || c.frequency != nil ||
		c.plan != nil || c.renewal != nil || c.notes != nil
}

// Execute runs the sub edit command. The first argument is the subscription id.
func (c *SubscriptionEditCommand) Execute(ctx context.Context, args []string) error {
	const operation = "edit subscription"
	if !c.hasChanges() {
		return c.app.errorHandler.Handle(operation, errNothingToChange())
	}
	id, err := parseID("id", firstArg(args))
	if err != nil {
		return c.app.errorHandler.Handle(operation, err)
	}

	plan, err := c.app.services.SubscriptionService.GetSubscription(ctx, id)
	if err != nil {
		return c.app.errorHandler.Handle(operation, err)
	}
	if c.service != nil {
		plan.ServiceName = *c.service
	}
	if c.amount != nil {
		amount := *c.amount
		plan.Amount = &amount
	}
	if c.frequency != nil {
		plan.Frequency = domain.Frequency(*c.frequency)
	}
	if c.plan != nil {
		plan.Plan = optional(*c.plan)
	}
	if c.notes != nil {
		plan.Notes = optional(*c.notes)
	}
	if c.renewal != nil {
		if plan.RenewalDate, err = parseDate("renewal", *c.renewal); err != nil {
			return c.app.errorHandler.Handle(operation, err)
		}
	}

	updated, err := c.app.services.SubscriptionService.UpdateSubscription(ctx, plan)
	if err != nil {
		return c.app.errorHandler.Handle(operation, err)
	}
	c.app.println("Updated subscription " + describePlan(updated))
	return nil
}

// optional returns nil for an empty string.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// SubscriptionListCommand handles the sub list command
type SubscriptionListCommand struct {
	app *App
}

// NewSubscriptionListCommand creates a new sub list command handler
func NewSubscriptionListCommand(app *App) *SubscriptionListCommand {
	return &SubscriptionListCommand{app: app}
}

// Execute runs the sub list command
func (c *SubscriptionListCommand) Execute(ctx context.Context, args []string) error {
	svc := c.app.services.SubscriptionService
	plans, err := svc.ListSubscriptions(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("list subscriptions", err)
	}

	if len(plans) == 0 {
		c.app.println("No subscriptions found")
		return nil
	}

	c.app.printf("%-5s %-20s %-10s %10s %10s %-11s %s\n", "ID", "Service", "Frequency", "Amount", "Monthly", "Renewal", "Plan")
	c.app.println(c.app.rule("-"))
	for _, plan := range plans {
		id, _ := plan.Identity()
		renewal := "-"
		if plan.RenewalDate != nil {
			renewal = plan.RenewalDate.String()
			if urgency, _ := svc.Urgency(plan); urgency == services.UrgencyOverdue {
				renewal += "!"
			}
		}
		name := ""
		if plan.Plan != nil {
			name = *plan.Plan
		}
		c.app.printf("%-5d %-20s %-10s %10.2f %10.2f %-11s %s\n",
			id, plan.ServiceName, plan.Frequency, plan.AmountOrZero(), services.MonthlyEquivalent(plan), renewal, name)
	}

	summary, err := svc.CostSummary(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("list subscriptions", err)
	}
	c.app.println(c.app.rule("-"))
	c.app.printf("%d subscriptions: %.2f per month, %.2f per year\n", summary.Count, summary.Monthly, summary.Yearly)
	return nil
}

// SubscriptionRenewalsCommand handles the sub renewals command
type SubscriptionRenewalsCommand struct {
	app  *App
	days int
}

// NewSubscriptionRenewalsCommand creates a new sub renewals command handler
func NewSubscriptionRenewalsCommand(app *App) *SubscriptionRenewalsCommand {
	return &SubscriptionRenewalsCommand{app: app, days: app.config.Subscriptions.RenewalWindowDays}
}

// Execute runs the sub renewals command
func (c *SubscriptionRenewalsCommand) Execute(ctx context.Context, args []string) error {
	renewals, err := c.app.services.SubscriptionService.UpcomingRenewals(ctx, c.days)
	if err != nil {
		return c.app.errorHandler.Handle("list renewals", err)
	}

	if len(renewals) == 0 {
		c.app.printf("No renewals in the next %d days\n", c.days)
		return nil
	}

	for _, r := range renewals {
		c.app.printf("%-11s %-9s %s\n", r.Plan.RenewalDate.String(), r.Urgency, renewalLine(r))
	}
	return nil
}

func renewalLine(r services.Renewal) string {
	switch r.DaysLeft {
	case 0:
		return r.Plan.ServiceName + " renews today"
	case 1:
		return r.Plan.ServiceName + " renews tomorrow"
	}
	return r.Plan.ServiceName + " renews in " + strconv.Itoa(r.DaysLeft) + " days"
}
