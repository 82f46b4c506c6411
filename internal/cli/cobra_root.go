package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"my-admin/internal/config"
	"my-admin/internal/logging"
	"my-admin/internal/services"
)

// ContainerFactory builds the services for the final configuration. The
// returned release func closes whatever the services hold open.
type ContainerFactory func(ctx context.Context, cfg *config.Config) (*services.ServiceContainer, func() error, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	config  *config.Config
	factory ContainerFactory
	app     *App
	release func() error
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(cfg *config.Config, factory ContainerFactory) *RootCommand {
	root := &RootCommand{
		config:  cfg,
		factory: factory,
	}

	root.cmd = &cobra.Command{
		Use:   "myadmin",
		Short: "A personal productivity tracker",
		Long: `myadmin keeps a timesheet, a to-do list and a subscription ledger in one local store.

FEATURES:
  • Start, stop and pause a single running timer that survives restarts
  • Record past time entries and export them as CSV
  • Track tasks through pending, in progress and completed
  • Track subscriptions with monthly-equivalent costs and renewal reminders
  • Period statistics and charts for any date range

EXAMPLES:
  myadmin start "Write report" -c Documentation   # Start the timer
  myadmin current --watch                         # Show the running timer, live
  myadmin stop                                    # Stop the timer
  myadmin log list --range 7d                     # Entries from the last 7 days
  myadmin task add "Renew passport" --due 2025-04-01
  myadmin task edit 3 --due=                      # Clear a task's due date
  myadmin sub add Netflix --amount 1490 --frequency monthly --renewal 2025-04-03
  myadmin stats --preset month                    # This month's statistics
  myadmin chart --from 2025-03-01 --to 2025-03-31 # Weekly chart for March
  myadmin output format=csv > entries.csv         # Export time entries

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > .env file > defaults

  Storage Configuration:
    MYADMIN_DATA_DIR                       Data directory (default: per-platform app data dir)
    MYADMIN_DB_FILENAME                    Database filename (default: myadmin.db)
    MYADMIN_STORAGE_BACKEND                sqlite, memory or none (default: sqlite)
    MYADMIN_DB_QUERY_TIMEOUT               Query timeout (default: 10s)
    MYADMIN_DB_WRITE_TIMEOUT               Write timeout (default: 5s)

  Time and Display Configuration:
    MYADMIN_TIME_DISPLAY_FORMAT            Time format (default: 2006-01-02 15:04:05)
    MYADMIN_TIMEZONE                       IANA zone for calendar days (default: local)
    MYADMIN_DISPLAY_RUNNING_STATUS         Running status text (default: running)
    MYADMIN_DISPLAY_SUMMARY_WIDTH          Table width (default: 75)

  Validation Configuration:
    MYADMIN_VALIDATION_TITLE_MIN           Min title length (default: 1)
    MYADMIN_VALIDATION_TITLE_MAX           Max title length (default: 255)
    MYADMIN_VALIDATION_MAX_DURATION        Max time entry duration (default: 24h)

  Application Configuration:
    MYADMIN_APP_TIMEOUT                    Command timeout (default: 60s)
    MYADMIN_APP_VERBOSE                    Enable debug logging (default: false)
    MYADMIN_WATCH_INTERVAL                 current --watch refresh (default: 1s)
    MYADMIN_RENEWAL_WINDOW_DAYS            sub renewals look-ahead (default: 30)

TIME FORMATS:
  Use these shorthand formats with --range:
    30m, 2h, 1d, 2w, 3mo, 1y              # Minutes, hours, days, weeks, months, years`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Apply configuration overrides from flags before any command runs
			if err := root.getConfigFromFlags(); err != nil {
				return err
			}
			logging.Setup(root.config.Application.Verbose)
			return nil
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Command exposes the cobra command, mainly for tests to set args and output
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Execute runs the root command and releases the services afterwards
func (r *RootCommand) Execute() error {
	return r.ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx and releases the services afterwards
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	defer r.close()
	return r.cmd.ExecuteContext(ctx)
}

func (r *RootCommand) close() {
	if r.release == nil {
		return
	}
	if err := r.release(); err != nil {
		logging.WithComponent(nil, logging.ComponentCLI).Warn("failed to release storage", logging.FieldError, err)
	}
	r.release = nil
}

// appFor builds the services on first use so that help and completion never
// touch storage.
func (r *RootCommand) appFor(cmd *cobra.Command) (*App, error) {
	if r.app != nil {
		return r.app, nil
	}
	container, release, err := r.factory(cmd.Context(), r.config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	r.release = release
	r.app = NewApp(container, r.config, cmd.OutOrStdout(), cmd.InOrStdin())
	return r.app, nil
}

// handler is what every leaf command runs.
type handler interface {
	Execute(ctx context.Context, args []string) error
}

// run wraps a handler constructor into a cobra RunE with the application timeout.
func (r *RootCommand) run(build func(app *App, cmd *cobra.Command) handler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := r.appFor(cmd)
		if err != nil {
			return err
		}
		app.logger.Debug("running command", "command", cmd.CommandPath())
		ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
		defer cancel()
		return build(app, cmd).Execute(ctx, args)
	}
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Storage configuration
	flags.String("data-dir", "", "Data directory (overrides MYADMIN_DATA_DIR)")
	flags.String("db-filename", "", "Database filename (overrides MYADMIN_DB_FILENAME)")
	flags.String("storage", "", "Storage backend: sqlite, memory or none (overrides MYADMIN_STORAGE_BACKEND)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides MYADMIN_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides MYADMIN_DB_WRITE_TIMEOUT)")

	// Time configuration
	flags.String("time-format", "", "Time display format (overrides MYADMIN_TIME_DISPLAY_FORMAT)")
	flags.String("timezone", "", "IANA timezone for calendar days (overrides MYADMIN_TIMEZONE)")

	// Display configuration
	flags.Int("summary-width", 0, "Table width (overrides MYADMIN_DISPLAY_SUMMARY_WIDTH)")
	flags.String("running-status", "", "Running status text (overrides MYADMIN_DISPLAY_RUNNING_STATUS)")

	// Validation configuration
	flags.Int("title-min-length", 0, "Minimum title length (overrides MYADMIN_VALIDATION_TITLE_MIN)")
	flags.Int("title-max-length", 0, "Maximum title length (overrides MYADMIN_VALIDATION_TITLE_MAX)")
	flags.Duration("max-duration", 0, "Maximum time entry duration (overrides MYADMIN_VALIDATION_MAX_DURATION)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Command timeout (overrides MYADMIN_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable debug logging (overrides MYADMIN_APP_VERBOSE)")
	flags.Duration("watch-interval", 0, "Refresh interval of current --watch (overrides MYADMIN_WATCH_INTERVAL)")
	flags.Int("renewal-window", 0, "Days ahead shown by sub renewals (overrides MYADMIN_RENEWAL_WINDOW_DAYS)")
}

// addRangeFlags binds the shared date range selectors to target
func addRangeFlags(flags *pflag.FlagSet, target *rangeFlags) {
	flags.StringVar(&target.preset, "preset", "", "Preset range: today, week, month, last-week or last-month")
	flags.StringVar(&target.from, "from", "", "First day of the range (YYYY-MM-DD)")
	flags.StringVar(&target.to, "to", "", "Last day of the range (YYYY-MM-DD)")
	flags.StringVar(&target.shorthand, "range", "", "Range ending today, e.g. 7d, 2w, 3mo")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(
		r.startCommand(),
		r.stopCommand(),
		r.pauseCommand(),
		r.currentCommand(),
		r.resumeCommand(),
		r.logCommand(),
		r.taskCommand(),
		r.subscriptionCommand(),
		r.statsCommand(),
		r.chartCommand(),
		r.outputCommand(),
		r.infoCommand(),
	)
}

func (r *RootCommand) startCommand() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "start [title]",
		Short: "Start the timer",
		Long:  "Start the timer for a new time entry. Fails if a timer is already running.",
		Args:  cobra.MinimumNArgs(1),
		RunE: r.run(func(app *App, _ *cobra.Command) handler {
			h := NewStartCommand(app)
			h.category = category
			return h
		}),
	}
	cmd.Flags().StringVarP(&category, "category", "c", DefaultCategory, "Category of the entry")
	return cmd
}

func (r *RootCommand) stopCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the running timer",
		Args:  cobra.NoArgs,
		RunE: r.run(func(app *App, _ *cobra.Command) handler {
			return NewStopCommand(app)
		}),
	}
}

func (r *RootCommand) pauseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Pause the running timer",
		Long:  "Pause closes the running entry exactly like stop. Starting again opens a new entry.",
		Args:  cobra.NoArgs,
		RunE: r.run(func(app *App, _ *cobra.Command) handler {
			return NewPauseCommand(app)
		}),
	}
}

func (r *RootCommand) currentCommand() *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "current",
		Short: "Show the running timer",
		Long:  "Display the running entry and its elapsed time. With --watch the elapsed time refreshes until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.appFor(cmd)
			if err != nil {
				return err
			}
			h := NewCurrentCommand(app)
			h.watch = watch
			if watch {
				// Watching runs until interrupted, not until the app timeout.
				return h.Execute(cmd.Context(), args)
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()
			return h.Execute(ctx, args)
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Refresh the elapsed time continuously")
	return cmd
}

func (r *RootCommand) resumeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resume [time]",
		Short: "Start the timer for a recent entry",
		Long: `Choose a recent title and category from a menu and start the timer for it.

Examples:
  myadmin resume      # Choose from today's entries
  myadmin resume 3d   # Choose from entries in the last 3 days`,
		Args: cobra.MaximumNArgs(1),
		RunE: r.run(func(app *App, _ *cobra.Command) handler {
			return NewResumeCommand(app)
		}),
	}
}

func (r *RootCommand) logCommand() *cobra.Command {
	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Manage recorded time entries",
	}

	var ranges rangeFlags
	listCmd := &cobra.Command{
		Use:   "list [text]",
		Short: "List time entries, newest first",
		RunE: r.run(func(app *App, _ *cobra.Command) handler {
			h := NewListCommand(app)
			h.ranges = ranges
			return h
		}),
	}
	addRangeFlags(listCmd.Flags(), &ranges)

	add := &LogAddCommand{category: DefaultCategory}
	addCmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Record a finished time entry",
		RunE: r.run(func(app *App, _ *cobra.Command) handler {
			h := NewLogAddCommand(app)
			h.title, h.category, h.start, h.end = add.title, add.category, add.start, add.end
			return h
		}),
	}
	addCmd.Flags().StringVarP(&add.title, "title", "t", "", "Title of the entry")
	addCmd.Flags().StringVarP(&add.category, "category", "c", DefaultCategory, "Category of the entry")
	addCmd.Flags().StringVar(&add.start, "start", "", "Start time (YYYY-MM-DD HH:MM)")
	addCmd.Flags().StringVar(&add.end, "end", "", "End time (YYYY-MM-DD HH:MM)")
	_ = addCmd.MarkFlagRequired("start")
	_ = addCmd.MarkFlagRequired("end")

	edit := &LogAddCommand{}
	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a recorded time entry",
		Long:  "Change the given fields of a recorded entry. The running entry cannot be edited.",
		Args:  cobra.ExactArgs(1),
		RunE: r.run(func(app *App, cmd *cobra.Command) handler {
			h := NewLogEditCommand(app)
			h.title = changed(cmd, "title", edit.title)
			h.category = changed(cmd, "category", edit.category)
			h.start = changed(cmd, "start", edit.start)
			h.end = changed(cmd, "end", edit.end)
			return h
		}),
	}
	editCmd.Flags().StringVarP(&edit.title, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&edit.category, "category", "c", "", "New category")
	editCmd.Flags().StringVar(&edit.start, "start", "", "New start time (YYYY-MM-DD HH:MM)")
	editCmd.Flags().StringVar(&edit.end, "end", "", "New end time (YYYY-MM-DD HH:MM)")

	logCmd.AddCommand(listCmd, addCmd, editCmd, r.deleteCommand(kindEntry))
	return logCmd
}

func (r *RootCommand) taskCommand() *cobra.Command {
	taskCmd := &cobra.Command{
		Use:   "task",
		Short: "Manage the to-do list",
	}

	var due string
	addCmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a pending task",
		Args:  cobra.MinimumNArgs(1),
		RunE: r.run(func(app *App, _ *cobra.Command) handler {
			h := NewTaskAddCommand(app)
			h.due = due
			return h
		}),
	}
	addCmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")

	var status string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, due dates first",
		Args:  cobra.NoArgs,
		RunE: r.run(func(app *App, _ *cobra.Command) handler {
			h := NewTaskListCommand(app)
			h.status = status
			return h
		}),
	}
	listCmd.Flags().StringVar(&status, "status", "", "Only show tasks in this status")

	statusCmd := &cobra.Command{
		Use:   "status <id> <pending|in_progress|completed>",
		Short: "Set a task's status",
		Args:  cobra.ExactArgs(2),
		RunE: r.run(func(app *App, _ *cobra.Command) handler {
			return NewTaskStatusCommand(app)
		}),
	}

	toggleCmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Mark a task completed, or pending again",
		Args:  cobra.ExactArgs(1),
		RunE: r.run(func(app *App, _ *cobra.Command) handler {
			return NewTaskToggleCommand(app)
		}),
	}

	workCmd := &cobra.Command{
		Use:   "work <id>",
		Short: "Start or pause work on a task",
		Args:  cobra.ExactArgs(1),
		RunE: r.run(func(app *App, _ *cobra.Command) handler {
			return NewTaskWorkCommand(app)
		}),
	}

	var newTitle, newDue string
	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a task's title or due date",
		Long:  "Change a task's title or due date. An empty --due clears the due date.",
		Args:  cobra.ExactArgs(1),
		RunE: r.run(func(app *App, cmd *cobra.Command) handler {
			h := NewTaskEditCommand(app)
			h.title = changed(cmd, "title", newTitle)
			h.due = changed(cmd, "due", newDue)
			return h
		}),
	}
	editCmd.Flags().StringVar(&newTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&newDue, "due", "", "New due date (YYYY-MM-DD), empty to clear")

	taskCmd.AddCommand(addCmd, listCmd, editCmd, statusCmd, toggleCmd, workCmd, r.deleteCommand(kindTask))
	return taskCmd
}

func (r *RootCommand) subscriptionCommand() *cobra.Command {
	subCmd := &cobra.Command{
		Use:     "sub",
		Aliases: []string{"subscription"},
		Short:   "Manage subscriptions",
	}

	add := &SubscriptionAddCommand{}
	addCmd := &cobra.Command{
		Use:   "add <service>",
		Short: "Add a subscription",
		Args:  cobra.MinimumNArgs(1),
		RunE: r.run(func(app *App, _ *cobra.Command) handler {
			h := NewSubscriptionAddCommand(app)
			h.amount, h.frequency, h.plan, h.renewal, h.notes = add.amount, add.frequency, add.plan, add.renewal, add.notes
			return h
		}),
	}
	addCmd.Flags().Float64Var(&add.amount, "amount", 0, "Amount charged per billing period")
	addCmd.Flags().StringVar(&add.frequency, "frequency", "monthly", "Billing frequency: daily, weekly, monthly or yearly")
	addCmd.Flags().StringVar(&add.plan, "plan", "", "Plan name")
	addCmd.Flags().StringVar(&add.renewal, "renewal", "", "Next renewal date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&add.notes, "notes", "", "Free-form notes")
	_ = addCmd.MarkFlagRequired("amount")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List subscriptions with monthly-equivalent costs",
		Args:  cobra.NoArgs,
		RunE: r.run(func(app *App, _ *cobra.Command) handler {
			return NewSubscriptionListCommand(app)
		}),
	}

	var days int
	renewalsCmd := &cobra.Command{
		Use:   "renewals",
		Short: "List upcoming renewals",
		Args:  cobra.NoArgs,
		RunE: r.run(func(app *App, cmd *cobra.Command) handler {
			h := NewSubscriptionRenewalsCommand(app)
			if cmd.Flags().Changed("days") {
				h.days = days
			}
			return h
		}),
	}
	renewalsCmd.Flags().IntVar(&days, "days", 0, "Look-ahead window in days (default from MYADMIN_RENEWAL_WINDOW_DAYS)")

	var service string
	edit := &SubscriptionAddCommand{}
	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a subscription",
		Long:  "Change the given fields of a subscription. An empty --plan, --renewal or --notes clears that field.",
		Args:  cobra.ExactArgs(1),
		RunE: r.run(func(app *App, cmd *cobra.Command) handler {
			h := NewSubscriptionEditCommand(app)
			h.service = changed(cmd, "service", service)
			h.amount = changed(cmd, "amount", edit.amount)
			h.frequency = changed(cmd, "frequency", edit.frequency)
			h.plan = changed(cmd, "plan", edit.plan)
			h.renewal = changed(cmd, "renewal", edit.renewal)
			h.notes = changed(cmd, "notes", edit.notes)
			return h
		}),
	}
	editCmd.Flags().StringVar(&service, "service", "", "New service name")
	editCmd.Flags().Float64Var(&edit.amount, "amount", 0, "Amount charged per billing period")
	editCmd.Flags().StringVar(&edit.frequency, "frequency", "", "Billing frequency: daily, weekly, monthly or yearly")
	editCmd.Flags().StringVar(&edit.plan, "plan", "", "Plan name, empty to clear")
	editCmd.Flags().StringVar(&edit.renewal, "renewal", "", "Next renewal date (YYYY-MM-DD), empty to clear")
	editCmd.Flags().StringVar(&edit.notes, "notes", "", "Free-form notes, empty to clear")

	subCmd.AddCommand(addCmd, listCmd, editCmd, renewalsCmd, r.deleteCommand(kindSubscription))
	return subCmd
}

// changed returns a pointer to value when the flag was given on the command
// line, nil otherwise.
func changed[T any](cmd *cobra.Command, name string, value T) *T {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

func (r *RootCommand) deleteCommand(kind recordKind) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: fmt.Sprintf("Delete a %s", kind),
		Long:  fmt.Sprintf("Delete a %s. This cannot be undone; you are asked to confirm unless --yes is given.", kind),
		Args:  cobra.ExactArgs(1),
		RunE: r.run(func(app *App, _ *cobra.Command) handler {
			h := NewDeleteCommand(app, kind)
			h.yes = yes
			return h
		}),
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func (r *RootCommand) statsCommand() *cobra.Command {
	var ranges rangeFlags
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show statistics for a period",
		Long:  "Show tracked time, task progress and subscription costs. Defaults to the current week.",
		Args:  cobra.NoArgs,
		RunE: r.run(func(app *App, _ *cobra.Command) handler {
			h := NewStatsCommand(app)
			h.ranges = ranges
			return h
		}),
	}
	addRangeFlags(cmd.Flags(), &ranges)
	return cmd
}

func (r *RootCommand) chartCommand() *cobra.Command {
	var ranges rangeFlags
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Chart tracked hours for a period",
		Long:  "Chart tracked hours per day for ranges of up to seven days, per week otherwise. Defaults to the current week.",
		Args:  cobra.NoArgs,
		RunE: r.run(func(app *App, _ *cobra.Command) handler {
			h := NewChartCommand(app)
			h.ranges = ranges
			return h
		}),
	}
	addRangeFlags(cmd.Flags(), &ranges)
	return cmd
}

func (r *RootCommand) outputCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "output format=csv",
		Short: "Export time entries in the specified format",
		Long: `Export time entries in the specified format.

Supported formats:
  csv - Comma-separated values format

Example:
  myadmin output format=csv`,
		Args: cobra.ExactArgs(1),
		RunE: r.run(func(app *App, _ *cobra.Command) handler {
			return NewOutputCommand(app)
		}),
	}
}

func (r *RootCommand) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show where and how records are stored",
		Args:  cobra.NoArgs,
		RunE: r.run(func(app *App, _ *cobra.Command) handler {
			return NewInfoCommand(app)
		}),
	}
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if v, _ := flags.GetString("data-dir"); v != "" {
		overrides.DataDir = &v
	}
	if v, _ := flags.GetString("db-filename"); v != "" {
		overrides.DBFilename = &v
	}
	if v, _ := flags.GetString("storage"); v != "" {
		overrides.Backend = &v
	}
	if v, _ := flags.GetDuration("db-query-timeout"); v > 0 {
		overrides.QueryTimeout = &v
	}
	if v, _ := flags.GetDuration("db-write-timeout"); v > 0 {
		overrides.WriteTimeout = &v
	}

	if v, _ := flags.GetString("time-format"); v != "" {
		overrides.TimeFormat = &v
	}
	if v, _ := flags.GetString("timezone"); v != "" {
		overrides.Timezone = &v
	}

	if v, _ := flags.GetInt("summary-width"); v > 0 {
		overrides.SummaryWidth = &v
	}
	if v, _ := flags.GetString("running-status"); v != "" {
		overrides.RunningStatus = &v
	}

	if v, _ := flags.GetInt("title-min-length"); v > 0 {
		overrides.TitleMinLength = &v
	}
	if v, _ := flags.GetInt("title-max-length"); v > 0 {
		overrides.TitleMaxLength = &v
	}
	if v, _ := flags.GetDuration("max-duration"); v > 0 {
		overrides.MaxDuration = &v
	}

	if v, _ := flags.GetDuration("app-timeout"); v > 0 {
		overrides.Timeout = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}
	if v, _ := flags.GetDuration("watch-interval"); v > 0 {
		overrides.WatchInterval = &v
	}
	if v, _ := flags.GetInt("renewal-window"); v > 0 {
		overrides.RenewalWindowDays = &v
	}

	r.config.ApplyOverrides(overrides)
	return r.config.Validate()
}
