package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"localeaudit/internal/adapters/discord"
	"localeaudit/internal/application"
	"localeaudit/internal/config"
	"localeaudit/internal/domain"
	"localeaudit/internal/infrastructure/database"
	"localeaudit/internal/infrastructure/i18n"
	"localeaudit/internal/infrastructure/locale"
	"localeaudit/internal/infrastructure/logging"
)

// BuildInfo is stamped at link time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// App holds what the commands share once the configuration is loaded.
type App struct {
	info       BuildInfo
	loadConfig func() (*config.Config, error)
	out        io.Writer
	errOut     io.Writer

	debug bool
	cfg   *config.Config
	log   *logrus.Entry
}

func New(info BuildInfo, out, errOut io.Writer) *App {
	return &App{
		info:       info,
		loadConfig: config.Load,
		out:        out,
		errOut:     errOut,
		log:        logging.New(errOut, logrus.WarnLevel, info.Version),
	}
}

// WithConfigLoader replaces the environment based configuration loader.
func (a *App) WithConfigLoader(load func() (*config.Config, error)) *App {
	a.loadConfig = load
	return a
}

// Run executes the command line and returns the process exit status.
func (a *App) Run(args []string) int {
	cmd := a.Command()
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err != nil {
		report(err, a.errOut, a.log)
	}
	return ExitCode(err)
}

// setup loads the configuration and the logger before any command runs.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	if a.debug {
		cfg.LogLevel = logrus.DebugLevel
	}
	a.cfg = cfg
	a.log = logging.New(a.errOut, cfg.LogLevel, a.info.Version).WithField("command", cmd.Name())
	return nil
}

func (a *App) auditService() *application.AuditService {
	loader := locale.NewLoader(a.log)
	locator := locale.NewLocator(a.cfg.LocaleRoot, loader.Supports)
	return application.NewAuditService(
		locator,
		loader,
		i18n.NewFactory(a.log),
		a.cfg.LocalesAvailable,
		a.cfg.PathAnchor,
		a.log,
	)
}

// historyService connects to the audit history database. The returned func
// releases the pool.
func (a *App) historyService(ctx context.Context) (*application.HistoryService, func(), error) {
	if !a.cfg.HistoryEnabled() {
		return nil, nil, fmt.Errorf("%w: DATABASE_URL is required for the audit history", domain.ErrInvalidConfig)
	}
	if err := database.RunMigrations(a.cfg.DatabaseURL, a.cfg.MigrationsPath, a.log); err != nil {
		return nil, nil, err
	}
	pool, err := database.NewPool(ctx, a.cfg.DatabaseURL, a.log)
	if err != nil {
		return nil, nil, fmt.Errorf("connect audit history: %w", err)
	}
	repo := database.NewAuditRepository(pool)
	return application.NewHistoryService(repo, a.log), pool.Close, nil
}

func (a *App) notifyService() (*application.NotifyService, error) {
	if !a.cfg.DiscordEnabled() {
		return nil, fmt.Errorf("%w: REPORT_CHANNEL_ID and DISCORD_TOKEN are required for --notify", domain.ErrInvalidConfig)
	}
	notifier, err := discord.NewNotifier(a.cfg.DiscordToken, a.cfg.ReportChannelID)
	if err != nil {
		return nil, err
	}
	return application.NewNotifyService(notifier, a.log), nil
}

// colored reports whether table headers get colour: only on a terminal stdout.
func (a *App) colored() bool {
	f, ok := a.out.(*os.File)
	return ok && f == os.Stdout && !color.NoColor
}
