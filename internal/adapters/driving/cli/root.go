// Package cli implements the workly command line.
package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/workly-labs/workly-cli/internal/core/domain"
	"github.com/workly-labs/workly-cli/internal/core/ports/driving"
	"github.com/workly-labs/workly-cli/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=1.2.3".
var version = "dev"

// annotationNoServices marks commands that run without the service graph.
const annotationNoServices = "workly/no-services"

// errSessionExpired is what the user sees when the guard sends them back to login.
var errSessionExpired = errors.New("session expired, please log in")

var (
	verbose   bool
	configDir string
	apiURL    string
)

var (
	sessionManager  driving.SessionManager
	accountService  driving.AccountService
	jobService      driving.JobService
	contractService driving.ContractService
	reportService   driving.ReportService
	settingsService driving.SettingsService
)

// Services is the set of core services the commands drive.
type Services struct {
	Session   driving.SessionManager
	Account   driving.AccountService
	Jobs      driving.JobService
	Contracts driving.ContractService
	Reports   driving.ReportService
	Settings  driving.SettingsService
}

// Options carries the global flags the service graph depends on.
type Options struct {
	ConfigDir string
	APIURL    string
}

// BootstrapFunc builds the service graph once flags are parsed.
// The returned cleanup runs after the command finishes.
type BootstrapFunc func(ctx context.Context, opts Options) (*Services, func(), error)

var (
	bootstrap BootstrapFunc
	cleanup   func()
)

var rootCmd = &cobra.Command{
	Use:   "workly",
	Short: "Browse freelance jobs and manage your contracts",
	Long: `workly is a terminal client for the Workly job board.

Sign in once with 'workly login'; the session is stored locally and the
access token is refreshed automatically when it expires.

Examples:
  workly login --email me@example.com
  workly jobs list --page 2
  workly jobs search golang --skills
  workly contracts add <link-hash>
  workly browse`,
	SilenceUsage:      true,
	PersistentPreRunE: persistentPreRun,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.workly)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "backend URL, overrides api.base_url for this run")
}

// SetServices injects the core services. Used by main and tests.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	sessionManager = s.Session
	accountService = s.Account
	jobService = s.Jobs
	contractService = s.Contracts
	reportService = s.Reports
	settingsService = s.Settings
}

// SetBootstrap registers the function that builds services on first use.
func SetBootstrap(fn BootstrapFunc) {
	bootstrap = fn
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer func() {
		if cleanup != nil {
			cleanup()
			cleanup = nil
		}
	}()
	return rootCmd.ExecuteContext(ctx)
}

func persistentPreRun(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if cmd.Annotations[annotationNoServices] == "true" || bootstrap == nil || sessionManager != nil {
		return nil
	}

	logger.Section("Bootstrap")
	services, done, err := bootstrap(cmd.Context(), Options{ConfigDir: configDir, APIURL: apiURL})
	if err != nil {
		return err
	}
	SetServices(services)
	cleanup = done
	return nil
}

// requireSession is the route guard for commands that call protected endpoints.
func requireSession(cmd *cobra.Command, _ []string) error {
	if sessionManager == nil {
		return errors.New("session manager not configured")
	}
	if err := sessionManager.EnsureValid(cmd.Context()); err != nil {
		return sessionError(err)
	}
	return nil
}

// sessionError turns the logout signal into the login prompt.
func sessionError(err error) error {
	if errors.Is(err, domain.ErrLoggedOut) {
		logger.Debug("Session ended: %v", err)
		return errSessionExpired
	}
	return err
}
