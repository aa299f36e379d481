package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/fittrack/internal/client/api"
	"github.com/dmitrijs2005/fittrack/internal/client/config"
	"github.com/dmitrijs2005/fittrack/internal/client/services"
	"github.com/dmitrijs2005/fittrack/internal/client/session"
	"github.com/dmitrijs2005/fittrack/internal/client/storage"
	"github.com/dmitrijs2005/fittrack/internal/common"
	"github.com/dmitrijs2005/fittrack/internal/filex"
	"github.com/dmitrijs2005/fittrack/internal/logging"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	closer       io.Closer
	client       *api.Client
	store        *session.Store
	session      *session.Provider
	authService  services.AuthService
	goalService  services.GoalService
	statsService services.StatsService
	reader       *bufio.Reader
	out          io.Writer

	mu    sync.Mutex
	route string
	goals []services.Goal
}

// NewApp opens the session storage named in c and wires the client on
// stdin/stdout.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	path, err := filex.EnsureParentDir(c.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("error preparing storage: %w", err)
	}

	db, err := storage.OpenSQLite(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("error initializing storage: %w", err)
	}

	a := newApp(c, db, logger, os.Stdin, os.Stdout)
	a.closer = db
	return a, nil
}

func newApp(c *config.Config, st storage.Storage, logger logging.Logger, in io.Reader, out io.Writer) *App {
	if logger == nil {
		logger = logging.Nop()
	}

	a := &App{
		config:  c,
		logger:  logger,
		reader:  bufio.NewReader(in),
		out:     out,
		route:   common.LoginRoute,
	}

	a.store = session.NewStore(st)
	a.client = api.New(c.BaseURL(),
		api.WithTimeout(c.RequestTimeout),
		api.WithLogger(logger.With("component", "api")),
		api.WithTokenStore(a.store),
		api.WithNavigator(a),
	)
	a.session = session.NewProvider(a.store, a.client, logger.With("component", "session"))
	a.authService = services.NewAuthService(a.client, a.store, a, logger.With("component", "auth"))
	a.goalService = services.NewGoalService(a.client, a.session)
	a.statsService = services.NewStatsService(a.client)

	a.session.Subscribe(func(s session.Session) {
		a.logger.Debug(context.Background(), "session changed", "authenticated", s.IsAuthenticated(), "email", s.User.Email())
	})

	return a
}

// Navigate switches the CLI to route. Entering the login route drops every
// piece of in-memory session state.
func (a *App) Navigate(route string) {
	a.mu.Lock()
	changed := a.route != route
	a.route = route
	if route == common.LoginRoute {
		a.goals = nil
	}
	a.mu.Unlock()

	if route == common.LoginRoute {
		a.session.Reset()
		if changed {
			fmt.Fprintln(a.out, "You are logged out. Type 'login' to sign in again.")
		}
	}
}

func (a *App) Route() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.route
}

// Run rehydrates the stored session and starts the REPL. It returns when the
// user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if err := a.session.Rehydrate(ctx); err != nil {
		a.logger.Info(ctx, "stored session discarded", "error", err)
	}
	if a.isLoggedIn() {
		a.Navigate(common.HomeRoute)
		fmt.Fprintf(a.out, "Welcome back, %s\n", a.session.Current().User.Email())
	} else {
		a.Navigate(common.LoginRoute)
	}

	fmt.Fprintln(a.out, "Welcome to FitTrack CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

func (a *App) Close() {
	if a.closer != nil {
		if err := a.closer.Close(); err != nil {
			a.logger.Error(context.Background(), "failed to close storage", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Current().IsAuthenticated()
}

func (a *App) getStatus() string {
	cur := a.session.Current()
	if !cur.IsAuthenticated() {
		return "(guest)"
	}
	return fmt.Sprintf("(%s)", cur.User.Email())
}
