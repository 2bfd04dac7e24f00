package main

import (
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/flintapp/flint-cli/internal/api"
	"github.com/flintapp/flint-cli/internal/auth"
	"github.com/flintapp/flint-cli/internal/repositories"
	"github.com/flintapp/flint-cli/internal/session"
	"github.com/flintapp/flint-cli/internal/shared"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	client     *api.Client
	db         *sql.DB
	store      session.Store
	flow       *auth.Flow
	history    *repositories.HistoryRepository
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	Client     *api.Client
	DB         *sql.DB
	Store      session.Store
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.Client == nil {
		opts.Client = api.NewClient(opts.Config.API.BaseURL, opts.HTTPClient, opts.Config.API.SearchRate)
	}

	return &Runner{
		config:     opts.Config,
		client:     opts.Client,
		db:         opts.DB,
		store:      opts.Store,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, searchCommand, historyCommand, collectionsCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// SetLogger replaces the runner's logger.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

// database opens the sqlite database lazily and runs migrations so every
// command works on a fresh install without an explicit setup step.
func (r *Runner) database() (*sql.DB, error) {
	if r.db != nil {
		return r.db, nil
	}

	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	r.db = db
	return db, nil
}

func (r *Runner) sessionStore() (session.Store, error) {
	if r.store != nil {
		return r.store, nil
	}

	db, err := r.database()
	if err != nil {
		return nil, err
	}

	r.store = repositories.NewSessionRepository(db)
	return r.store, nil
}

func (r *Runner) authFlow() (*auth.Flow, error) {
	if r.flow != nil {
		return r.flow, nil
	}

	store, err := r.sessionStore()
	if err != nil {
		return nil, err
	}

	r.flow = auth.NewFlow(r.client, store, r.logger)
	return r.flow, nil
}

func (r *Runner) historyRepo() (*repositories.HistoryRepository, error) {
	if r.history != nil {
		return r.history, nil
	}

	db, err := r.database()
	if err != nil {
		return nil, err
	}

	r.history = repositories.NewHistoryRepository(db)
	return r.history, nil
}

// requireAuth loads the active identity and attaches its access token to the
// API client. Fails with [shared.ErrNotAuthenticated] when nobody is logged in.
func (r *Runner) requireAuth() (*session.Identity, error) {
	flow, err := r.authFlow()
	if err != nil {
		return nil, err
	}

	identity, err := flow.Current()
	if err != nil {
		return nil, err
	}

	r.client.SetToken(identity.AccessToken)
	return identity, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	output, err := shared.MarshalJSON(data, pretty)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
