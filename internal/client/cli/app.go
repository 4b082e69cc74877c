package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/strumind/console/internal/client/api"
	"github.com/strumind/console/internal/client/canvas"
	"github.com/strumind/console/internal/client/config"
	"github.com/strumind/console/internal/client/models"
	"github.com/strumind/console/internal/client/repositories/metadata"
	"github.com/strumind/console/internal/client/repositories/queries"
	"github.com/strumind/console/internal/client/services"
	"github.com/strumind/console/internal/client/session"
	"github.com/strumind/console/internal/client/storage"
	"github.com/strumind/console/internal/logging"

	_ "modernc.org/sqlite"
)

// sessionStore is the slice of the session surface the app needs.
type sessionStore interface {
	Restore(ctx context.Context) error
	Login(ctx context.Context, username, password string) (*models.User, error)
	Logout(ctx context.Context) error
	LoggedIn() bool
	User() *models.User
	LastUsername(ctx context.Context) string
	ExpiresAt() (time.Time, bool)
}

type App struct {
	config  *config.Config
	db      *sql.DB
	session sessionStore
	log     logging.Logger

	projects *services.ProjectService
	analysis *services.AnalysisService
	design   *services.DesignService
	catalog  *services.CatalogService
	bim      *services.BIMService

	reader    *bufio.Reader
	selection *canvas.Selection
	resolving bool

	// draft analysis settings survive a failed submit.
	draft *models.AnalysisSettings

	watchMu     sync.Mutex
	watchCancel context.CancelFunc
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {

	ctx := context.Background()

	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "initializing database", "error", err)
		return nil, err
	}

	meta := metadata.NewSQLiteRepository(db)
	cache := queries.NewSQLiteRepository(db)

	sess := session.NewStore(meta, log)
	apiClient := api.New(c.BaseURL, sess, log,
		api.WithTimeout(c.HTTPTimeout),
		api.WithUnauthorizedHook(func() {
			sess.Invalidate(context.Background())
		}),
	)
	sess.SetAPI(apiClient)

	return &App{
		config:    c,
		db:        db,
		session:   sess,
		log:       log,
		projects:  services.NewProjectService(apiClient, cache, log),
		analysis:  services.NewAnalysisService(apiClient, cache, log, c.PollInterval),
		design:    services.NewDesignService(apiClient, cache, log),
		catalog:   services.NewCatalogService(apiClient, cache, log),
		bim:       services.NewBIMService(apiClient, cache, log),
		reader:    bufio.NewReader(os.Stdin),
		selection: canvas.NewSelection(log),
		resolving: true,
	}, nil
}

// Run restores the persisted session, then hands control to the REPL.
// It blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	printlnFn("Welcome to StruMind console (type 'help' for commands)")
	printlnFn("resolving session...")

	if err := a.session.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore", "error", err)
	}
	a.resolving = false

	if u := a.session.User(); u != nil {
		printlnFn(fmt.Sprintf("welcome back, %s", u.Username))
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) Close() {
	a.stopWatcher()
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool { return a.session.LoggedIn() }

func (a *App) isResolving() bool { return a.resolving }

func (a *App) getStatus() string {
	if a.resolving {
		return "(resolving)"
	}
	if u := a.session.User(); u != nil {
		return fmt.Sprintf("(%s)", u.Username)
	}
	return ""
}

// startWatcher runs the analysis poller in the background. A previous
// watcher, if any, is torn down first; the single tracked job makes two
// concurrent pollers pointless.
func (a *App) startWatcher(ctx context.Context) {
	a.stopWatcher()

	wctx, cancel := context.WithCancel(ctx)
	a.watchMu.Lock()
	a.watchCancel = cancel
	a.watchMu.Unlock()

	go func() {
		defer cancel()
		job, err := a.analysis.Watch(wctx, func(j models.AnalysisJob) {
			st := j.Status.Style()
			printlnFn(fmt.Sprintf("  %s%s job %s: %s (%.0f%%)\033[0m", st.Color, st.Icon, j.ID, j.Status, j.Progress))
		})
		if err != nil {
			if wctx.Err() == nil {
				a.log.Warn(wctx, "job watcher stopped", "error", err)
			}
			return
		}
		if job.ErrorMessage != "" {
			printlnFn("  job error:", job.ErrorMessage)
		}
	}()
}

func (a *App) stopWatcher() {
	a.watchMu.Lock()
	defer a.watchMu.Unlock()
	if a.watchCancel != nil {
		a.watchCancel()
		a.watchCancel = nil
	}
}
