package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/infowise/internal/client/client"
	"github.com/dmitrijs2005/infowise/internal/client/config"
	"github.com/dmitrijs2005/infowise/internal/client/feed"
	"github.com/dmitrijs2005/infowise/internal/client/models"
	"github.com/dmitrijs2005/infowise/internal/client/services"
	"github.com/dmitrijs2005/infowise/internal/client/session"
	"github.com/dmitrijs2005/infowise/internal/client/storage"
	"github.com/dmitrijs2005/infowise/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// sessionView is the part of the session store the CLI reads.
type sessionView interface {
	Current() (models.Session, bool)
	Restore(ctx context.Context) bool
}

// feedView is the part of the feed assembler the CLI drives.
type feedView interface {
	Snapshot() feed.Snapshot
	Load(ctx context.Context, sess *models.Session)
	Trigger(ctx context.Context, sess *models.Session)
	Close()
}

type App struct {
	config       *config.Config
	logger       logging.Logger
	db           *sql.DB
	sessions     sessionView
	feed         feedView
	authService  services.AuthService
	prefsService services.PreferencesService
	reader       *bufio.Reader
	out          io.Writer

	modeMu sync.RWMutex
	mode   Mode
}

// NewApp opens local storage, builds both API clients and wires the session
// store to the feed so that every sign-in or sign-out reloads it.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	users, err := client.NewUserClient(c.UserAPIURL, c.RequestTimeout, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	news, err := client.NewNewsClient(c.NewsAPIURL, c.RequestTimeout, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	dates, err := feed.NewDateFormatter(c.Locale, nil)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	store := session.NewStore(db, logger)
	assembler := feed.New(users, news, dates, logger)
	store.Subscribe(func(s *models.Session) {
		assembler.Trigger(ctx, s)
	})

	return &App{
		config:       c,
		logger:       logger,
		db:           db,
		sessions:     store,
		feed:         assembler,
		authService:  services.NewAuthService(users, news, store),
		prefsService: services.NewPreferencesService(users, news, store),
		reader:       bufio.NewReader(os.Stdin),
		out:          os.Stdout,
	}, nil
}

func (a *App) Mode() Mode {
	a.modeMu.RLock()
	defer a.modeMu.RUnlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()

	if changed {
		a.logger.Info(context.Background(), "switched mode", "mode", mode)
	}
}

// Run restores the previous session, starts the connectivity watcher and
// blocks in the REPL until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.close(ctx)

	fmt.Fprintln(a.out, "Welcome to InfoWise (type 'help' for commands)")

	if a.sessions.Restore(ctx) {
		s, _ := a.sessions.Current()
		fmt.Fprintf(a.out, "Signed in as %s\n", s.Email)
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) close(ctx context.Context) {
	a.feed.Close()
	if err := a.authService.Close(ctx); err != nil {
		a.logger.Warn(ctx, "closing clients", "error", err)
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn(ctx, "closing database", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	if a.sessions == nil {
		return false
	}
	_, ok := a.sessions.Current()
	return ok
}

func (a *App) getStatus() string {
	s := ""
	if a.sessions != nil {
		if cur, ok := a.sessions.Current(); ok {
			s = cur.Email + " "
		}
	}
	if m := a.Mode(); m != "" {
		s = s + string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// StartOnlineStatusWatcher probes the news backend every interval and flips
// Mode accordingly. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	err := a.authService.Ping(pingCtx)
	cancel()

	if err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}
