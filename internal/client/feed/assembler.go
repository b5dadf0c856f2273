// Package feed turns the signed-in user's preferences and news into the
// home feed: an ordered list of story cards plus the state around it.
package feed

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/dmitrijs2005/infowise/internal/client/client"
	"github.com/dmitrijs2005/infowise/internal/client/models"
	"github.com/dmitrijs2005/infowise/internal/logging"
	"github.com/google/uuid"
)

type PreferencesFetcher interface {
	FetchPreferences(ctx context.Context, userID models.UserID) (models.Preferences, error)
}

type NewsFetcher interface {
	FetchNewsForUser(ctx context.Context, userID models.UserID) ([]models.MacroCategory, error)
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithFallback sets the cards shown when there is nothing real to show.
func WithFallback(cards []Card) Option {
	return func(a *Assembler) { a.fallback = slices.Clone(cards) }
}

// Assembler runs load cycles. Only the newest cycle may commit: starting a
// cycle cancels the previous one and bumps the generation every commit is
// checked against.
type Assembler struct {
	prefs    PreferencesFetcher
	news     NewsFetcher
	dates    Formatter
	logger   logging.Logger
	fallback []Card

	notifyMu  sync.Mutex
	mu        sync.Mutex
	gen       uint64
	cancel    context.CancelFunc
	snap      Snapshot
	listeners []func(Snapshot)

	wg sync.WaitGroup
}

func New(prefs PreferencesFetcher, news NewsFetcher, dates Formatter, logger logging.Logger, opts ...Option) *Assembler {
	if logger == nil {
		logger = logging.Discard()
	}
	a := &Assembler{
		prefs:  prefs,
		news:   news,
		dates:  dates,
		logger: logger.With("component", "feed"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Snapshot returns the last committed view.
func (a *Assembler) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snap
}

// Subscribe registers fn for every subsequent commit. fn must not call Load.
func (a *Assembler) Subscribe(fn func(Snapshot)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.listeners = append(a.listeners, fn)
}

// Load runs one cycle for sess and returns when it is done or superseded.
func (a *Assembler) Load(ctx context.Context, sess *models.Session) {
	a.run(a.start(ctx, sess))
}

// Trigger supersedes any running cycle and runs a new one in the background.
func (a *Assembler) Trigger(ctx context.Context, sess *models.Session) {
	c := a.start(ctx, sess)
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.run(c)
	}()
}

// Wait blocks until every triggered cycle has returned.
func (a *Assembler) Wait() {
	a.wg.Wait()
}

// Close cancels the running cycle, if any, and waits for it.
func (a *Assembler) Close() {
	a.mu.Lock()
	if a.cancel != nil {
		a.cancel()
	}
	a.mu.Unlock()
	a.wg.Wait()
}

type cycle struct {
	gen    uint64
	id     string
	ctx    context.Context
	cancel context.CancelFunc
	sess   *models.Session
}

func (a *Assembler) start(ctx context.Context, sess *models.Session) cycle {
	var cp *models.Session
	if sess != nil {
		s := *sess
		cp = &s
	}

	cctx, cancel := context.WithCancel(ctx)

	a.mu.Lock()
	if a.cancel != nil {
		a.cancel()
	}
	a.gen++
	a.cancel = cancel
	gen := a.gen
	a.mu.Unlock()

	return cycle{gen: gen, id: uuid.NewString(), ctx: cctx, cancel: cancel, sess: cp}
}

func (a *Assembler) run(c cycle) {
	defer c.cancel()

	if c.sess == nil || c.sess.UserID == "" {
		a.commit(c, func(Snapshot) Snapshot {
			return Snapshot{State: StateUnauthenticated}
		})
		return
	}

	userID := c.sess.UserID
	ctx := client.WithAccessToken(c.ctx, c.sess.Token)
	log := a.logger.With("cycle", c.id, "user_id", userID)

	ok := a.commit(c, func(prev Snapshot) Snapshot {
		next := Snapshot{State: StateLoading, UserID: userID, Loading: true}
		if prev.UserID == userID {
			next.Cards = prev.Cards
			next.HasPreferences = prev.HasPreferences
		}
		return next
	})
	if !ok {
		return
	}

	log.Debug(ctx, "feed: fetching preferences")
	prefs, err := a.prefs.FetchPreferences(ctx, userID)
	if errors.Is(err, client.ErrNotFound) {
		log.Info(ctx, "feed: no stored preferences")
		prefs, err = models.Preferences{UserID: userID}, nil
	}
	if err != nil {
		log.Warn(ctx, "feed: preferences fetch failed", "error", err)
		a.commit(c, func(prev Snapshot) Snapshot {
			cards := a.fallback
			if prev.UserID == userID && prev.Cards != nil {
				cards = prev.Cards
			}
			return Snapshot{
				State:          StateLoadFailed,
				UserID:         userID,
				Cards:          cards,
				HasPreferences: prev.HasPreferences,
			}
		})
		return
	}

	if !prefs.HasCategories() {
		a.commit(c, func(Snapshot) Snapshot {
			return Snapshot{State: StateNoPreferences, UserID: userID, Cards: a.fallback}
		})
		return
	}

	if !a.current(c.gen) {
		log.Debug(ctx, "feed: superseded before news fetch")
		return
	}

	log.Debug(ctx, "feed: fetching news", "categories", len(prefs.CategoryIDs))
	macros, err := a.news.FetchNewsForUser(ctx, userID)
	if err != nil {
		log.Warn(ctx, "feed: news fetch failed", "error", err)
		a.commit(c, func(Snapshot) Snapshot {
			return Snapshot{State: StateLoadFailed, UserID: userID, Cards: []Card{}, HasPreferences: true}
		})
		return
	}

	cards := BuildCards(macros, a.dates)
	if a.commit(c, func(Snapshot) Snapshot {
		return Snapshot{State: StateLoaded, UserID: userID, Cards: cards, HasPreferences: true}
	}) {
		log.Info(ctx, "feed: loaded", "cards", len(cards))
	}
}

// current reports whether gen is still the newest cycle.
func (a *Assembler) current(gen uint64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return gen == a.gen
}

// commit applies next to the current snapshot if c is still the newest
// cycle, then notifies listeners. It reports whether anything was written.
func (a *Assembler) commit(c cycle, next func(prev Snapshot) Snapshot) bool {
	a.notifyMu.Lock()
	defer a.notifyMu.Unlock()

	a.mu.Lock()
	if c.gen != a.gen {
		a.mu.Unlock()
		return false
	}
	a.snap = next(a.snap)
	a.snap.Cycle = c.id
	snap := a.snap
	listeners := slices.Clone(a.listeners)
	a.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
	return true
}
