package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/infowise/internal/client/feed"
	"github.com/dmitrijs2005/infowise/internal/client/models"
	"github.com/dmitrijs2005/infowise/internal/logging"
)

// ---- input stubs ----

func stubInputs(t *testing.T, texts []string, passwords ...string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		v := texts[0]
		texts = texts[1:]
		return v, nil
	}
	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		if len(passwords) == 0 {
			return nil, io.EOF
		}
		v := passwords[0]
		passwords = passwords[1:]
		return []byte(v), nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

// ---- fake services ----

type fakeAuth struct {
	loginEmail, loginPass         string
	regEmail, regPass, regConfirm string
	session                       models.Session
	err                           error
	logoutCalled                  bool
	pingErr                       error
	closeErr                      error
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (models.Session, error) {
	f.loginEmail, f.loginPass = email, password
	return f.session, f.err
}

func (f *fakeAuth) Register(_ context.Context, email, password, confirm string) (models.Session, error) {
	f.regEmail, f.regPass, f.regConfirm = email, password, confirm
	return f.session, f.err
}

func (f *fakeAuth) Logout(context.Context)      { f.logoutCalled = true }
func (f *fakeAuth) Ping(context.Context) error  { return f.pingErr }
func (f *fakeAuth) Close(context.Context) error { return f.closeErr }

type fakePrefs struct {
	catalog   []models.MacroCategoryDto
	current   models.Preferences
	err       error
	saveErr   error
	savedIDs  []int
	savedHour int
	saves     int
}

func (f *fakePrefs) Catalog(context.Context) ([]models.MacroCategoryDto, error) {
	return f.catalog, f.err
}

func (f *fakePrefs) Categories(context.Context) ([]models.NewsCategory, error) {
	return nil, f.err
}

func (f *fakePrefs) Current(context.Context) (models.Preferences, error) {
	return f.current, f.err
}

func (f *fakePrefs) Save(_ context.Context, ids []int, hour int) (models.Preferences, error) {
	f.saves++
	f.savedIDs, f.savedHour = ids, hour
	if f.saveErr != nil {
		return models.Preferences{}, f.saveErr
	}
	return models.Preferences{CategoryIDs: ids, ShippingHour: &hour}, nil
}

type fakeSessions struct {
	current  *models.Session
	restored bool
}

func (f *fakeSessions) Current() (models.Session, bool) {
	if f.current == nil {
		return models.Session{}, false
	}
	return *f.current, true
}

func (f *fakeSessions) Restore(context.Context) bool { return f.restored }

type fakeFeed struct {
	snap      feed.Snapshot
	loaded    []*models.Session
	triggered []*models.Session
	closed    bool
}

func (f *fakeFeed) Snapshot() feed.Snapshot { return f.snap }
func (f *fakeFeed) Load(_ context.Context, s *models.Session) {
	f.loaded = append(f.loaded, s)
}
func (f *fakeFeed) Trigger(_ context.Context, s *models.Session) {
	f.triggered = append(f.triggered, s)
}
func (f *fakeFeed) Close() { f.closed = true }

// ---- app ----

type testApp struct {
	*App
	out      *bytes.Buffer
	auth     *fakeAuth
	prefs    *fakePrefs
	sessions *fakeSessions
	feed     *fakeFeed
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	ta := &testApp{
		out:      &bytes.Buffer{},
		auth:     &fakeAuth{},
		prefs:    &fakePrefs{},
		sessions: &fakeSessions{},
		feed:     &fakeFeed{},
	}
	ta.App = &App{
		logger:       logging.Discard(),
		sessions:     ta.sessions,
		feed:         ta.feed,
		authService:  ta.auth,
		prefsService: ta.prefs,
		reader:       bufio.NewReader(strings.NewReader("")),
		out:          ta.out,
	}
	return ta
}

func (ta *testApp) signIn() models.Session {
	s := models.Session{Token: "t", UserID: "42", Email: "ana@infowise.news", Role: "User"}
	ta.sessions.current = &s
	return s
}
