package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/infowise/internal/client/client"
	"github.com/dmitrijs2005/infowise/internal/client/models"
	"github.com/dmitrijs2005/infowise/internal/client/session"
	"github.com/dmitrijs2005/infowise/internal/client/storage"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

func setupStore(t *testing.T) (*session.Store, *sql.DB) {
	t.Helper()
	db, err := storage.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "svc.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return session.NewStore(db, nil), db
}

// ---- fake clients ----

type fakeUsers struct {
	LoginRet    models.Session
	LoginErr    error
	RegisterRet models.Session
	RegisterErr error
	PrefsRet    models.Preferences
	PrefsErr    error
	UpsertErr   error
	CloseErr    error

	LoginCalls    int
	RegisterCalls int
	LastUpsertIDs []int
	LastHour      *int
	LastUserID    models.UserID
	LastToken     string
}

func (f *fakeUsers) Login(ctx context.Context, email, password string) (models.Session, error) {
	f.LoginCalls++
	return f.LoginRet, f.LoginErr
}

func (f *fakeUsers) Register(ctx context.Context, email, password string) (models.Session, error) {
	f.RegisterCalls++
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeUsers) FetchPreferences(ctx context.Context, userID models.UserID) (models.Preferences, error) {
	f.LastUserID = userID
	f.LastToken = client.AccessToken(ctx)
	return f.PrefsRet, f.PrefsErr
}

func (f *fakeUsers) UpsertPreferences(ctx context.Context, userID models.UserID, ids []int, hour *int) (models.Preferences, error) {
	f.LastUserID = userID
	f.LastToken = client.AccessToken(ctx)
	f.LastUpsertIDs = ids
	f.LastHour = hour
	if f.UpsertErr != nil {
		return models.Preferences{}, f.UpsertErr
	}
	return models.Preferences{UserID: userID, CategoryIDs: ids, ShippingHour: hour}, nil
}

func (f *fakeUsers) Close() error { return f.CloseErr }

type fakeNews struct {
	HealthErr     error
	CatalogRet    []models.MacroCategoryDto
	CategoriesRet []models.NewsCategory
	Err           error
	CloseErr      error
	LastToken     string
}

func (f *fakeNews) FetchAllCategories(ctx context.Context) ([]models.NewsCategory, error) {
	f.LastToken = client.AccessToken(ctx)
	return f.CategoriesRet, f.Err
}

func (f *fakeNews) FetchAllMacrocategoriesWithCategories(ctx context.Context) ([]models.MacroCategoryDto, error) {
	f.LastToken = client.AccessToken(ctx)
	return f.CatalogRet, f.Err
}

func (f *fakeNews) FetchNewsForUser(ctx context.Context, userID models.UserID) ([]models.MacroCategory, error) {
	return nil, f.Err
}

func (f *fakeNews) Health(ctx context.Context) (string, error) {
	if f.HealthErr != nil {
		return "", f.HealthErr
	}
	return "OK", nil
}

func (f *fakeNews) Close() error { return f.CloseErr }
