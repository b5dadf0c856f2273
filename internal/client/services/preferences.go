package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/infowise/internal/client/client"
	"github.com/dmitrijs2005/infowise/internal/client/models"
	"github.com/dmitrijs2005/infowise/internal/client/session"
	"github.com/dmitrijs2005/infowise/internal/client/validate"
)

// ErrNotSignedIn is returned by operations that need a session.
var ErrNotSignedIn = errors.New("not signed in")

// PreferencesService backs the category and delivery hour setup.
type PreferencesService interface {
	Catalog(ctx context.Context) ([]models.MacroCategoryDto, error)
	Categories(ctx context.Context) ([]models.NewsCategory, error)
	Current(ctx context.Context) (models.Preferences, error)
	Save(ctx context.Context, categoryIDs []int, hour int) (models.Preferences, error)
}

type preferencesService struct {
	users client.UserAPI
	news  client.NewsAPI
	store *session.Store
}

func NewPreferencesService(users client.UserAPI, news client.NewsAPI, store *session.Store) PreferencesService {
	return &preferencesService{users: users, news: news, store: store}
}

// authed attaches the current bearer token, if any.
func (p *preferencesService) authed(ctx context.Context) (context.Context, models.Session, bool) {
	s, ok := p.store.Current()
	if !ok {
		return ctx, models.Session{}, false
	}
	return client.WithAccessToken(ctx, s.Token), s, true
}

// Catalog lists macro-categories with their categories.
func (p *preferencesService) Catalog(ctx context.Context) ([]models.MacroCategoryDto, error) {
	ctx, _, _ = p.authed(ctx)
	out, err := p.news.FetchAllMacrocategoriesWithCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog error: %w", err)
	}
	return out, nil
}

func (p *preferencesService) Categories(ctx context.Context) ([]models.NewsCategory, error) {
	ctx, _, _ = p.authed(ctx)
	out, err := p.news.FetchAllCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("categories error: %w", err)
	}
	return out, nil
}

// Current returns the saved preferences. A user who never saved any gets
// an empty selection with the default delivery hour.
func (p *preferencesService) Current(ctx context.Context) (models.Preferences, error) {
	ctx, s, ok := p.authed(ctx)
	if !ok {
		return models.Preferences{}, ErrNotSignedIn
	}
	prefs, err := p.users.FetchPreferences(ctx, s.UserID)
	if errors.Is(err, client.ErrNotFound) {
		hour := models.DefaultShippingHour
		return models.Preferences{UserID: s.UserID, CategoryIDs: []int{}, ShippingHour: &hour}, nil
	}
	if err != nil {
		return models.Preferences{}, fmt.Errorf("preferences error: %w", err)
	}
	return prefs, nil
}

// Save replaces the whole selection.
func (p *preferencesService) Save(ctx context.Context, categoryIDs []int, hour int) (models.Preferences, error) {
	ctx, s, ok := p.authed(ctx)
	if !ok {
		return models.Preferences{}, ErrNotSignedIn
	}
	if err := validate.Preferences(categoryIDs, hour); err != nil {
		return models.Preferences{}, err
	}
	prefs, err := p.users.UpsertPreferences(ctx, s.UserID, categoryIDs, &hour)
	if err != nil {
		return models.Preferences{}, fmt.Errorf("save preferences error: %w", err)
	}
	return prefs, nil
}
