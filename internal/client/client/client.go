package client

import (
	"context"

	"github.com/dmitrijs2005/infowise/internal/client/models"
)

// UserAPI is the identity and preferences backend.
type UserAPI interface {
	Login(ctx context.Context, email, password string) (models.Session, error)
	Register(ctx context.Context, email, password string) (models.Session, error)
	FetchPreferences(ctx context.Context, userID models.UserID) (models.Preferences, error)
	UpsertPreferences(ctx context.Context, userID models.UserID, categoryIDs []int, shippingHour *int) (models.Preferences, error)
	Close() error
}

// NewsAPI is the news backend.
type NewsAPI interface {
	FetchAllCategories(ctx context.Context) ([]models.NewsCategory, error)
	FetchAllMacrocategoriesWithCategories(ctx context.Context) ([]models.MacroCategoryDto, error)
	FetchNewsForUser(ctx context.Context, userID models.UserID) ([]models.MacroCategory, error)
	Health(ctx context.Context) (string, error)
	Close() error
}

var (
	_ UserAPI = (*UserClient)(nil)
	_ NewsAPI = (*NewsClient)(nil)
)
