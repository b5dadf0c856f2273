package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/dmitrijs2005/infowise/internal/client/models"
	"github.com/dmitrijs2005/infowise/internal/logging"
)

// UserClient is the identity/preferences issuer.
type UserClient struct {
	api *issuer
}

func NewUserClient(baseURL string, timeout time.Duration, logger logging.Logger) (*UserClient, error) {
	api, err := newIssuer(baseURL, timeout, logger)
	if err != nil {
		return nil, fmt.Errorf("user api: %w", err)
	}
	return &UserClient{api: api}, nil
}

// Login exchanges credentials for a session. Bad credentials yield
// ErrUnauthorized.
func (c *UserClient) Login(ctx context.Context, email, password string) (models.Session, error) {
	return c.authenticate(ctx, "/user/login", email, password)
}

// Register creates an account and returns its session. A duplicate
// account yields ErrConflict.
func (c *UserClient) Register(ctx context.Context, email, password string) (models.Session, error) {
	return c.authenticate(ctx, "/user/register", email, password)
}

func (c *UserClient) authenticate(ctx context.Context, path, email, password string) (models.Session, error) {
	var s models.Session
	if err := c.api.do(ctx, http.MethodPost, path, models.Credentials{Email: email, Password: password}, &s); err != nil {
		return models.Session{}, err
	}
	if s.Token == "" {
		return models.Session{}, fmt.Errorf("%w: %s returned no token", ErrNetwork, path)
	}
	return s, nil
}

// FetchPreferences returns the stored preferences. ErrNotFound means the
// user never saved any.
func (c *UserClient) FetchPreferences(ctx context.Context, userID models.UserID) (models.Preferences, error) {
	var p models.Preferences
	path := "/user/" + url.PathEscape(userID.String()) + "/preferences"
	if err := c.api.do(ctx, http.MethodGet, path, nil, &p); err != nil {
		return models.Preferences{}, err
	}
	if p.UserID == "" {
		p.UserID = userID
	}
	return p, nil
}

// UpsertPreferences replaces the user's preferences. The id set is sent
// sorted and de-duplicated so repeating a call sends an identical body.
func (c *UserClient) UpsertPreferences(ctx context.Context, userID models.UserID, categoryIDs []int, shippingHour *int) (models.Preferences, error) {
	ids := slices.Clone(categoryIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)
	if ids == nil {
		ids = []int{}
	}

	req := models.UpsertPreferencesRequest{UserID: userID, CategoryIDs: ids, ShippingHour: shippingHour}

	var p models.Preferences
	if err := c.api.do(ctx, http.MethodPost, "/user/preferences/upsert", req, &p); err != nil {
		return models.Preferences{}, err
	}
	return p, nil
}

// Close releases idle connections.
func (c *UserClient) Close() error {
	c.api.close()
	return nil
}
