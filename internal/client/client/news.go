package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/infowise/internal/client/models"
	"github.com/dmitrijs2005/infowise/internal/logging"
)

// NewsClient is the news issuer.
type NewsClient struct {
	api *issuer
}

func NewNewsClient(baseURL string, timeout time.Duration, logger logging.Logger) (*NewsClient, error) {
	api, err := newIssuer(baseURL, timeout, logger)
	if err != nil {
		return nil, fmt.Errorf("news api: %w", err)
	}
	return &NewsClient{api: api}, nil
}

func (c *NewsClient) FetchAllCategories(ctx context.Context) ([]models.NewsCategory, error) {
	var out []models.NewsCategory
	if err := c.api.do(ctx, http.MethodGet, "/news-management/categories/all", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *NewsClient) FetchAllMacrocategoriesWithCategories(ctx context.Context) ([]models.MacroCategoryDto, error) {
	var out []models.MacroCategoryDto
	if err := c.api.do(ctx, http.MethodGet, "/news-management/macrocategories-with-categories/all", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchNewsForUser returns the summaries matching the user's preferences,
// in server order.
func (c *NewsClient) FetchNewsForUser(ctx context.Context, userID models.UserID) ([]models.MacroCategory, error) {
	var out []models.MacroCategory
	path := "/news-management/summaries/user/" + url.PathEscape(userID.String())
	if err := c.api.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Health probes the news service. The body is opaque and returned as text.
func (c *NewsClient) Health(ctx context.Context) (string, error) {
	raw, err := c.api.send(ctx, http.MethodGet, "/news-management/health", nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

// Close releases idle connections.
func (c *NewsClient) Close() error {
	c.api.close()
	return nil
}
