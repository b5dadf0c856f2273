// Package services contains application services for the InfoWise client.
// This file defines the authentication service: sign in, sign up, sign out
// and the news backend liveness probe.
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

// AuthService defines authentication operations for the CLI.
//
// Login and Register validate input before any request is made and, on
// success, make the returned session current in the session store.
type AuthService interface {
	Login(ctx context.Context, email, password string) (models.Session, error)
	Register(ctx context.Context, email, password, confirm string) (models.Session, error)
	Logout(ctx context.Context)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	users client.UserAPI
	news  client.NewsAPI
	store *session.Store
}

// NewAuthService constructs an AuthService bound to both backends and the
// session store.
func NewAuthService(users client.UserAPI, news client.NewsAPI, store *session.Store) AuthService {
	return &authService{users: users, news: news, store: store}
}

func (a *authService) Login(ctx context.Context, email, password string) (models.Session, error) {
	if err := validate.Login(email, password); err != nil {
		return models.Session{}, err
	}
	s, err := a.users.Login(ctx, email, password)
	if err != nil {
		return models.Session{}, fmt.Errorf("login error: %w", err)
	}
	a.store.Login(ctx, s)
	return s, nil
}

// Register creates the account and signs it in with the session the
// backend returns.
func (a *authService) Register(ctx context.Context, email, password, confirm string) (models.Session, error) {
	if err := validate.Register(email, password, confirm); err != nil {
		return models.Session{}, err
	}
	s, err := a.users.Register(ctx, email, password)
	if err != nil {
		return models.Session{}, fmt.Errorf("register error: %w", err)
	}
	a.store.Login(ctx, s)
	return s, nil
}

func (a *authService) Logout(ctx context.Context) {
	a.store.Logout(ctx)
}

// Ping probes the news backend health endpoint.
func (a *authService) Ping(ctx context.Context) error {
	if _, err := a.news.Health(ctx); err != nil {
		return err
	}
	return nil
}

// Close releases resources held by both clients.
func (a *authService) Close(ctx context.Context) error {
	return errors.Join(a.users.Close(), a.news.Close())
}
