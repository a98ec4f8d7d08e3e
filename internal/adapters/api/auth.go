package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/MuzzammilShah/pa-agent-cli/internal/domain"
	"github.com/MuzzammilShah/pa-agent-cli/internal/ports"
)

type AuthAPI struct {
	client *Client
}

var _ ports.AuthService = (*AuthAPI)(nil)

type userInfoPayload struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func (u *userInfoPayload) toDomain() *domain.UserInfo {
	if u == nil {
		return nil
	}
	return &domain.UserInfo{Email: u.Email, Name: u.Name, Picture: u.Picture}
}

func (a *AuthAPI) LoginURL(ctx context.Context) (string, error) {
	var payload struct {
		AuthURL string `json:"auth_url"`
	}
	if err := a.client.get(ctx, "/auth/login", &payload); err != nil {
		return "", fmt.Errorf("fetch login url: %w", err)
	}
	if payload.AuthURL == "" {
		return "", errors.New("login response missing auth_url")
	}

	return payload.AuthURL, nil
}

func (a *AuthAPI) ExchangeCode(ctx context.Context, code string) (domain.Session, error) {
	if code == "" {
		return domain.Session{}, errors.New("authorization code is required")
	}

	var payload struct {
		AccessToken string           `json:"access_token"`
		UserInfo    *userInfoPayload `json:"user_info"`
	}
	path := "/auth/callback?code=" + url.QueryEscape(code)
	if err := a.client.get(ctx, path, &payload); err != nil {
		return domain.Session{}, err
	}
	if payload.AccessToken == "" {
		return domain.Session{}, errors.New("callback response missing access_token")
	}

	return domain.Session{
		AccessToken: payload.AccessToken,
		User:        payload.UserInfo.toDomain(),
	}, nil
}

func (a *AuthAPI) Verify(ctx context.Context) (domain.UserInfo, error) {
	var payload struct {
		User *userInfoPayload `json:"user"`
	}
	if err := a.client.get(ctx, "/auth/verify", &payload); err != nil {
		return domain.UserInfo{}, err
	}
	if payload.User == nil {
		return domain.UserInfo{}, nil
	}

	return *payload.User.toDomain(), nil
}

func (a *AuthAPI) Logout(ctx context.Context) error {
	if err := a.client.post(ctx, "/auth/logout", nil, nil); err != nil {
		return fmt.Errorf("backend logout: %w", err)
	}

	return nil
}
