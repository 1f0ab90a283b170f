package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/worklink-app/go-work-link/internal/config"
	"github.com/worklink-app/go-work-link/internal/logger"
	"github.com/worklink-app/go-work-link/internal/utils"
	"github.com/worklink-app/go-work-link/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := NormalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

// NormalizeBaseURL turns a raw address ("localhost:8080",
// "https://api.worklink.dev/") into a canonical base URL without a trailing
// slash, defaulting the scheme to http.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ServerAdapter].
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	var loginResp models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &loginResp); err != nil {
		return models.LoginResponse{}, fmt.Errorf("decode login response: %w", err)
	}
	if loginResp.AccessToken == "" {
		return models.LoginResponse{}, fmt.Errorf("login response carries no access token")
	}

	h.SetToken(loginResp.AccessToken)
	return loginResp, nil
}

// RevokeSession implements [ServerAdapter].
func (h *httpServerAdapter) RevokeSession(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Delete("/auth/session")
	if err != nil {
		return fmt.Errorf("revoke session request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetMissions implements [ServerAdapter].
func (h *httpServerAdapter) GetMissions(ctx context.Context) ([]models.Mission, error) {
	resp, err := h.authedRequest(ctx).Get("/missions")
	if err != nil {
		return nil, fmt.Errorf("get missions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var listResp models.MissionListResponse
	if err = json.Unmarshal(resp.Body(), &listResp); err != nil {
		return nil, fmt.Errorf("decode mission list response: %w", err)
	}

	missions := make([]models.Mission, 0, len(listResp.Missions))
	for _, dto := range listResp.Missions {
		missions = append(missions, dto.ToDomain())
	}
	return missions, nil
}

// GetProfile implements [ServerAdapter].
func (h *httpServerAdapter) GetProfile(ctx context.Context, role string) (models.User, error) {
	var path string
	switch role {
	case models.RoleTalent:
		path = "/talent/profile"
	case models.RoleRecruiter:
		path = "/recruiter/profile"
	default:
		return models.User{}, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}

	resp, err := h.authedRequest(ctx).Get(path)
	if err != nil {
		return models.User{}, fmt.Errorf("get profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	if role == models.RoleTalent {
		var dto models.TalentDTO
		if err = json.Unmarshal(resp.Body(), &dto); err != nil {
			return models.User{}, fmt.Errorf("decode talent profile: %w", err)
		}
		return dto.ToDomain(), nil
	}

	var dto models.RecruiterDTO
	if err = json.Unmarshal(resp.Body(), &dto); err != nil {
		return models.User{}, fmt.Errorf("decode recruiter profile: %w", err)
	}
	return dto.ToDomain(), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
