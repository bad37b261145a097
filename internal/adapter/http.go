package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/sparkkhoj/spark-khoj/internal/config"
	"github.com/sparkkhoj/spark-khoj/internal/logger"
	"github.com/sparkkhoj/spark-khoj/internal/utils"
	"github.com/sparkkhoj/spark-khoj/models"
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
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
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

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the registration form to
// POST /api/auth/register and returns the confirmation body. No token is
// issued on registration; the caller logs in afterwards.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	var result models.RegisterResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/auth/register")
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterResponse{}, err
	}

	return result, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login. On success the bearer token from the response body is
// stored via SetToken and the full response (token plus user record) is
// returned.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	h.SetToken(result.Token)
	return result, nil
}

// Me implements [ServerAdapter]. It GETs GET /api/users/me. Requires a valid
// bearer token.
func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get("/api/users/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// UpdateProfile implements [ServerAdapter]. It PUTs the partial update to
// PUT /api/users/me and returns the updated record. Requires a valid bearer
// token.
func (h *httpServerAdapter) UpdateProfile(ctx context.Context, update models.UpdateProfileRequest) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&user).
		Put("/api/users/me")
	if err != nil {
		return models.User{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Leaderboard implements [ServerAdapter]. It GETs GET /api/leaderboard with
// the filter encoded as query parameters. Requires a valid bearer token.
func (h *httpServerAdapter) Leaderboard(ctx context.Context, filter models.LeaderboardFilter) ([]models.LeaderboardEntry, error) {
	req := h.authedRequest(ctx)
	if filter.Role != "" {
		req.SetQueryParam("role", string(filter.Role))
	}
	if filter.Sport != "" {
		req.SetQueryParam("sport", filter.Sport)
	}
	if filter.Limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(filter.Limit, 10))
	}

	resp, err := req.Get("/api/leaderboard")
	if err != nil {
		return nil, fmt.Errorf("leaderboard request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var entries []models.LeaderboardEntry
	if err = json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, fmt.Errorf("decode leaderboard response: %w", err)
	}

	return entries, nil
}

// Conversations implements [ServerAdapter]. It GETs GET /api/messages without
// a `with` parameter, which the server answers with the inbox view. Requires
// a valid bearer token.
func (h *httpServerAdapter) Conversations(ctx context.Context) ([]models.Conversation, error) {
	resp, err := h.authedRequest(ctx).Get("/api/messages")
	if err != nil {
		return nil, fmt.Errorf("conversations request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var conversations []models.Conversation
	if err = json.Unmarshal(resp.Body(), &conversations); err != nil {
		return nil, fmt.Errorf("decode conversations response: %w", err)
	}

	return conversations, nil
}

// Conversation implements [ServerAdapter]. It GETs GET /api/messages?with=<id>
// and decodes the full message history. Requires a valid bearer token.
func (h *httpServerAdapter) Conversation(ctx context.Context, correspondentID int64) ([]models.Message, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("with", strconv.FormatInt(correspondentID, 10)).
		Get("/api/messages")
	if err != nil {
		return nil, fmt.Errorf("conversation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var messages []models.Message
	if err = json.Unmarshal(resp.Body(), &messages); err != nil {
		return nil, fmt.Errorf("decode conversation response: %w", err)
	}

	return messages, nil
}

// SendMessage implements [ServerAdapter]. It POSTs the message to
// POST /api/messages and returns the stored record. Requires a valid bearer
// token.
func (h *httpServerAdapter) SendMessage(ctx context.Context, req models.SendMessageRequest) (models.Message, error) {
	var message models.Message

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&message).
		Post("/api/messages")
	if err != nil {
		return models.Message{}, fmt.Errorf("send message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Message{}, err
	}

	return message, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
