package adapter

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/refgame/internal/config"
	"github.com/MKhiriev/refgame/internal/logger"
	"github.com/MKhiriev/refgame/internal/utils"
	"github.com/MKhiriev/refgame/models"
)

// hashHeader carries the hex HMAC-SHA256 signature of the request body.
const hashHeader = "HashSHA256"

type httpTrackerAdapter struct {
	client *utils.HTTPClient

	hashKey string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPTrackerAdapter constructs an HTTP/REST implementation of
// [TrackerAdapter]. It normalises and validates the base URL from
// cfg.BaseURL, configures the underlying HTTP client with the resolved base
// URL and request timeout, and initialises the shared HMAC hasher pool used
// for transport integrity hashes.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPTrackerAdapter(cfg config.Tracker, logger *logger.Logger) (TrackerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid tracker base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	if cfg.HashKey != "" {
		utils.InitHasherPool(cfg.HashKey)
	}

	return &httpTrackerAdapter{client: client, hashKey: cfg.HashKey, logger: logger}, nil
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

// SetToken implements [TrackerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated requests.
func (h *httpTrackerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [TrackerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpTrackerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [TrackerAdapter]. It POSTs the user credentials to
// POST /api/user/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpTrackerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/user/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.User{}, fmt.Errorf("register parse user id: %w", err)
	}

	h.SetToken(token)
	return models.User{UserID: userID, Login: user.Login, Name: user.Name}, nil
}

// Login implements [TrackerAdapter]. It POSTs the credentials to
// POST /api/user/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpTrackerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/user/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.User{}, fmt.Errorf("login parse user id: %w", err)
	}

	h.SetToken(token)
	return models.User{UserID: userID, Login: user.Login}, nil
}

// UploadRun implements [TrackerAdapter]. It POSTs the run record to
// POST /api/runs, signing the body when a hash key is configured.
func (h *httpTrackerAdapter) UploadRun(ctx context.Context, run models.Run) error {
	resp, err := h.signedRequest(ctx, run)
	if err != nil {
		return fmt.Errorf("upload run encode: %w", err)
	}

	response, err := resp.Post("/api/runs")
	if err != nil {
		return fmt.Errorf("upload run request: %w", err)
	}

	return mapHTTPError(response)
}

// UploadEpisodes implements [TrackerAdapter]. It POSTs one episode batch to
// POST /api/runs/{run_id}/episodes, signing the body when a hash key is
// configured.
func (h *httpTrackerAdapter) UploadEpisodes(ctx context.Context, runID string, episodes []models.Episode) error {
	resp, err := h.signedRequest(ctx, models.EpisodeBatchUpload{Episodes: episodes})
	if err != nil {
		return fmt.Errorf("upload episodes encode: %w", err)
	}

	response, err := resp.Post("/api/runs/" + url.PathEscape(runID) + "/episodes")
	if err != nil {
		return fmt.Errorf("upload episodes request: %w", err)
	}

	return mapHTTPError(response)
}

// GetRunMetrics implements [TrackerAdapter]. It GETs
// GET /api/runs/{run_id}/metrics and decodes the aggregated report.
func (h *httpTrackerAdapter) GetRunMetrics(ctx context.Context, runID string) (models.MetricsReport, error) {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}

	response, err := req.Get("/api/runs/" + url.PathEscape(runID) + "/metrics")
	if err != nil {
		return models.MetricsReport{}, fmt.Errorf("get run metrics request: %w", err)
	}
	if err = mapHTTPError(response); err != nil {
		return models.MetricsReport{}, err
	}

	var report models.MetricsReport
	if err = json.Unmarshal(response.Body(), &report); err != nil {
		return models.MetricsReport{}, fmt.Errorf("get run metrics decode: %w", err)
	}
	return report, nil
}

// signedRequest builds an authenticated JSON request carrying body. The body
// is marshaled here so the signature and the wire bytes cannot diverge.
func (h *httpTrackerAdapter) signedRequest(ctx context.Context, body any) (*resty.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	if h.hashKey != "" {
		req.SetHeader(hashHeader, hex.EncodeToString(utils.Hash(payload)))
	}

	return req, nil
}
