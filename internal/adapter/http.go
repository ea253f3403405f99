package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-keycore/internal/config"
	"github.com/MKhiriev/go-pass-keycore/internal/logger"
	"github.com/MKhiriev/go-pass-keycore/models"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter]
// on top of a client configured from adapterCfg.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	client, err := newRestyClient(adapterCfg)
	if err != nil {
		return nil, err
	}

	return &httpServerAdapter{client: client, logger: logger}, nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
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

// GetSync implements [ServerAdapter]. It GETs /api/sync with domains
// excluded and decodes the profile and user decryption options.
func (h *httpServerAdapter) GetSync(ctx context.Context) (models.SyncResponse, error) {
	var syncResp models.SyncResponse

	resp, err := h.authedRequest(ctx).
		SetQueryParam("excludeDomains", "true").
		Get("/api/sync")
	if err != nil {
		return syncResp, fmt.Errorf("sync request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return syncResp, err
	}

	if err = json.Unmarshal(resp.Body(), &syncResp); err != nil {
		return syncResp, fmt.Errorf("decode sync response: %w", err)
	}
	return syncResp, nil
}

// GetAccountRevisionDate implements [ServerAdapter]. The server answers
// GET /api/accounts/revision-date with milliseconds since the Unix epoch.
func (h *httpServerAdapter) GetAccountRevisionDate(ctx context.Context) (time.Time, error) {
	resp, err := h.authedRequest(ctx).Get("/api/accounts/revision-date")
	if err != nil {
		return time.Time{}, fmt.Errorf("revision date request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return time.Time{}, err
	}

	var millis int64
	if err = json.Unmarshal(resp.Body(), &millis); err != nil {
		return time.Time{}, fmt.Errorf("decode revision date: %w", err)
	}
	return time.UnixMilli(millis).UTC(), nil
}

// PostKdf implements [ServerAdapter]. It POSTs req to /api/accounts/kdf.
func (h *httpServerAdapter) PostKdf(ctx context.Context, req models.KdfRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/accounts/kdf")
	if err != nil {
		return fmt.Errorf("kdf request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetServerConfig implements [ServerAdapter]. It GETs /api/config.
func (h *httpServerAdapter) GetServerConfig(ctx context.Context) (models.ServerConfig, error) {
	var cfg models.ServerConfig

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&cfg).
		Get("/api/config")
	if err != nil {
		return cfg, fmt.Errorf("server config request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return cfg, err
	}

	h.logger.Debug().Str("func", "*httpServerAdapter.GetServerConfig").Str("version", cfg.Version).Msg("fetched server config")
	return cfg, nil
}

// PostPrelogin implements [ServerAdapter]. It POSTs the email to
// /api/accounts/prelogin.
func (h *httpServerAdapter) PostPrelogin(ctx context.Context, email string) (models.PreloginResponse, error) {
	var prelogin models.PreloginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.PreloginRequest{Email: email}).
		SetResult(&prelogin).
		Post("/api/accounts/prelogin")
	if err != nil {
		return prelogin, fmt.Errorf("prelogin request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return prelogin, err
	}
	return prelogin, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
