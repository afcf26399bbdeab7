package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/keypass/models"
)

type VaultClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type vaultHTTPAdapter struct {
	client *resty.Client
}

func NewVaultClient(cfg VaultClientConfig) VaultClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8000"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &vaultHTTPAdapter{client: cli}
}

func (v *vaultHTTPAdapter) CreateEntry(ctx context.Context, entry models.PasswordEntry) (models.Credential, error) {
	resp, err := v.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(entry).
		Post("/passwords/")
	if err != nil {
		return models.Credential{}, fmt.Errorf("create entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Credential{}, err
	}

	var credential models.Credential
	if err = json.Unmarshal(resp.Body(), &credential); err != nil {
		return models.Credential{}, fmt.Errorf("decode create entry response: %w", err)
	}

	return credential, nil
}

func (v *vaultHTTPAdapter) GetEntriesByTitle(ctx context.Context, title string) ([]models.Credential, error) {
	resp, err := v.client.R().
		SetContext(ctx).
		Get("/passwords/" + url.PathEscape(title))
	if err != nil {
		return nil, fmt.Errorf("get entries request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var credentials []models.Credential
	if err = json.Unmarshal(resp.Body(), &credentials); err != nil {
		return nil, fmt.Errorf("decode get entries response: %w", err)
	}

	return credentials, nil
}

func (v *vaultHTTPAdapter) GetEntry(ctx context.Context, title string, username string) (models.Credential, error) {
	resp, err := v.client.R().
		SetContext(ctx).
		Get("/passwords/" + url.PathEscape(title) + "/" + url.PathEscape(username))
	if err != nil {
		return models.Credential{}, fmt.Errorf("get entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Credential{}, err
	}

	var credential models.Credential
	if err = json.Unmarshal(resp.Body(), &credential); err != nil {
		return models.Credential{}, fmt.Errorf("decode get entry response: %w", err)
	}

	return credential, nil
}

func (v *vaultHTTPAdapter) UpdateEntry(ctx context.Context, entry models.UpdateEntry) (models.Credential, error) {
	resp, err := v.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(entry).
		Put("/passwords/")
	if err != nil {
		return models.Credential{}, fmt.Errorf("update entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Credential{}, err
	}

	var credential models.Credential
	if err = json.Unmarshal(resp.Body(), &credential); err != nil {
		return models.Credential{}, fmt.Errorf("decode update entry response: %w", err)
	}

	return credential, nil
}

func (v *vaultHTTPAdapter) DeleteEntry(ctx context.Context, title string, username string) error {
	resp, err := v.client.R().
		SetContext(ctx).
		Delete("/passwords/" + url.PathEscape(title) + "/" + url.PathEscape(username))
	if err != nil {
		return fmt.Errorf("delete entry request: %w", err)
	}

	return mapHTTPError(resp)
}

func (v *vaultHTTPAdapter) GetAllTitles(ctx context.Context) ([]string, error) {
	resp, err := v.client.R().
		SetContext(ctx).
		Get("/titles/")
	if err != nil {
		return nil, fmt.Errorf("get titles request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var titles []string
	if err = json.Unmarshal(resp.Body(), &titles); err != nil {
		return nil, fmt.Errorf("decode titles response: %w", err)
	}

	return titles, nil
}

func (v *vaultHTTPAdapter) Health(ctx context.Context) error {
	resp, err := v.client.R().
		SetContext(ctx).
		Get("/healthz")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("%w: http %d", ErrUnhealthy, resp.StatusCode())
	}

	return nil
}

// mapHTTPError переводит ответы сервера с ошибкой в sentinel-ошибки клиента.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	detail := parseDetail(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		if strings.Contains(strings.ToLower(detail), "already exists") {
			return fmt.Errorf("%w: %s", ErrDuplicateEntry, detail)
		}
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrInvalidCredentials, detail)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, detail)
	}

	if detail == "" {
		detail = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), detail)
}

func parseDetail(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Detail == "" {
		return strings.TrimSpace(string(body))
	}
	return payload.Detail
}
