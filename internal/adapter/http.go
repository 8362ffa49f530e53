package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-book-fetcher/internal/config"
	"github.com/MKhiriev/go-book-fetcher/internal/logger"
	"github.com/MKhiriev/go-book-fetcher/internal/utils"
	"github.com/MKhiriev/go-book-fetcher/models"
	"github.com/go-resty/resty/v2"
)

const (
	cookieUserID  = "remix_userid"
	cookieUserKey = "remix_userkey"

	retryWaitTime    = 500 * time.Millisecond
	retryMaxWaitTime = 5 * time.Second
)

type httpBookServiceAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	creds models.Credentials

	logger *logger.Logger
}

// NewHTTPBookServiceAdapter constructs an HTTP implementation of
// [BookServiceAdapter]. It normalises the base URL from adapterCfg.HTTPAddress,
// configures the request timeout, the user agent and retries on HTTP 429, and
// tags every outbound request with an X-Request-ID header.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPBookServiceAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (BookServiceAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient().
		RetryOnTooManyRequests(adapterCfg.RetryCount, retryWaitTime, retryMaxWaitTime)

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			r.SetHeader("X-Request-ID", utils.NewID())
			return nil
		})
	if adapterCfg.UserAgent != "" {
		client.SetHeader("User-Agent", adapterCfg.UserAgent)
	}

	return &httpBookServiceAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
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

// SetCredentials implements [BookServiceAdapter].
func (h *httpBookServiceAdapter) SetCredentials(creds models.Credentials) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.creds = models.Credentials{
		UserID:  models.ExternalID(strings.TrimSpace(creds.UserID.String())),
		UserKey: strings.TrimSpace(creds.UserKey),
	}
}

// Credentials implements [BookServiceAdapter].
func (h *httpBookServiceAdapter) Credentials() models.Credentials {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.creds
}

// Login implements [BookServiceAdapter]. It POSTs the form-encoded email and
// password to /eapi/user/login. On success the user id and session key from
// the response are bound via SetCredentials. A rejected login is reported as
// [ErrUnauthorized].
func (h *httpBookServiceAdapter) Login(ctx context.Context, email, password string) error {
	var lr loginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"email":    email,
			"password": password,
		}).
		Post("/eapi/user/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrRejected) {
			return fmt.Errorf("%w: %s", ErrUnauthorized, errorMessage(resp.Body()))
		}
		return err
	}
	if err = decode(resp, &lr); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	creds := lr.User.Credentials()
	if !creds.Complete() {
		return fmt.Errorf("login: %w: response carries no session key", ErrUnexpectedResponse)
	}

	h.SetCredentials(creds)
	h.logger.Debug().Str("func", "httpBookServiceAdapter.Login").
		Str("user_id", creds.UserID.String()).Msg("session credentials bound")
	return nil
}

// IsLoggedIn implements [BookServiceAdapter]. It probes /eapi/user/profile
// with the bound credentials.
func (h *httpBookServiceAdapter) IsLoggedIn(ctx context.Context) (bool, error) {
	if !h.Credentials().Complete() {
		return false, nil
	}

	_, err := h.Profile(ctx)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrRejected):
		h.logger.Debug().Str("func", "httpBookServiceAdapter.IsLoggedIn").
			Err(err).Msg("session rejected")
		return false, nil
	default:
		return false, err
	}
}

// Profile implements [BookServiceAdapter]. It GETs /eapi/user/profile and
// returns the decoded user record.
func (h *httpBookServiceAdapter) Profile(ctx context.Context) (models.Profile, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Profile{}, err
	}

	resp, err := req.Get("/eapi/user/profile")
	if err != nil {
		return models.Profile{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	var pr profileResponse
	if err = decode(resp, &pr); err != nil {
		return models.Profile{}, fmt.Errorf("profile: %w", err)
	}

	return pr.User, nil
}

// Search implements [BookServiceAdapter]. It POSTs the query to
// /eapi/book/search with languages[] and extensions[] repeated per value.
func (h *httpBookServiceAdapter) Search(ctx context.Context, query models.SearchQuery) ([]models.RawBook, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("message", query.Text)
	if query.Limit > 0 {
		form.Set("limit", strconv.Itoa(query.Limit))
	}
	for _, lang := range query.Languages {
		form.Add("languages[]", lang)
	}
	for _, ext := range query.Formats {
		form.Add("extensions[]", ext)
	}

	resp, err := req.SetFormDataFromValues(form).Post("/eapi/book/search")
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var sr searchResponse
	if err = decode(resp, &sr); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	return sr.Books, nil
}

// DownloadBook implements [BookServiceAdapter]. It resolves the download link
// via /eapi/book/{id}/{hash}/file and then fetches the content from that
// link. The suggested name is "<description> (<author>).<extension>" and is
// not sanitised here.
func (h *httpBookServiceAdapter) DownloadBook(ctx context.Context, book models.Book) (models.BookFile, error) {
	if book.ID.IsZero() || book.Hash == "" {
		return models.BookFile{}, fmt.Errorf("%w: book id and hash are required", ErrBadRequest)
	}

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.BookFile{}, err
	}

	resp, err := req.
		SetPathParams(map[string]string{
			"id":   book.ID.String(),
			"hash": book.Hash,
		}).
		Get("/eapi/book/{id}/{hash}/file")
	if err != nil {
		return models.BookFile{}, fmt.Errorf("file info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BookFile{}, err
	}

	var fr fileResponse
	if err = decode(resp, &fr); err != nil {
		return models.BookFile{}, fmt.Errorf("file info: %w", err)
	}
	if fr.File.DownloadLink == "" {
		return models.BookFile{}, fmt.Errorf("file info: %w: empty download link", ErrUnexpectedResponse)
	}

	req, err = h.authedRequest(ctx)
	if err != nil {
		return models.BookFile{}, err
	}
	content, err := req.Get(fr.File.DownloadLink)
	if err != nil {
		return models.BookFile{}, fmt.Errorf("download request: %w", err)
	}
	if err = mapHTTPStatus(content); err != nil {
		return models.BookFile{}, err
	}

	h.logger.Debug().Str("func", "httpBookServiceAdapter.DownloadBook").
		Str("book_id", book.ID.String()).
		Int("bytes", len(content.Body())).
		Msg("book content fetched")

	return models.BookFile{Name: fileName(fr.File), Content: content.Body()}, nil
}

func (h *httpBookServiceAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	creds := h.Credentials()
	if !creds.Complete() {
		return nil, ErrNoCredentials
	}

	return h.client.R().
		SetContext(ctx).
		SetCookies([]*http.Cookie{
			{Name: cookieUserID, Value: creds.UserID.String()},
			{Name: cookieUserKey, Value: creds.UserKey},
		}), nil
}

func decode(resp *resty.Response, v any) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	return nil
}

func fileName(f fileInfo) string {
	name := strings.TrimSpace(f.Description)
	if author := strings.TrimSpace(f.Author); author != "" {
		name += " (" + author + ")"
	}
	if ext := strings.TrimSpace(f.Extension); ext != "" {
		name += "." + ext
	}
	return name
}
