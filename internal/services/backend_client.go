package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"lookup-console/internal/config"
	"lookup-console/internal/dto"
	apperrors "lookup-console/internal/errors"
	"lookup-console/internal/logger"
	"lookup-console/internal/models"
)

// APIKeyHeader carries the session token on authenticated backend calls
const APIKeyHeader = "x-api-key"

// Backend paths
const (
	PathLogin   = "/login"
	PathSearch  = "/search"
	PathReload  = "/reload"
	PathExport  = "/export"
	PathHistory = "/history"
	PathRecords = "/records"
)

// QueryParam is one key/value pair of an ordered query string
type QueryParam struct {
	Key   string
	Value string
}

// Query keeps parameters in insertion order and keeps empty values
type Query []QueryParam

// Encode renders the query the way a browser form would, preserving order
func (q Query) Encode() string {
	var sb strings.Builder
	for i, p := range q {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}
	return sb.String()
}

// RequestOptions describes one backend call. An empty Token sends no x-api-key header.
type RequestOptions struct {
	Token string
	Query Query
	Body  any
}

type acceptTransport struct {
	base http.RoundTripper
}

func (t *acceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "lookup-console")

	return t.base.RoundTrip(req)
}

// BackendClient talks to the record-lookup backend
type BackendClient struct {
	config  *config.BackendConfig
	client  *http.Client
	logger  *slog.Logger
	metrics MetricsRecorderInterface
}

// NewBackendClient creates a backend client. A zero timeout leaves the http.Client default (none).
func NewBackendClient(
	cfg *config.BackendConfig,
	logger *slog.Logger,
	metrics MetricsRecorderInterface,
) BackendClientInterface {

	client := &http.Client{
		Transport: &acceptTransport{base: http.DefaultTransport},
		Timeout:   cfg.Timeout,
	}

	return &BackendClient{
		config:  cfg,
		client:  client,
		logger:  logger,
		metrics: metrics,
	}
}

func (s *BackendClient) buildRequest(
	ctx context.Context,
	method, path string,
	opts RequestOptions,
) (*http.Request, error) {

	var buf io.Reader
	if opts.Body != nil {
		b, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		buf = bytes.NewReader(b)
	}

	target := s.config.URL + path
	if len(opts.Query) > 0 {
		target += "?" + opts.Query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if opts.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if opts.Token != "" {
		req.Header.Set(APIKeyHeader, opts.Token)
	}

	return req, nil
}

func (s *BackendClient) do(req *http.Request) (*http.Response, []byte, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		logger.FromContext(req.Context(), s.logger).Error(
			"backend request failed",
			"method", req.Method,
			"path", req.URL.Path,
			"error", err,
		)
		return nil, nil, err
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()

	if err != nil {
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}

	return resp, body, nil
}

// Request performs one backend call and decodes a 2xx JSON body into out.
// Errors are *apperrors.ConsoleError of kind Network or HTTP.
func (s *BackendClient) Request(ctx context.Context, method, path string, opts RequestOptions, out any) error {
	start := time.Now()
	err := s.request(ctx, method, path, opts, out)
	s.observe(path, start, err)
	return err
}

func (s *BackendClient) request(ctx context.Context, method, path string, opts RequestOptions, out any) error {
	req, err := s.buildRequest(ctx, method, path, opts)
	if err != nil {
		return apperrors.NewNetwork(err)
	}

	resp, body, err := s.do(req)
	if err != nil {
		return apperrors.NewNetwork(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp dto.BackendErrorResponse
		detail := ""
		if jsonErr := json.Unmarshal(body, &errResp); jsonErr == nil {
			detail = errResp.DetailText()
		}

		logger.FromContext(ctx, s.logger).Warn(
			"backend returned error status",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"has_detail", detail != "",
		)

		return apperrors.NewHTTP(resp.StatusCode, detail)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		logger.FromContext(ctx, s.logger).Error(
			"backend returned malformed body",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"error", err,
		)
		return apperrors.NewMalformedResponse(resp.StatusCode, fmt.Errorf("decode %s response: %w", path, err))
	}

	return nil
}

func (s *BackendClient) observe(path string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}

	outcome := "success"
	if ce, ok := apperrors.AsConsoleError(err); ok {
		outcome = ce.Kind.String()
	} else if err != nil {
		outcome = "error"
	}

	tags := map[string]string{"endpoint": path, "outcome": outcome}
	s.metrics.IncrementCounter(MetricBackendRequest, tags)
	s.metrics.RecordProcessingTime(MetricBackendRequest, time.Since(start), tags)
}

// Login exchanges a PIN for a session token. A non-2xx answer or a 2xx answer
// without token is returned as a rejection carrying the backend detail.
func (s *BackendClient) Login(ctx context.Context, pin string) (*LoginResult, error) {
	var resp dto.LoginResponse
	err := s.Request(ctx, http.MethodPost, PathLogin, RequestOptions{
		Body: dto.LoginRequest{PIN: pin},
	}, &resp)
	if err != nil {
		if ce, ok := apperrors.AsConsoleError(err); ok && ce.Kind == apperrors.KindHTTP {
			rejection := apperrors.NewRejection(apperrors.AuthInvalidPIN, ce.Detail)
			rejection.Status = ce.Status
			return nil, rejection
		}
		return nil, err
	}

	if resp.Token.String() == "" {
		return nil, apperrors.NewRejection(apperrors.AuthInvalidPIN, resp.DetailText())
	}

	return &LoginResult{Token: resp.Token.String(), Operator: resp.Operator.String()}, nil
}

// Search runs a field search or a partial-value search depending on the criteria
func (s *BackendClient) Search(ctx context.Context, token string, criteria models.SearchCriteria) (*models.SearchResult, error) {
	var query Query
	if criteria.Type() == models.SearchTypeValue {
		query = Query{{Key: "value", Value: criteria.Value}}
	} else {
		query = Query{
			{Key: "name", Value: criteria.Name},
			{Key: "dpi", Value: criteria.NationalID},
			{Key: "nit", Value: criteria.TaxID},
		}
	}

	var resp dto.SearchResponse
	if err := s.Request(ctx, http.MethodGet, PathSearch, RequestOptions{Token: token, Query: query}, &resp); err != nil {
		return nil, err
	}

	result := resp.ToModel()
	return &result, nil
}

// SearchByValue runs a partial-value search
func (s *BackendClient) SearchByValue(ctx context.Context, token, value string) (*models.SearchResult, error) {
	return s.Search(ctx, token, models.NewValueCriteria(value))
}

// Reload asks the backend to reload its store and returns the row count as sent
func (s *BackendClient) Reload(ctx context.Context, token string) (string, error) {
	var resp dto.ReloadResponse
	if err := s.Request(ctx, http.MethodGet, PathReload, RequestOptions{Token: token}, &resp); err != nil {
		return "", err
	}
	return resp.RowsLoaded.String(), nil
}

// Export returns the CSV text of the last result
func (s *BackendClient) Export(ctx context.Context, token string) (string, error) {
	var resp dto.ExportResponse
	if err := s.Request(ctx, http.MethodGet, PathExport, RequestOptions{Token: token}, &resp); err != nil {
		return "", err
	}
	return resp.CSV, nil
}

// History returns past queries
func (s *BackendClient) History(ctx context.Context, token string) ([]models.HistoryEntry, error) {
	var resp dto.HistoryResponse
	if err := s.Request(ctx, http.MethodGet, PathHistory, RequestOptions{Token: token}, &resp); err != nil {
		return nil, err
	}
	return resp.ToModel(), nil
}

// Records returns at most limit raw rows
func (s *BackendClient) Records(ctx context.Context, token string, limit int) ([]models.RawRecord, error) {
	query := Query{{Key: "limit", Value: strconv.Itoa(limit)}}

	var resp dto.RecordsResponse
	if err := s.Request(ctx, http.MethodGet, PathRecords, RequestOptions{Token: token, Query: query}, &resp); err != nil {
		return nil, err
	}
	return resp.ToModel(limit), nil
}
