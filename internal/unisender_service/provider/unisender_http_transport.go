package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Rican7/retry"
	"github.com/Rican7/retry/backoff"
	"github.com/Rican7/retry/strategy"
	"github.com/klauspost/compress/gzip"
	"github.com/tidwall/gjson"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"

	"github.com/aradsms/unisender_services/internal/unisender_service/adapters/unisenderapi"
	"github.com/aradsms/unisender_services/internal/unisender_service/domain"
)

const DefaultAPIHost = "https://api.unisender.com"

// Settings is the transport configuration, copied once at construction.
type Settings struct {
	APIKey      string
	Encoding    string        // charset of the string params handed in; sent as UTF-8
	RetryCount  int           // total attempts per call, at least one
	RetryWait   time.Duration // linear backoff step between attempts
	Timeout     time.Duration // zero means no timeout
	Compression bool          // ask for gzip encoded responses
	Platform    string
	Lang        string // en, ru or ua
	APIHost     string // defaults to DefaultAPIHost
}

// HTTPTransport talks to the Unisender JSON API over HTTP. A call that cannot
// get a 2xx response after RetryCount attempts yields the failure sentinel.
type HTTPTransport struct {
	unisenderapi.Dispatch

	logger     *slog.Logger
	httpClient *http.Client
	settings   Settings
	charset    encoding.Encoding // nil when params are already UTF-8
}

var _ unisenderapi.Transport = (*HTTPTransport)(nil)

func NewHTTPTransport(logger *slog.Logger, settings Settings, httpClient *http.Client) (*HTTPTransport, error) {
	if settings.APIHost == "" {
		settings.APIHost = DefaultAPIHost
	}
	if settings.Lang == "" {
		settings.Lang = "en"
	}
	if settings.RetryCount < 1 {
		settings.RetryCount = 1
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: settings.Timeout}
	}

	charset, err := lookupCharset(settings.Encoding)
	if err != nil {
		return nil, err
	}

	t := &HTTPTransport{
		logger:     logger.With("provider", "unisender_http"),
		httpClient: httpClient,
		settings:   settings,
		charset:    charset,
	}
	t.Dispatch = unisenderapi.TransportFunc("http", t.call)
	return t, nil
}

func lookupCharset(name string) (encoding.Encoding, error) {
	if name == "" {
		return nil, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", name, err)
	}
	if enc == unicode.UTF8 {
		return nil, nil
	}
	return enc, nil
}

// transcode converts a param from the configured charset to UTF-8. Decoders
// carry state, so each call gets its own.
func (t *HTTPTransport) transcode(s string) (string, error) {
	if t.charset == nil {
		return s, nil
	}
	return t.charset.NewDecoder().String(s)
}

func (t *HTTPTransport) endpoint(op domain.Operation) string {
	return fmt.Sprintf("%s/%s/api/%s?format=json", strings.TrimRight(t.settings.APIHost, "/"), t.settings.Lang, op)
}

func (t *HTTPTransport) call(ctx context.Context, op domain.Operation, params domain.OperationParams) (domain.RawPayload, error) {
	form, err := encodeParams(params, t.transcode)
	if err != nil {
		return domain.RawPayload{}, err
	}
	form.Set("api_key", t.settings.APIKey)
	if t.settings.Platform != "" {
		form.Set("platform", t.settings.Platform)
	}
	encoded := form.Encode()
	endpoint := t.endpoint(op)

	if err := ctx.Err(); err != nil {
		return domain.RawPayload{}, err
	}

	var (
		body      string
		attempts  int
		permanent error
	)
	keepTrying := func(uint) bool {
		return permanent == nil && ctx.Err() == nil && attempts < t.settings.RetryCount
	}

	lastErr := retry.Retry(func(uint) error {
		attempts++
		b, err := t.post(ctx, endpoint, encoded)
		if err != nil {
			var reqErr *requestError
			if errors.As(err, &reqErr) {
				permanent = reqErr.err
			}
			t.logger.WarnContext(ctx, "Unisender request attempt failed", "operation", op, "attempt", attempts, "error", err)
			return err
		}
		body = b
		return nil
	}, keepTrying, waitBackoff(ctx, backoff.Linear(t.settings.RetryWait)))

	if permanent != nil {
		return domain.RawPayload{}, permanent
	}
	if lastErr != nil || attempts == 0 {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.RawPayload{}, ctxErr
		}
		t.logger.ErrorContext(ctx, "Unisender request failed after retries", "operation", op, "attempts", attempts, "error", lastErr)
		return domain.FailedPayload(), nil
	}

	if code := gjson.Get(body, "code"); code.Exists() {
		t.logger.DebugContext(ctx, "Unisender reported an error", "operation", op, "code", code.String(), "error", gjson.Get(body, "error").String())
	}
	t.logger.DebugContext(ctx, "Received Unisender response", "operation", op, "attempts", attempts, "bytes", len(body))
	return domain.TextPayload(body), nil
}

// waitBackoff is strategy.Backoff that stops waiting once ctx is done.
func waitBackoff(ctx context.Context, algorithm backoff.Algorithm) strategy.Strategy {
	return func(attempt uint) bool {
		wait := algorithm(attempt)
		if attempt == 0 || wait <= 0 {
			return ctx.Err() == nil
		}
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-timer.C:
			return true
		case <-ctx.Done():
			return false
		}
	}
}

// requestError marks failures that retrying cannot fix.
type requestError struct{ err error }

func (e *requestError) Error() string { return e.err.Error() }
func (e *requestError) Unwrap() error { return e.err }

func (t *HTTPTransport) post(ctx context.Context, endpoint, form string) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form))
	if err != nil {
		return "", &requestError{fmt.Errorf("failed to create HTTP request for Unisender: %w", err)}
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
	httpReq.Header.Set("Accept", "application/json")
	if t.settings.Compression {
		// Setting the header ourselves disables net/http's transparent gunzip.
		httpReq.Header.Set("Accept-Encoding", "gzip")
	}

	httpResp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to send request to Unisender: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, httpResp.Body)
		return "", fmt.Errorf("Unisender API returned status %d", httpResp.StatusCode)
	}

	reader := io.Reader(httpResp.Body)
	if strings.EqualFold(httpResp.Header.Get("Content-Encoding"), "gzip") {
		gz, err := gzip.NewReader(httpResp.Body)
		if err != nil {
			return "", fmt.Errorf("failed to open gzip response from Unisender: %w", err)
		}
		defer gz.Close()
		reader = gz
	}

	respBytes, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read Unisender response body: %w", err)
	}
	return string(respBytes), nil
}
