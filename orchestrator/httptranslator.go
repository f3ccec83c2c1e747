package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"golang.org/x/xerrors"
)

// HTTPTranslator calls a JSON translation endpoint over net/http,
// rate-limited with golang.org/x/time/rate and logged with logrus
// the way the rest of this module logs (§9). It implements Translator,
// BatchTranslator and ConfidenceTranslator.
type HTTPTranslator struct {
	client  *http.Client
	baseURL string
	apiKey  string
	limiter *rate.Limiter
	log     *logrus.Entry
}

// HTTPTranslatorOption configures an HTTPTranslator.
type HTTPTranslatorOption func(*HTTPTranslator)

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(client *http.Client) HTTPTranslatorOption {
	return func(t *HTTPTranslator) { t.client = client }
}

// WithRateLimit caps outbound requests per second, with the given
// burst. Providers commonly throttle translation endpoints; a request
// beyond the limit waits for the limiter rather than letting every block
// hammer the provider at once. A wait that fails (context cancelled,
// deadline too close, or more tokens requested than the burst) surfaces
// as a RateLimited TranslatorError.
func WithRateLimit(requestsPerSecond float64, burst int) HTTPTranslatorOption {
	return func(t *HTTPTranslator) { t.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), burst) }
}

// WithLogger overrides the default logrus.Entry.
func WithLogger(log *logrus.Entry) HTTPTranslatorOption {
	return func(t *HTTPTranslator) { t.log = log }
}

// NewHTTPTranslator builds an HTTPTranslator against baseURL, authenticating
// with apiKey as a bearer token.
func NewHTTPTranslator(baseURL, apiKey string, opts ...HTTPTranslatorOption) *HTTPTranslator {
	t := &HTTPTranslator{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: baseURL,
		apiKey:  apiKey,
		limiter: rate.NewLimiter(rate.Limit(10), 10),
		log:     logrus.WithField("component", "orchestrator.http_translator"),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

type translateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

type translateResponse struct {
	Translation string   `json:"translation"`
	Confidence  *float64 `json:"confidence"`
}

type batchTranslateRequest struct {
	Texts      []string `json:"texts"`
	SourceLang string   `json:"source_lang"`
	TargetLang string   `json:"target_lang"`
}

type batchTranslateResponse struct {
	Translations []string `json:"translations"`
}

// Translate implements Translator.
func (t *HTTPTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	resp, err := t.doTranslate(ctx, text, sourceLang, targetLang)
	if err != nil {
		return "", err
	}
	return resp.Translation, nil
}

// TranslateWithConfidence implements ConfidenceTranslator. Providers
// that omit a confidence field fall back to 1.0 rather than leaving
// the caller to distinguish "no opinion" from "certain".
func (t *HTTPTranslator) TranslateWithConfidence(ctx context.Context, text, sourceLang, targetLang string) (string, float64, error) {
	resp, err := t.doTranslate(ctx, text, sourceLang, targetLang)
	if err != nil {
		return "", 0, err
	}
	confidence := 1.0
	if resp.Confidence != nil {
		confidence = *resp.Confidence
	}
	return resp.Translation, confidence, nil
}

func (t *HTTPTranslator) doTranslate(ctx context.Context, text, sourceLang, targetLang string) (*translateResponse, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, wrapTranslatorError(RateLimited, -1, err)
	}

	body, err := json.Marshal(translateRequest{Text: text, SourceLang: sourceLang, TargetLang: targetLang})
	if err != nil {
		return nil, wrapTranslatorError(ProviderError, -1, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/translate", bytes.NewReader(body))
	if err != nil {
		return nil, wrapTranslatorError(ProviderError, -1, err)
	}
	t.setHeaders(req)

	httpResp, err := t.client.Do(req)
	if err != nil {
		return nil, t.classifyTransportError(err)
	}
	defer httpResp.Body.Close()

	if kind, ok := classifyStatusCode(httpResp.StatusCode); ok {
		t.log.WithFields(logrus.Fields{"status": httpResp.StatusCode, "kind": kind}).Warn("translator returned non-2xx status")
		return nil, wrapTranslatorError(kind, -1, fmt.Errorf("http status %d", httpResp.StatusCode))
	}

	var resp translateResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, wrapTranslatorError(ProviderError, -1, err)
	}
	return &resp, nil
}

// TranslateBatch implements BatchTranslator: a single round trip for
// the whole slice, preferred by the adapter over per-block calls
// (§4.8 step 1). The response order is trusted to match the request
// order; the adapter never reorders by content.
func (t *HTTPTranslator) TranslateBatch(ctx context.Context, texts []string, sourceLang, targetLang string) ([]string, error) {
	if err := t.limiter.WaitN(ctx, len(texts)); err != nil {
		return nil, wrapTranslatorError(RateLimited, -1, err)
	}

	body, err := json.Marshal(batchTranslateRequest{Texts: texts, SourceLang: sourceLang, TargetLang: targetLang})
	if err != nil {
		return nil, wrapTranslatorError(ProviderError, -1, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/translate_batch", bytes.NewReader(body))
	if err != nil {
		return nil, wrapTranslatorError(ProviderError, -1, err)
	}
	t.setHeaders(req)

	httpResp, err := t.client.Do(req)
	if err != nil {
		return nil, t.classifyTransportError(err)
	}
	defer httpResp.Body.Close()

	if kind, ok := classifyStatusCode(httpResp.StatusCode); ok {
		return nil, wrapTranslatorError(kind, -1, fmt.Errorf("http status %d", httpResp.StatusCode))
	}

	var resp batchTranslateResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, wrapTranslatorError(ProviderError, -1, err)
	}
	if len(resp.Translations) != len(texts) {
		return nil, wrapTranslatorError(ProviderError, -1, fmt.Errorf("translator returned %d translations for %d inputs", len(resp.Translations), len(texts)))
	}
	return resp.Translations, nil
}

func (t *HTTPTranslator) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if t.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+t.apiKey)
	}
}

func (t *HTTPTranslator) classifyTransportError(err error) error {
	if xerrors.Is(err, context.DeadlineExceeded) {
		return wrapTranslatorError(ServiceTimeout, -1, err)
	}
	return wrapTranslatorError(ServiceUnavailable, -1, err)
}

func classifyStatusCode(status int) (TranslatorErrorKind, bool) {
	switch {
	case status == http.StatusTooManyRequests:
		return RateLimited, true
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return AuthFailure, true
	case status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout:
		return ServiceTimeout, true
	case status >= 500:
		return ServiceUnavailable, true
	case status >= 400:
		return ProviderError, true
	default:
		return 0, false
	}
}
