package youchat

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultBaseURL is the production streaming search endpoint.
	DefaultBaseURL = "https://you.com/api/streamingSearch"

	DefaultSafeSearch = "Moderate"
	DefaultMarket     = "en-IN"

	// timestampLayout is the ISO-8601 local timestamp with microsecond
	// precision that the traceId composite carries.
	timestampLayout = "2006-01-02T15:04:05.000000"
)

// Client talks to the streaming search endpoint. A single Client is safe for
// concurrent use; per-request state lives in Config.
type Client struct {
	httpClient *http.Client
	baseURL    string
	safeSearch string
	market     string
	echo       io.Writer
}

var _ API = (*Client)(nil)

type Option func(*Client)

// WithHTTPClient replaces the transport. The default client carries no
// overall timeout because streams run long; cancellation is the context's
// job.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL points the client at a different endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithEchoWriter redirects the verbose fragment echo, which defaults to
// stdout.
func WithEchoWriter(w io.Writer) Option {
	return func(c *Client) { c.echo = w }
}

// WithSafeSearch sets the safeSearch level sent in the URL and cookies.
func WithSafeSearch(level string) Option {
	return func(c *Client) { c.safeSearch = level }
}

// WithMarket sets the mkt parameter.
func WithMarket(market string) Option {
	return func(c *Client) { c.market = market }
}

func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		baseURL:    DefaultBaseURL,
		safeSearch: DefaultSafeSearch,
		market:     DefaultMarket,
		echo:       os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SendRequest validates cfg, issues the streaming search, and decodes the
// response body. On a mid-stream failure the returned Result holds whatever
// had accumulated before the stream died.
func (c *Client) SendRequest(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	req, err := c.newSearchRequest(ctx, cfg)
	if err != nil {
		return nil, err
	}

	slog.Debug("Sending streaming search request",
		"model", cfg.Model,
		"chat_mode", cfg.ChatMode,
		"query_chars", len(cfg.Query),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		terr := &TransportError{StatusCode: resp.StatusCode}
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 {
			terr.Err = errors.New(string(trimmed))
		}
		return nil, terr
	}

	return c.HandleResponse(ctx, cfg, resp.Body)
}

// newSearchRequest assembles the GET request. The query string is built by
// hand in the service's expected order: q is pre-escaped and traceId embeds
// raw pipes, both of which url.Values would re-encode.
func (c *Client) newSearchRequest(ctx context.Context, cfg Config) (*http.Request, error) {
	var (
		queryTraceID = uuid.NewString()
		chatID       = uuid.NewString()
		turnID       = uuid.NewString()
		traceID      = uuid.NewString() + "|" + uuid.NewString() + "|" + time.Now().Format(timestampLayout)
	)

	params := []string{
		"page=1",
		"count=10",
		"safeSearch=" + c.safeSearch,
		"utm=brave",
		"mkt=" + c.market,
		"enable_worklow_generation_ux=true", // sic, the endpoint's own spelling
		"domain=youchat",
		"use_personalization_extraction=true",
		"queryTraceId=" + queryTraceID,
		"chatId=" + chatID,
		"conversationTurnId=" + turnID,
		"pastChatLength=0",
		"selectedChatMode=" + string(cfg.ChatMode),
		"selectedAiModel=" + string(cfg.Model),
		"enable_agent_clarification_questions=true",
		"traceId=" + traceID,
		"use_nested_youchat_updates=true",
		"q=" + c.PrepareQuery(cfg.Query),
		"chat=%5B%5D", // empty conversation history
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+strings.Join(params, "&"), nil)
	if err != nil {
		return nil, fmt.Errorf("building search request: %w", err)
	}

	for _, cookie := range []*http.Cookie{
		{Name: "safesearch_guest", Value: c.safeSearch},
		{Name: "youchat_personalization", Value: "true"},
		{Name: "youchat_smart_learn", Value: "true"},
		{Name: "youpro_subscription", Value: "true"},
		{Name: "guest_has_seen_legal_disclaimer", Value: "true"},
		{Name: "ai_model", Value: string(cfg.Model)},
		{Name: "you_subscription", Value: "premium"},
		{Name: "DS", Value: uuid.NewString()},
	} {
		req.AddCookie(cookie)
	}

	return req, nil
}
