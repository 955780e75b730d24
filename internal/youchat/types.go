package youchat

import (
	"context"
	"io"
)

// API is the full client surface: query escaping, request dispatch, and
// stream decoding. Client is the only implementation; the interface lets
// callers substitute a fake in tests.
type API interface {
	// PrepareQuery escapes a raw query string for the q parameter.
	PrepareQuery(query string) string

	// SendRequest runs one streaming search end to end: validate, build,
	// send, decode.
	SendRequest(ctx context.Context, cfg Config) (*Result, error)

	// HandleResponse decodes a line-oriented event stream into a Result.
	HandleResponse(ctx context.Context, cfg Config, stream io.Reader) (*Result, error)
}

// Config describes a single search request.
type Config struct {
	Model    Model
	ChatMode ChatMode
	Query    string

	// Verbose echoes answer fragments to the client's echo writer as they
	// arrive, exactly as received, with no added separators.
	Verbose bool
}

// Validate checks the model and chat mode against the service catalogs. An
// empty query is allowed; the service answers it like any other.
func (c Config) Validate() error {
	if !c.Model.Valid() {
		return &InvalidModelError{Model: c.Model}
	}
	if !c.ChatMode.Valid() {
		return &InvalidChatModeError{Mode: c.ChatMode}
	}
	return nil
}

// Result accumulates what one event stream delivered.
type Result struct {
	// Answer is the concatenation of every youChatToken fragment in
	// arrival order.
	Answer string `json:"answer"`

	// Query is the last stream object that carried a truthy query field,
	// kept whole. A later object replaces an earlier one outright; fields
	// are never merged.
	Query map[string]any `json:"query,omitempty"`

	// RelatedSearches is the last truthy relatedSearches value seen.
	RelatedSearches []any `json:"relatedSearches,omitempty"`

	// Tokens counts the fragments appended to Answer.
	Tokens int `json:"tokens"`
}
