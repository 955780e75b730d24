package search

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/youchat-dev/youchat-go/apimodels"
	"github.com/youchat-dev/youchat-go/internal/config"
	"github.com/youchat-dev/youchat-go/internal/youchat"
)

// fakeClient records the config it was called with and returns canned data.
type fakeClient struct {
	lastCfg youchat.Config
	calls   int
	res     *youchat.Result
	err     error
}

func (f *fakeClient) PrepareQuery(q string) string { return q }

func (f *fakeClient) SendRequest(_ context.Context, cfg youchat.Config) (*youchat.Result, error) {
	f.lastCfg = cfg
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.res, nil
}

func (f *fakeClient) HandleResponse(_ context.Context, _ youchat.Config, _ io.Reader) (*youchat.Result, error) {
	return f.res, f.err
}

func defaultConfig() config.YouChatConfig {
	return config.YouChatConfig{Model: "gpt_4o", ChatMode: "default"}
}

func TestSearchAppliesConfiguredDefaults(t *testing.T) {
	fake := &fakeClient{res: &youchat.Result{Answer: "42", Tokens: 1}}
	s, err := New(fake, defaultConfig())
	assert.NoError(t, err, "expected valid defaults to construct")

	resp, err := s.Search(context.Background(), apimodels.SearchRequest{Query: "meaning of life"})
	assert.NoError(t, err, "expected the search to succeed")

	assert.Equal(t, youchat.ModelGPT4o, fake.lastCfg.Model, "the configured default model should apply")
	assert.Equal(t, youchat.ChatModeDefault, fake.lastCfg.ChatMode, "the configured default mode should apply")
	assert.Equal(t, "meaning of life", fake.lastCfg.Query, "the query should pass through unchanged")
	assert.False(t, fake.lastCfg.Verbose, "server-side searches never echo to stdout")

	assert.Equal(t, "42", resp.Answer, "the answer should be copied into the response")
	assert.Equal(t, "gpt_4o", resp.Metadata.Model, "metadata should name the model used")
	assert.Equal(t, "default", resp.Metadata.ChatMode, "metadata should name the mode used")
	assert.Equal(t, 1, resp.Metadata.Tokens, "metadata should carry the fragment count")
	assert.NotEmpty(t, resp.Metadata.Duration, "metadata should carry a duration")
}

func TestSearchHonorsRequestOverrides(t *testing.T) {
	fake := &fakeClient{res: &youchat.Result{}}
	s, err := New(fake, defaultConfig())
	assert.NoError(t, err, "expected valid defaults to construct")

	_, err = s.Search(context.Background(), apimodels.SearchRequest{
		Query:   "hi",
		Options: apimodels.SearchOptions{Model: "claude_3_5_sonnet", ChatMode: "research"},
	})
	assert.NoError(t, err, "expected the search to succeed")

	assert.Equal(t, youchat.ModelClaude3_5Sonnet, fake.lastCfg.Model, "a request model should override the default")
	assert.Equal(t, youchat.ChatModeResearch, fake.lastCfg.ChatMode, "a request mode should override the default")
}

func TestSearchRejectsUnknownOverrides(t *testing.T) {
	fake := &fakeClient{res: &youchat.Result{}}
	s, err := New(fake, defaultConfig())
	assert.NoError(t, err, "expected valid defaults to construct")

	_, err = s.Search(context.Background(), apimodels.SearchRequest{
		Query:   "hi",
		Options: apimodels.SearchOptions{Model: "gpt5"},
	})
	var invalidModel *youchat.InvalidModelError
	assert.True(t, errors.As(err, &invalidModel), "expected an InvalidModelError")

	_, err = s.Search(context.Background(), apimodels.SearchRequest{
		Query:   "hi",
		Options: apimodels.SearchOptions{ChatMode: "creative"},
	})
	var invalidMode *youchat.InvalidChatModeError
	assert.True(t, errors.As(err, &invalidMode), "expected an InvalidChatModeError")

	assert.Zero(t, fake.calls, "invalid overrides must not reach the client")
}

func TestSearchPropagatesClientErrors(t *testing.T) {
	terr := &youchat.TransportError{Err: errors.New("connection reset")}
	fake := &fakeClient{err: terr}
	s, err := New(fake, defaultConfig())
	assert.NoError(t, err, "expected valid defaults to construct")

	_, err = s.Search(context.Background(), apimodels.SearchRequest{Query: "hi"})
	var got *youchat.TransportError
	assert.True(t, errors.As(err, &got), "transport errors should pass through untouched")
}

func TestNewRejectsInvalidDefaults(t *testing.T) {
	_, err := New(&fakeClient{}, config.YouChatConfig{Model: "gpt5", ChatMode: "default"})
	assert.Error(t, err, "a bad default model should fail construction")

	_, err = New(&fakeClient{}, config.YouChatConfig{Model: "gpt_4o", ChatMode: "creative"})
	assert.Error(t, err, "a bad default mode should fail construction")
}
