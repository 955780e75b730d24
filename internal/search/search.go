package search

import (
	"context"
	"log/slog"
	"time"

	"github.com/youchat-dev/youchat-go/apimodels"
	"github.com/youchat-dev/youchat-go/internal/config"
	"github.com/youchat-dev/youchat-go/internal/youchat"
)

// Searcher resolves incoming requests against the configured defaults and
// runs them through the streaming search client.
type Searcher struct {
	client       youchat.API
	defaultModel youchat.Model
	defaultMode  youchat.ChatMode
}

// New parses the configured defaults once, so a bad YOUCHAT_MODEL or
// YOUCHAT_CHAT_MODE fails at startup instead of on the first request.
func New(client youchat.API, cfg config.YouChatConfig) (*Searcher, error) {
	model, err := youchat.ParseModel(cfg.Model)
	if err != nil {
		return nil, err
	}
	mode, err := youchat.ParseChatMode(cfg.ChatMode)
	if err != nil {
		return nil, err
	}
	return &Searcher{
		client:       client,
		defaultModel: model,
		defaultMode:  mode,
	}, nil
}

// Defaults reports the model and chat mode applied when a request leaves
// them unset.
func (s *Searcher) Defaults() (youchat.Model, youchat.ChatMode) {
	return s.defaultModel, s.defaultMode
}

func (s *Searcher) Search(ctx context.Context, req apimodels.SearchRequest) (*apimodels.SearchResponse, error) {
	slog.Info("Starting search", "query", req.Query, "model", req.Options.Model, "chat_mode", req.Options.ChatMode)
	startTime := time.Now()

	cfg := youchat.Config{
		Model:    s.defaultModel,
		ChatMode: s.defaultMode,
		Query:    req.Query,
	}
	if req.Options.Model != "" {
		model, err := youchat.ParseModel(req.Options.Model)
		if err != nil {
			return nil, err
		}
		cfg.Model = model
	}
	if req.Options.ChatMode != "" {
		mode, err := youchat.ParseChatMode(req.Options.ChatMode)
		if err != nil {
			return nil, err
		}
		cfg.ChatMode = mode
	}

	result, err := s.client.SendRequest(ctx, cfg)
	if err != nil {
		slog.Error("Search request failed", "error", err)
		return nil, err
	}

	slog.Debug("Search completed", "tokens", result.Tokens, "duration", time.Since(startTime))

	return &apimodels.SearchResponse{
		Answer:          result.Answer,
		Query:           result.Query,
		RelatedSearches: result.RelatedSearches,
		Metadata: apimodels.SearchMetadata{
			Duration: time.Since(startTime).String(),
			Model:    string(cfg.Model),
			ChatMode: string(cfg.ChatMode),
			Tokens:   result.Tokens,
		},
	}, nil
}
