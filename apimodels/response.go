package apimodels

type SearchResponse struct {
	// The accumulated answer text
	Answer string `json:"answer"`

	// The last query echo frame the stream carried, kept whole
	Query map[string]any `json:"query,omitempty"`

	// Related searches suggested by the service
	RelatedSearches []any `json:"relatedSearches,omitempty"`

	// Metadata about the search
	Metadata SearchMetadata `json:"metadata"`
}

type SearchMetadata struct {
	// Time taken for the search
	Duration string `json:"duration"`

	// Model used for the search
	Model string `json:"model"`

	// Chat mode used for the search
	ChatMode string `json:"chatMode"`

	// Number of answer fragments the stream delivered
	Tokens int `json:"tokens"`
}

type ModelsResponse struct {
	// Models the service accepts, in catalog order
	Models []string `json:"models"`

	// Chat modes the service accepts
	ChatModes []string `json:"chatModes"`

	// Defaults applied when a request leaves them unset
	DefaultModel    string `json:"defaultModel"`
	DefaultChatMode string `json:"defaultChatMode"`
}
