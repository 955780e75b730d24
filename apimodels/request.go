package apimodels

type SearchRequest struct {
	// Query is the natural language question to send to the service
	Query string `json:"query"`

	// Optional parameters to control search behavior
	Options SearchOptions `json:"options,omitempty"`
}

type SearchOptions struct {
	// Model selects the AI model by its wire name (e.g. "gpt_4o");
	// empty means the configured default
	Model string `json:"model,omitempty"`

	// ChatMode selects how the query is handled: "custom", "research",
	// or "default"; empty means the configured default
	ChatMode string `json:"chatMode,omitempty"`
}
