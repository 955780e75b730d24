package youchat

// Model identifies an AI model the streaming search endpoint can route a
// query to. Values are the service's own wire names and travel verbatim in
// the selectedAiModel parameter and the ai_model cookie.
type Model string

const (
	ModelOpenAIO1        Model = "openai_o1"
	ModelOpenAIO1Preview Model = "openai_o1_preview"
	ModelOpenAIO1Mini    Model = "openai_o1_mini"
	ModelGPT4oMini       Model = "gpt_4o_mini"
	ModelGPT4o           Model = "gpt_4o"
	ModelGPT4Turbo       Model = "gpt_4_turbo"
	ModelGPT4            Model = "gpt_4"
	ModelGrok2           Model = "grok_2"
	ModelClaude3_5Sonnet Model = "claude_3_5_sonnet"
	ModelClaude3Opus     Model = "claude_3_opus"
	ModelClaude3Sonnet   Model = "claude_3_sonnet"
	ModelClaude3_5Haiku  Model = "claude_3_5_haiku"
	ModelClaude3Haiku    Model = "claude_3_haiku"
	ModelLlama3_3_70B    Model = "llama3_3_70b"
	ModelLlama3_2_90B    Model = "llama3_2_90b"
	ModelLlama3_2_11B    Model = "llama3_2_11b"
	ModelLlama3_1_405B   Model = "llama3_1_405b"
	ModelLlama3_1_70B    Model = "llama3_1_70b"
	ModelLlama3          Model = "llama3"
	ModelMistralLarge2   Model = "mistral_large_2"
	ModelGemini1_5Flash  Model = "gemini_1_5_flash"
	ModelGemini1_5Pro    Model = "gemini_1_5_pro"
	ModelDBRXInstruct    Model = "databricks_dbrx_instruct"
	ModelQwen2_5_72B     Model = "qwen2p5_72b"
	ModelQwen2_5Coder32B Model = "qwen2p5_coder_32b"
	ModelCommandR        Model = "command_r"
	ModelCommandRPlus    Model = "command_r_plus"
	ModelSolar1Mini      Model = "solar_1_mini"
	ModelDolphin2_5      Model = "dolphin_2_5"
)

// Models lists every model the service accepts, in catalog order.
var Models = []Model{
	ModelOpenAIO1,
	ModelOpenAIO1Preview,
	ModelOpenAIO1Mini,
	ModelGPT4oMini,
	ModelGPT4o,
	ModelGPT4Turbo,
	ModelGPT4,
	ModelGrok2,
	ModelClaude3_5Sonnet,
	ModelClaude3Opus,
	ModelClaude3Sonnet,
	ModelClaude3_5Haiku,
	ModelClaude3Haiku,
	ModelLlama3_3_70B,
	ModelLlama3_2_90B,
	ModelLlama3_2_11B,
	ModelLlama3_1_405B,
	ModelLlama3_1_70B,
	ModelLlama3,
	ModelMistralLarge2,
	ModelGemini1_5Flash,
	ModelGemini1_5Pro,
	ModelDBRXInstruct,
	ModelQwen2_5_72B,
	ModelQwen2_5Coder32B,
	ModelCommandR,
	ModelCommandRPlus,
	ModelSolar1Mini,
	ModelDolphin2_5,
}

// ChatMode selects how the service handles a query.
type ChatMode string

const (
	ChatModeCustom   ChatMode = "custom"
	ChatModeResearch ChatMode = "research"
	ChatModeDefault  ChatMode = "default"
)

// ChatModes lists every chat mode the service accepts.
var ChatModes = []ChatMode{ChatModeCustom, ChatModeResearch, ChatModeDefault}

// Defaults applied when a caller leaves model or mode unset.
const (
	DefaultModel    = ModelGPT4o
	DefaultChatMode = ChatModeDefault
)

func (m Model) Valid() bool {
	for _, known := range Models {
		if m == known {
			return true
		}
	}
	return false
}

func (m ChatMode) Valid() bool {
	for _, known := range ChatModes {
		if m == known {
			return true
		}
	}
	return false
}

// ParseModel converts an untrusted string into a Model. Handlers and CLI
// flags go through here so the rest of the code can trust the type.
func ParseModel(s string) (Model, error) {
	m := Model(s)
	if !m.Valid() {
		return "", &InvalidModelError{Model: m}
	}
	return m, nil
}

// ParseChatMode converts an untrusted string into a ChatMode.
func ParseChatMode(s string) (ChatMode, error) {
	m := ChatMode(s)
	if !m.Valid() {
		return "", &InvalidChatModeError{Mode: m}
	}
	return m, nil
}
