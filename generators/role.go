package generators

// Role identifies the speaker of a turn. User, system, and assistant
// follow the OpenAI wire names; model is the Gemini spelling of
// assistant and is converted at each provider boundary. Log is local
// only: bookkeeping turns that never leave the process.
type Role string

const (
	RoleUser      Role = "user"
	RoleSystem    Role = "system"
	RoleAssistant Role = "assistant"
	RoleModel     Role = "model"
	RoleLog       Role = "log"
)
