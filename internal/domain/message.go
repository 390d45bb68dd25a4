package domain

// Roles validos dentro de una conversacion.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message es un turno de la conversacion tal como lo guarda el cliente.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// UserMessage crea un turno del usuario.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// AssistantMessage crea un turno del asistente.
func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// ValidRole indica si role es uno de los roles aceptados.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAssistant
}
