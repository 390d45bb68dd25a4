package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ConversationKey es la clave fija bajo la que se persiste la conversacion.
const ConversationKey = "nutritionCoachMessages"

// Conversation es la secuencia ordenada de turnos; el orden de insercion es el orden de la charla.
type Conversation []Message

// Clone devuelve una copia independiente de la conversacion.
func (c Conversation) Clone() Conversation {
	out := make(Conversation, len(c))
	copy(out, c)
	return out
}

// EncodeConversation serializa la conversacion completa. Una conversacion nil se guarda como [].
func EncodeConversation(c Conversation) ([]byte, error) {
	if c == nil {
		c = Conversation{}
	}
	return json.Marshal(c)
}

// DecodeConversation parsea y valida el valor persistido contra la forma {role, content}.
func DecodeConversation(raw []byte) (Conversation, error) {
	var items []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedConversation, err)
	}

	conv := make(Conversation, 0, len(items))
	for i, item := range items {
		var msg Message
		roleRaw, okRole := item["role"]
		contentRaw, okContent := item["content"]
		if !okRole || !okContent {
			return nil, fmt.Errorf("%w: item %d missing role or content", ErrMalformedConversation, i)
		}
		if err := json.Unmarshal(roleRaw, &msg.Role); err != nil {
			return nil, fmt.Errorf("%w: item %d role: %v", ErrMalformedConversation, i, err)
		}
		if string(bytes.TrimSpace(contentRaw)) == "null" {
			return nil, fmt.Errorf("%w: item %d content is null", ErrMalformedConversation, i)
		}
		if err := json.Unmarshal(contentRaw, &msg.Content); err != nil {
			return nil, fmt.Errorf("%w: item %d content: %v", ErrMalformedConversation, i, err)
		}
		if !ValidRole(msg.Role) {
			return nil, fmt.Errorf("%w: item %d unknown role %q", ErrMalformedConversation, i, msg.Role)
		}
		conv = append(conv, msg)
	}
	return conv, nil
}
