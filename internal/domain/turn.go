package domain

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one record of the completion service's conversation memory.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// UserTurn returns a user-authored turn.
func UserTurn(text string) Turn {
	return Turn{Role: RoleUser, Text: text}
}

// ModelTurn returns a model-authored turn.
func ModelTurn(text string) Turn {
	return Turn{Role: RoleModel, Text: text}
}

// TurnsToItems rebuilds transcript items from conversation turns.
// User turns become user items and model turns become gemini items.
func TurnsToItems(turns []Turn) []HistoryItem {
	items := make([]HistoryItem, 0, len(turns))
	for _, turn := range turns {
		if turn.Text == "" {
			continue
		}
		t := MessageTypeGemini
		if turn.Role == RoleUser {
			t = MessageTypeUser
		}
		items = append(items, NewTextItem(t, turn.Text))
	}
	return items
}

// EstimateTokens approximates the token count of the turns (four characters per token).
func EstimateTokens(turns []Turn) int {
	chars := 0
	for _, turn := range turns {
		chars += len(turn.Text)
	}
	return (chars + 3) / 4
}
