package chat

import (
	"strings"
	"unicode"

	"canvas_chat/internal/memory"
)

// BuildPrompt assembles the single prompt string sent to the model:
// system instructions first, then the recent conversation window, then the
// new user message and a trailing "Assistant:" line.
//
// The recent window comes from GetRecent, whose limit counts system turns
// even though they are skipped below, so a window holding system turns
// renders fewer conversational lines than memorySize.
func (s *Service) BuildPrompt(sessionID, userMessage string, memorySize int) string {
	var parts []string

	if sessionID != "" {
		all := s.store.GetAll(sessionID)
		var systemTurns []memory.Turn
		for _, turn := range all {
			if turn.Role == memory.RoleSystem {
				systemTurns = append(systemTurns, turn)
			}
		}
		if len(systemTurns) > 0 {
			parts = append(parts, "System instructions:")
			for _, turn := range systemTurns {
				parts = append(parts, strings.TrimSpace(turn.Text))
			}
			parts = append(parts, "")
		}

		recent := s.store.GetRecent(sessionID, memorySize)
		if len(recent) > 0 {
			parts = append(parts, "Conversation history (oldest → newest):")
			for _, turn := range recent {
				if turn.Role == memory.RoleSystem {
					continue
				}
				parts = append(parts, capitalize(turn.Role)+": "+strings.TrimSpace(turn.Text))
			}
			parts = append(parts, "")
		}
	}

	parts = append(parts, "User: "+strings.TrimSpace(userMessage))
	parts = append(parts, "Assistant:")
	return strings.Join(parts, "\n")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
