package internal

import (
	"math"
	"unicode/utf8"
)

// ComputeSummary derives aggregate statistics from an already-assembled
// message list. The caller supplies the conversation-scoped file set
// and the hasCodeContext flag, since the rules for both differ between
// the two source shapes.
func ComputeSummary(messages []Message, filesReferenced []string, hasCodeContext bool) Summary {
	if filesReferenced == nil {
		filesReferenced = []string{}
	}

	summary := Summary{
		MessageCount:    len(messages),
		HasCodeContext:  hasCodeContext,
		FilesReferenced: filesReferenced,
	}

	totalLength := 0
	for _, msg := range messages {
		if msg.Role == RoleUser {
			summary.UserMessageCount++
		} else {
			summary.AssistantMessageCount++
		}
		totalLength += utf8.RuneCountInString(msg.Content)
	}

	if summary.MessageCount > 0 {
		// Rounded mean, half away from zero.
		summary.AverageMessageLength = int(math.Round(float64(totalLength) / float64(summary.MessageCount)))
	}

	return summary
}
