package conversation

import "strings"

// A message only counts as a greeting when it is short. Longer messages with
// a greeting prefix usually carry an actual question.
const greetingMaxTokens = 4

var greetingVocab = []string{
	"chào", "xin chào", "hello", "hi", "hey",
	"good morning", "good afternoon", "good evening",
	"chào bạn", "chào em", "chào anh", "chào chị", "alo",
}

var questionVocab = []string{
	"gì", "sao", "như thế nào", "bao nhiêu", "ở đâu", "khi nào", "tại sao",
}

// IsGreeting reports whether a message is a pure salutation with no question
// attached, so the bot can answer from a template without a retrieval pass.
func IsGreeting(message string) bool {
	m := strings.ToLower(strings.TrimSpace(message))
	if m == "" {
		return false
	}
	if len(strings.Fields(m)) > greetingMaxTokens {
		return false
	}

	var greeted bool
	for _, w := range greetingVocab {
		if strings.Contains(m, w) {
			greeted = true
			break
		}
	}
	if !greeted {
		return false
	}

	for _, w := range questionVocab {
		if strings.Contains(m, w) {
			return false
		}
	}
	return true
}
