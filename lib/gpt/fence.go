package gpthandler

import (
	"strings"
)

// StripCodeFence убирает markdown-обёртку ```json ... ``` вокруг ответа ИИ,
// ИИ периодически заворачивает json в код-блок несмотря на инструкцию в промте
func StripCodeFence(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}
