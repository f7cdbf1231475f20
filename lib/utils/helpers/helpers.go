package helpers

import (
	"context"
	"math"
	"regexp"
	"strings"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

var boldItalicRe = regexp.MustCompile(`\*\*\*(.*?)\*\*\*`)
var boldRe = regexp.MustCompile(`\*\*(.*?)\*\*`)
var italicRe = regexp.MustCompile(`\*(.*?)\*`)
var underline3Re = regexp.MustCompile(`_{3}(.*?)_{3}`)
var underline2Re = regexp.MustCompile(`_{2}(.*?)_{2}`)
var underlineRe = regexp.MustCompile(`_(.*?)_`)

// CleanMarkdown убирает markdown-выделение из текста,
// ИИ любит оборачивать термины в эталонных ответах в звёздочки
func CleanMarkdown(text string) string {
	if text == "" {
		return text
	}
	text = boldItalicRe.ReplaceAllString(text, "$1")
	text = boldRe.ReplaceAllString(text, "$1")
	text = italicRe.ReplaceAllString(text, "$1")
	text = underline3Re.ReplaceAllString(text, "$1")
	text = underline2Re.ReplaceAllString(text, "$1")
	text = underlineRe.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}

// RoundToTenth округляет до одного знака после запятой
func RoundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
