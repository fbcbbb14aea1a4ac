package bubbletea

import (
	"github.com/fwojciec/gemchat"
	"github.com/fwojciec/gemchat/markdown"
)

var _ MessageBlock = (*AssistantBlock)(nil)

// AssistantBlock renders an assistant reply with markdown formatting.
// Rendering is width-sensitive, so output is cached per width and
// re-rendered only when the terminal is resized.
type AssistantBlock struct {
	text    string
	theme   gemchat.Theme
	byWidth map[int]string
}

// NewAssistantBlock creates an AssistantBlock for the given reply text.
func NewAssistantBlock(text string, theme gemchat.Theme) *AssistantBlock {
	return &AssistantBlock{
		text:    text,
		theme:   theme,
		byWidth: make(map[int]string),
	}
}

func (b *AssistantBlock) View(width int) string {
	if width <= 0 || b.text == "" {
		return ""
	}
	if cached, ok := b.byWidth[width]; ok {
		return cached
	}
	rendered := markdown.Render(b.text, width, b.theme)
	b.byWidth[width] = rendered
	return rendered
}
