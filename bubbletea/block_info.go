package bubbletea

import (
	"github.com/charmbracelet/lipgloss"
)

var _ MessageBlock = (*InfoBlock)(nil)

// InfoBlock renders muted informational output from a slash command,
// such as the file list or the prompt table.
type InfoBlock struct {
	text   string
	styles Styles
}

// NewInfoBlock creates an InfoBlock.
func NewInfoBlock(text string, styles Styles) *InfoBlock {
	return &InfoBlock{text: text, styles: styles}
}

func (b *InfoBlock) View(width int) string {
	content := b.styles.Muted.Render(b.text)
	return lipgloss.NewStyle().Width(width).Render(content)
}
