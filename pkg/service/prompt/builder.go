package prompt

import (
	"fmt"
	"strings"
)

// Builder assembles a prompt from typed sections and renders it inside a
// token budget. It keeps wording, truncation and budgeting separable so
// each can be tested on its own.
type Builder struct {
	sb strings.Builder
}

func NewBuilder(instruction string) *Builder {
	b := &Builder{}
	b.sb.WriteString(instruction)
	b.sb.WriteString("\n")
	return b
}

// Section starts a new markdown section
func (b *Builder) Section(heading string) *Builder {
	fmt.Fprintf(&b.sb, "\n## %s\n\n", heading)
	return b
}

// Field appends a labeled value line
func (b *Builder) Field(label string, value any) *Builder {
	fmt.Fprintf(&b.sb, "**%s:** %v\n", label, value)
	return b
}

// List appends a bullet list. Empty lists produce no output.
func (b *Builder) List(label string, items []string) *Builder {
	if len(items) == 0 {
		return b
	}
	fmt.Fprintf(&b.sb, "**%s:**\n", label)
	for _, item := range items {
		fmt.Fprintf(&b.sb, "- %s\n", item)
	}
	return b
}

// Text appends raw text followed by a newline
func (b *Builder) Text(text string) *Builder {
	b.sb.WriteString(text)
	b.sb.WriteString("\n")
	return b
}

// Render returns the prompt truncated to maxTokens
func (b *Builder) Render(maxTokens int) string {
	return TruncateToBudget(b.sb.String(), maxTokens)
}
