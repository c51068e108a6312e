package tui

import (
	"strings"
)

const (
	pageIndent = "  "
	pageRule   = "──────────────────────────────────────────────────────────────────────────"
)

// renderPage frames content between two rules under a bold title. Hot keys
// are joined on the footer line, which always ends with the quit key.
func renderPage(title, content string, hotKeys ...string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title) + "\n")
	b.WriteString(pageIndent + pageRule + "\n\n")

	if strings.TrimSpace(content) == "" {
		content = "-"
	}
	for line := range strings.SplitSeq(content, "\n") {
		b.WriteString(pageIndent + line + "\n")
	}

	b.WriteString("\n" + pageIndent + pageRule + "\n")
	footer := strings.Join(append(hotKeys, "q: quit"), " │ ")
	b.WriteString(helpStyle.Render(pageIndent + footer))

	return b.String()
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// fitText truncates v to width runes, marking the cut with an ellipsis when
// there is room for one.
func fitText(v string, width int) string {
	r := []rune(v)
	switch {
	case width <= 0 || len(r) <= width:
		return v
	case width <= 3:
		return string(r[:width])
	default:
		return string(r[:width-3]) + "..."
	}
}
