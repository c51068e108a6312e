package tui

import "fmt"

// confirmModel asks before a reflection is deleted.
type confirmModel struct {
	id    int64
	title string
}

func (m confirmModel) View() string {
	return overlayBoxStyle.Render(fmt.Sprintf("Delete reflection #%d %q and its images?\n\ny yes    n no", m.id, m.title))
}
