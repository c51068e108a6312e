package tui

// errorOverlayModel shows the status of a failed load, copy or delete
// until it is dismissed.
type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	return overlayBoxStyle.Render("Something went wrong\n\n" + m.message + "\n\nenter / esc to dismiss")
}
