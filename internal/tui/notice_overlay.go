package tui

// noticeOverlayModel is a modal box, the terminal counterpart of alert().
type noticeOverlayModel struct {
	message string
}

func (m noticeOverlayModel) visible() bool {
	return m.message != ""
}

func (m noticeOverlayModel) View() string {
	return overlayBoxStyle.Render(m.message + "\n\n" + helpStyle.Render("enter / esc: close"))
}
