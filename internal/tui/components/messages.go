package components

// CloseHelpMsg is emitted when the help overlay asks to be closed.
type CloseHelpMsg struct{}

// RestFinishedMsg is emitted once when a rest countdown reaches zero.
type RestFinishedMsg struct {
	ID int
}
