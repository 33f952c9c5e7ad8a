package state

import "github.com/charmbracelet/bubbles/textinput"

// CommandLine holds the state for the vim-style command line.
type CommandLine struct {
	Input            textinput.Model
	Active           bool
	History          []string
	HistoryCursor    int
	Suggestions      []string
	SuggestionCursor int
}

// NewCommandLine initializes a new CommandLine state.
func NewCommandLine() *CommandLine {
	input := textinput.New()
	input.Prompt = "" // rendered by the status line
	input.CharLimit = 100
	input.Width = 50

	return &CommandLine{
		Input:         input,
		HistoryCursor: -1,
	}
}

// Open activates the command line with an empty input.
func (c *CommandLine) Open() {
	c.Active = true
	c.Input.SetValue("")
	c.Input.Focus()
	c.HistoryCursor = -1
	c.Suggestions = nil
	c.SuggestionCursor = 0
}

// Close deactivates the command line.
func (c *CommandLine) Close() {
	c.Active = false
	c.Input.Blur()
	c.Input.SetValue("")
	c.Suggestions = nil
}

// Remember appends a command to the history, skipping immediate repeats.
func (c *CommandLine) Remember(line string) {
	if line == "" {
		return
	}
	if n := len(c.History); n > 0 && c.History[n-1] == line {
		return
	}
	c.History = append(c.History, line)
}
