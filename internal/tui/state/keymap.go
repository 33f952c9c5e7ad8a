package state

import tea "github.com/charmbracelet/bubbletea"

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// KeymapData contains all key bindings for the application.
type KeymapData struct {
	// Navigation
	Up     Key
	Down   Key
	Top    Key
	Bottom Key
	Left   Key
	Right  Key

	// Week strip
	PrevWeek    Key
	NextWeek    Key
	ScrollLeft  Key
	ScrollRight Key
	Today       Key

	// Actions
	Select  Key
	Back    Key
	Quit    Key
	Help    Key
	Refresh Key
	Command Key
	Add     Key
	Delete  Key
	Copy    Key
	Units   Key
	Note    Key

	// Rest timer
	Toggle   Key
	Increase Key
	Decrease Key

	// Tabs
	NextTab Key
	PrevTab Key
}

// DefaultKeymap returns the default Vim-style key bindings.
func DefaultKeymap() KeymapData {
	return KeymapData{
		Up:     Key{Key: "k", Help: "up"},
		Down:   Key{Key: "j", Help: "down"},
		Top:    Key{Key: "g", Help: "top (gg)"},
		Bottom: Key{Key: "G", Help: "bottom"},
		Left:   Key{Key: "h", Help: "previous day"},
		Right:  Key{Key: "l", Help: "next day"},

		PrevWeek:    Key{Key: "[", Help: "previous week"},
		NextWeek:    Key{Key: "]", Help: "next week"},
		ScrollLeft:  Key{Key: "H", Help: "scroll left"},
		ScrollRight: Key{Key: "L", Help: "scroll right"},
		Today:       Key{Key: "t", Help: "today"},

		Select:  Key{Key: "enter", Help: "select"},
		Back:    Key{Key: "esc", Help: "back"},
		Quit:    Key{Key: "q", Help: "quit"},
		Help:    Key{Key: "?", Help: "help"},
		Refresh: Key{Key: "r", Help: "refresh"},
		Command: Key{Key: ":", Help: "command"},
		Add:     Key{Key: "a", Help: "add"},
		Delete:  Key{Key: "d", Help: "delete (dd)"},
		Copy:    Key{Key: "y", Help: "copy (yy)"},
		Units:   Key{Key: "u", Help: "toggle units"},
		Note:    Key{Key: "n", Help: "session note"},

		Toggle:   Key{Key: " ", Help: "start/pause"},
		Increase: Key{Key: "+", Help: "longer rest"},
		Decrease: Key{Key: "-", Help: "shorter rest"},

		NextTab: Key{Key: "tab", Help: "next tab"},
		PrevTab: Key{Key: "shift+tab", Help: "previous tab"},
	}
}

// KeyState tracks multi-key sequences (like 'gg' or 'dd' or 'yy').
type KeyState struct {
	LastKey  string
	WaitingG bool // Waiting for second 'g' in 'gg'
	WaitingD bool // Waiting for second 'd' in 'dd'
	WaitingY bool // Waiting for second 'y' in 'yy'

	// NoVim disables the letter bindings for movement; arrows keep working.
	NoVim bool
}

// HandleKey processes a key press and returns the action to take.
// Returns the action name and whether the key was consumed.
func (ks *KeyState) HandleKey(msg tea.KeyMsg, km KeymapData) (string, bool) {
	key := msg.String()

	if ks.WaitingG {
		ks.WaitingG = false
		if key == km.Top.Key {
			return "top", true
		}
	}
	if ks.WaitingD {
		ks.WaitingD = false
		if key == km.Delete.Key {
			return "delete", true
		}
	}
	if ks.WaitingY {
		ks.WaitingY = false
		if key == km.Copy.Key {
			return "copy", true
		}
	}

	switch key {
	case km.Top.Key:
		ks.WaitingG = true
		ks.LastKey = key
		return "", true
	case km.Delete.Key:
		ks.WaitingD = true
		ks.LastKey = key
		return "", true
	case km.Copy.Key:
		ks.WaitingY = true
		ks.LastKey = key
		return "", true
	}

	switch key {
	case "up":
		return "up", true
	case "down":
		return "down", true
	case "left":
		return "left", true
	case "right":
		return "right", true
	case "shift+left":
		return "scroll_left", true
	case "shift+right":
		return "scroll_right", true
	case "home":
		return "top", true
	case "end":
		return "bottom", true
	case "delete":
		return "delete", true
	}

	if !ks.NoVim {
		switch key {
		case km.Up.Key:
			return "up", true
		case km.Down.Key:
			return "down", true
		case km.Left.Key:
			return "left", true
		case km.Right.Key:
			return "right", true
		case km.ScrollLeft.Key:
			return "scroll_left", true
		case km.ScrollRight.Key:
			return "scroll_right", true
		case km.Bottom.Key:
			return "bottom", true
		}
	}

	switch key {
	case km.PrevWeek.Key:
		return "prev_week", true
	case km.NextWeek.Key:
		return "next_week", true
	case km.Today.Key:
		return "today", true
	case km.Select.Key:
		return "select", true
	case km.Back.Key:
		return "back", true
	case km.Quit.Key, "ctrl+c":
		return "quit", true
	case km.Help.Key:
		return "help", true
	case km.Refresh.Key:
		return "refresh", true
	case km.Command.Key:
		return "command", true
	case km.Add.Key:
		return "add", true
	case km.Units.Key:
		return "units", true
	case km.Note.Key:
		return "note", true
	case km.Toggle.Key, "space":
		return "toggle", true
	case km.Increase.Key, "=":
		return "increase", true
	case km.Decrease.Key:
		return "decrease", true
	case km.NextTab.Key:
		return "next_tab", true
	case km.PrevTab.Key:
		return "prev_tab", true
	case "1", "2", "3", "4", "5":
		return "tab_" + key, true
	}

	return "", false
}

// Reset clears any pending multi-key sequences.
func (ks *KeyState) Reset() {
	ks.WaitingG = false
	ks.WaitingD = false
	ks.WaitingY = false
	ks.LastKey = ""
}

// HelpItems returns a slice of key-description pairs for the help view.
func (k KeymapData) HelpItems() [][]string {
	return [][]string{
		{"Tabs", ""},
		{"1-5", "Week, Library, Routines, Plan, Rest"},
		{k.NextTab.Key + "/" + k.PrevTab.Key, "Next/previous tab"},
		{"Week", ""},
		{k.Left.Key + "/" + k.Right.Key, "Previous/next day"},
		{k.PrevWeek.Key + "/" + k.NextWeek.Key, "Previous/next week"},
		{k.ScrollLeft.Key + "/" + k.ScrollRight.Key, "Scroll the strip"},
		{k.Today.Key, "Jump to today"},
		{k.Add.Key, "Log a set"},
		{"j/k", "Move between sessions"},
		{k.Note.Key, "Edit session note"},
		{"dd", "Delete session"},
		{"yy", "Copy day log"},
		{"wheel", "Scroll the strip"},
		{"click", "Select a day"},
		{"General", ""},
		{k.Command.Key, "Command line"},
		{k.Units.Key, "Toggle kg/lb"},
		{k.Refresh.Key, "Refresh (reset on Rest)"},
		{k.Help.Key, "Toggle help"},
		{k.Back.Key, "Go back / Cancel"},
		{k.Quit.Key, "Quit"},
		{"Lists", ""},
		{k.Up.Key + "/" + k.Down.Key, "Move up/down"},
		{"gg/" + k.Bottom.Key, "Go to top/bottom"},
		{k.Add.Key, "Add exercise/routine"},
		{"dd", "Delete"},
		{k.Select.Key, "Activate plan / assign"},
		{k.Left.Key + "/" + k.Right.Key, "Cycle plan routine"},
		{"Rest", ""},
		{"space", "Start/pause"},
		{k.Increase.Key + "/" + k.Decrease.Key, "Rest +/- 15s"},
	}
}
