package logic

import (
	"context"
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/workout-tui/internal/store"
	"github.com/hy4ri/workout-tui/internal/tui/state"
	"github.com/hy4ri/workout-tui/internal/tui/views"
)

// CommandHandlerFunc handles a command execution.
type CommandHandlerFunc func(h *Handler, args []string) tea.Cmd

// CommandDef defines a command.
type CommandDef struct {
	Name        string
	Aliases     []string
	Description string
	Handler     CommandHandlerFunc
}

// CommandRegistry holds all available commands, keyed by name and alias.
var CommandRegistry = map[string]CommandDef{}

const maxSuggestions = 5

func init() {
	registerCommands()
}

func registerCommands() {
	commands := []CommandDef{
		{
			Name:        "today",
			Aliases:     []string{"t"},
			Description: "Select today on the week tab",
			Handler:     handleTodayCommand,
		},
		{
			Name:        "goto",
			Aliases:     []string{"g", "tab"},
			Description: "Go to a tab (week, library, routines, plan, rest)",
			Handler:     handleGoto,
		},
		{
			Name:        "units",
			Aliases:     []string{"u"},
			Description: "Set the weight unit (kg, lb)",
			Handler:     handleUnitsCommand,
		},
		{
			Name:        "export",
			Aliases:     []string{"w"},
			Description: "Write a YAML snapshot of all data to a file",
			Handler:     handleExportCommand,
		},
		{
			Name:        "refresh",
			Aliases:     []string{"r", "reload"},
			Description: "Reload all data",
			Handler:     handleRefreshCommand,
		},
		{
			Name:        "quit",
			Aliases:     []string{"q", "exit"},
			Description: "Quit application",
			Handler:     handleQuitCommand,
		},
		{
			Name:        "help",
			Aliases:     []string{"h", "?"},
			Description: "Show help",
			Handler:     handleHelpCommand,
		},
		{
			Name:        "commands",
			Aliases:     []string{"list", "ls"},
			Description: "List all available commands",
			Handler:     handleCommandsCommand,
		},
	}

	for _, cmd := range commands {
		CommandRegistry[cmd.Name] = cmd
		for _, alias := range cmd.Aliases {
			CommandRegistry[alias] = cmd
		}
	}
}

func handleTodayCommand(h *Handler, args []string) tea.Cmd {
	switchCmd := h.switchToTab(state.TabWeek)
	return tea.Batch(switchCmd, views.SelectDate(h.State, h.Now()))
}

func handleGoto(h *Handler, args []string) tea.Cmd {
	if len(args) == 0 {
		h.StatusMsg = "Usage: :goto <tab>"
		return nil
	}

	target := strings.ToLower(args[0])
	if full, ok := tabAliases[target]; ok {
		target = full
	}
	if !slices.Contains(tabNames, target) {
		h.StatusMsg = fmt.Sprintf("Unknown tab: %s", target)
		return nil
	}
	return h.switchToTab(state.TabFromName(target))
}

func handleUnitsCommand(h *Handler, args []string) tea.Cmd {
	if len(args) == 0 {
		h.toggleUnits()
		return nil
	}
	switch u := strings.ToLower(args[0]); u {
	case store.UnitKg, store.UnitLb:
		h.Units = u
		h.StatusMsg = "Units: " + u
	default:
		h.StatusMsg = "Usage: :units <kg|lb>"
	}
	return nil
}

func handleExportCommand(h *Handler, args []string) tea.Cmd {
	if len(args) == 0 {
		h.StatusMsg = "Usage: :export <path>"
		return nil
	}
	path := strings.Join(args, " ")
	st := h.Store
	h.Loading = true
	return func() tea.Msg {
		snap, err := st.Export(context.Background())
		if err != nil {
			return state.ErrMsg{Err: fmt.Errorf("export: %w", err)}
		}
		f, err := os.Create(path)
		if err != nil {
			return state.ErrMsg{Err: fmt.Errorf("export: %w", err)}
		}
		defer f.Close()
		if err := store.WriteSnapshot(f, snap); err != nil {
			return state.ErrMsg{Err: fmt.Errorf("export: %w", err)}
		}
		return state.DataChangedMsg{Status: fmt.Sprintf("Exported %d sessions to %s", len(snap.Sessions), path)}
	}
}

func handleRefreshCommand(h *Handler, args []string) tea.Cmd {
	return h.refreshAll()
}

func handleQuitCommand(h *Handler, args []string) tea.Cmd {
	return tea.Quit
}

func handleHelpCommand(h *Handler, args []string) tea.Cmd {
	h.openHelp()
	return nil
}

func handleCommandsCommand(h *Handler, args []string) tea.Cmd {
	h.StatusMsg = "Commands: " + strings.Join(commandNames(), ", ")
	return nil
}

// commandNames returns the sorted primary command names.
func commandNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, cmd := range CommandRegistry {
		if !seen[cmd.Name] {
			seen[cmd.Name] = true
			names = append(names, cmd.Name)
		}
	}
	sort.Strings(names)
	return names
}

// matchCommands returns primary command names starting with prefix.
func matchCommands(prefix string) []string {
	var matches []string
	for _, name := range commandNames() {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	return matches
}

func (h *Handler) executeCommand(input string) tea.Cmd {
	h.CommandLine.Close()
	h.CommandLine.Remember(input)
	h.CommandLine.HistoryCursor = -1

	parts := strings.Fields(input)
	if len(parts) == 0 {
		return nil
	}

	cmdName := strings.ToLower(parts[0])
	if cmdDef, ok := CommandRegistry[cmdName]; ok {
		return cmdDef.Handler(h, parts[1:])
	}

	h.StatusMsg = fmt.Sprintf("Unknown command: %s", cmdName)
	return nil
}

// autocompleteCommand completes the command name, or the tab name after goto.
func (h *Handler) autocompleteCommand() tea.Cmd {
	cl := h.CommandLine
	input := cl.Input.Value()
	if input == "" {
		return nil
	}

	if len(cl.Suggestions) > 0 {
		choice := cl.Suggestions[cl.SuggestionCursor]
		parts := strings.Fields(input)
		if len(parts) > 1 || strings.HasSuffix(input, " ") {
			choice = parts[0] + " " + choice
		}
		cl.Input.SetValue(choice + " ")
		cl.Input.SetCursor(len(choice) + 1)
		h.updateSuggestions()
	}
	return nil
}

func (h *Handler) commandHistoryPrev() tea.Cmd {
	cl := h.CommandLine
	if len(cl.History) == 0 {
		return nil
	}

	if cl.HistoryCursor == -1 {
		cl.HistoryCursor = len(cl.History) - 1
	} else if cl.HistoryCursor > 0 {
		cl.HistoryCursor--
	}

	cl.Input.SetValue(cl.History[cl.HistoryCursor])
	cl.Input.SetCursor(len(cl.Input.Value()))
	return nil
}

func (h *Handler) commandHistoryNext() tea.Cmd {
	cl := h.CommandLine
	if len(cl.History) == 0 || cl.HistoryCursor == -1 {
		return nil
	}

	if cl.HistoryCursor < len(cl.History)-1 {
		cl.HistoryCursor++
		cl.Input.SetValue(cl.History[cl.HistoryCursor])
		cl.Input.SetCursor(len(cl.Input.Value()))
	} else {
		cl.HistoryCursor = -1
		cl.Input.SetValue("")
	}
	return nil
}

var (
	tabNames   = []string{"library", "plan", "rest", "routines", "week"}
	tabAliases = map[string]string{"w": "week", "lib": "library", "rtn": "routines", "pln": "plan", "timer": "rest"}
)

func (h *Handler) updateSuggestions() {
	cl := h.CommandLine
	cl.SuggestionCursor = 0
	input := cl.Input.Value()
	parts := strings.Fields(input)
	if len(parts) == 0 {
		cl.Suggestions = nil
		return
	}

	var matches []string
	switch {
	case len(parts) == 1 && !strings.HasSuffix(input, " "):
		matches = matchCommands(strings.ToLower(parts[0]))
	case CommandRegistry[strings.ToLower(parts[0])].Name == "goto" && len(parts) <= 2:
		prefix := ""
		if len(parts) == 2 {
			prefix = strings.ToLower(parts[1])
		}
		for _, name := range tabNames {
			if strings.HasPrefix(name, prefix) {
				matches = append(matches, name)
			}
		}
	}
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}
	cl.Suggestions = matches
}
