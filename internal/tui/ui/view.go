package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/workout-tui/internal/tui/state"
	"github.com/hy4ri/workout-tui/internal/tui/styles"
	"github.com/hy4ri/workout-tui/internal/tui/utils"
)

// Renderer draws the state. The only thing it writes is the day log
// viewport, whose content and scroll offset follow the session cursor.
type Renderer struct {
	*state.State
}

func NewRenderer(s *state.State) *Renderer {
	return &Renderer{State: s}
}

func (r *Renderer) View() string {
	if r.Width == 0 {
		return "Loading..."
	}

	switch r.CurrentView {
	case state.ViewHelp:
		r.HelpComp.SetKeymap(r.Keymap.HelpItems())
		return r.HelpComp.View()
	case state.ViewSetForm:
		return r.placeDialog(r.renderSetForm())
	case state.ViewPrompt:
		return r.placeDialog(r.renderPrompt())
	}
	return r.renderMainView()
}

// renderMainView renders the main layout with tab bar and content.
func (r *Renderer) renderMainView() string {
	tabBar := r.renderTabBar()

	var bottomBar string
	if r.CommandLine != nil && r.CommandLine.Active {
		bottomBar = r.renderCommandLine()
	} else {
		bottomBar = r.renderStatusBar()
	}

	contentHeight := max(r.Height-lipgloss.Height(tabBar)-lipgloss.Height(bottomBar), 1)

	var mainContent string
	switch r.CurrentTab {
	case state.TabWeek:
		mainContent = r.renderWeek()
	case state.TabLibrary:
		mainContent = r.renderLibrary(contentHeight)
	case state.TabRoutines:
		mainContent = r.renderRoutines(contentHeight)
	case state.TabPlan:
		mainContent = r.renderPlan(contentHeight)
	case state.TabTimer:
		mainContent = r.renderTimer(contentHeight)
	}

	// Pin the bottom bar to the last rows
	mainContent = lipgloss.NewStyle().MaxHeight(contentHeight).MaxWidth(r.Width).Render(mainContent)
	mainContent = lipgloss.Place(r.Width, contentHeight, lipgloss.Left, lipgloss.Top, mainContent)

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, mainContent, bottomBar)
}

// renderCommandLine renders the vim-style command line.
func (r *Renderer) renderCommandLine() string {
	if r.CommandLine == nil {
		return ""
	}

	prompt := styles.CommandPrompt.Render(":")
	input := styles.CommandInput.Render(r.CommandLine.Input.View())

	var suggestionsView string
	if len(r.CommandLine.Suggestions) > 0 {
		var suggestionItems []string
		for i, s := range r.CommandLine.Suggestions {
			if i == r.CommandLine.SuggestionCursor {
				suggestionItems = append(suggestionItems, styles.CommandSuggestionSelected.Render(" "+s+" "))
			} else {
				suggestionItems = append(suggestionItems, styles.CommandSuggestion.Render(" "+s+" "))
			}
		}
		suggestionsView = lipgloss.JoinHorizontal(lipgloss.Left, suggestionItems...)
		suggestionsView = lipgloss.NewStyle().Padding(0, 1).Render(suggestionsView)
	}

	cmdLine := lipgloss.JoinHorizontal(lipgloss.Left, prompt, input)
	cmdLine = styles.CommandLineContainer.Width(r.Width).Render(cmdLine)

	if suggestionsView != "" {
		return lipgloss.JoinVertical(lipgloss.Left, suggestionsView, cmdLine)
	}
	return cmdLine
}

// renderTabBar renders the top tab bar. Mouse hit-testing in the logic
// package walks the same labels.
func (r *Renderer) renderTabBar() string {
	var tabStrs []string
	for _, t := range state.GetTabDefinitions() {
		label := t.Label(r.Width)
		if r.CurrentTab == t.Tab {
			tabStrs = append(tabStrs, styles.TabActive.Render(label))
		} else {
			tabStrs = append(tabStrs, styles.Tab.Render(label))
		}
	}

	tabLine := strings.Join(tabStrs, " ")

	maxWidth := r.Width - styles.TabBar.GetHorizontalFrameSize()
	if lipgloss.Width(tabLine) > maxWidth && maxWidth > 0 {
		tabLine = lipgloss.NewStyle().MaxWidth(maxWidth).Render(tabLine)
	}

	return styles.TabBar.Width(r.Width).Render(tabLine)
}

func (r *Renderer) renderStatusBar() string {
	// Left side: status message or error
	leftText, leftStyle := "", styles.StatusBarSuccess
	if r.Err != nil {
		leftText, leftStyle = "Error: "+r.Err.Error(), styles.StatusBarError
	} else if r.StatusMsg != "" {
		leftText = r.StatusMsg
	}
	leftText = strings.ReplaceAll(leftText, "\n", " ")

	var rightParts []string
	if r.Loading {
		rightParts = append(rightParts, styles.Spinner.Render(r.Spinner.View()))
	}
	rightParts = append(rightParts, strings.Join(r.contextualHints(), " "))
	right := strings.Join(rightParts, "  ")

	rightWidth := lipgloss.Width(right)
	padding := styles.StatusBar.GetHorizontalFrameSize()

	// Ensure left doesn't overwhelm right
	maxLeftWidth := r.Width - rightWidth - padding - 4
	if lipgloss.Width(leftText) > maxLeftWidth && maxLeftWidth > 10 {
		leftText = utils.TruncateString(leftText, maxLeftWidth)
	}
	left := ""
	if leftText != "" {
		left = leftStyle.Render(leftText)
	}
	leftWidth := lipgloss.Width(left)

	spacing := max(r.Width-leftWidth-rightWidth-padding, 0)

	return styles.StatusBar.Width(r.Width).Render(left + strings.Repeat(" ", spacing) + right)
}

// contextualHints returns the key hints for the current tab.
func (r *Renderer) contextualHints() []string {
	key := func(k string) string { return styles.StatusBarKey.Render(k) }
	desc := func(d string) string { return styles.StatusBarText.Render(d) }

	var hints []string
	switch r.CurrentTab {
	case state.TabWeek:
		hints = []string{
			key("a") + desc(":log"),
			key("[ ]") + desc(":week"),
			key("t") + desc(":today"),
			key("u") + desc(":" + r.Units),
		}
	case state.TabLibrary, state.TabRoutines:
		hints = []string{
			key("a") + desc(":add"),
			key("dd") + desc(":delete"),
		}
	case state.TabPlan:
		hints = []string{
			key("enter") + desc(":cycle"),
			key("dd") + desc(":clear"),
		}
	case state.TabTimer:
		hints = []string{
			key("space") + desc(":start/pause"),
			key("+/-") + desc(":adjust"),
		}
	}
	return append(hints, key("?")+desc(":help"))
}

// placeDialog centers a dialog on the screen.
func (r *Renderer) placeDialog(dialog string) string {
	return lipgloss.Place(r.Width, r.Height, lipgloss.Center, lipgloss.Center, dialog)
}
