// Package main is the entry point for the workout tracker TUI.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/hy4ri/workout-tui/internal/config"
	"github.com/hy4ri/workout-tui/internal/logging"
	"github.com/hy4ri/workout-tui/internal/store"
	"github.com/hy4ri/workout-tui/internal/tui"
)

const version = "0.1.0"

const helpText = `workout-tui - Terminal workout tracker with an endless week strip

USAGE:
    workout-tui [OPTIONS]

OPTIONS:
    -h, --help          Show this help message
    -v, --version       Show version information
    --init              Create a template config file
    --export <file>     Write all data to a YAML snapshot and exit
    --import <file>     Merge a YAML snapshot into the database and exit
    --week              Start on the week tab (default)
    --library           Start on the exercise library
    --routines          Start on the routines tab
    --plan              Start on the weekly plan

CONFIGURATION:
    Config file: ~/.config/workout-tui/config.yaml
    Database:    ~/.local/share/workout-tui/workouts.db

KEYBINDINGS:
    Week:
        h/l         Previous/next day
        [ / ]       Previous/next week
        H/L         Scroll the strip one day
        t           Today
        a           Log a set
        n           Edit the session note
        dd          Delete session
        yy          Copy the day log

    Other:
        1-5         Switch tab
        u           Toggle kg/lb
        :           Command line
        r           Refresh
        ?           Show help
        q           Quit
`

const configTemplate = `# Workout TUI Configuration
# Location: ~/.config/workout-tui/config.yaml

storage:
  # SQLite database file (default: ~/.local/share/workout-tui/workouts.db)
  # path: ""

ui:
  # Enable Vim-style keybindings (default: true)
  vim_mode: true
  # Weight unit: kg or lb
  units: kg
  # Week strip day cell width in columns
  cell_width: 8
  # Columns from either strip edge that count as reaching it
  edge_tolerance: 1
  frame_interval_ms: 16
  # Rest timer length
  rest_seconds: 90
  # week, library, routines, plan or rest
  start_tab: week

reminders:
  # Desktop notification when today is planned and nothing is logged yet
  enabled: true
  hour: 18

logging:
  level: info
  # file: ~/.local/share/workout-tui/workout-tui.log
  json: false
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showHelp     bool
		showVersion  bool
		initConfig   bool
		exportPath   string
		importPath   string
		viewWeek     bool
		viewLibrary  bool
		viewRoutines bool
		viewPlan     bool
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.StringVar(&exportPath, "export", "", "Export all data to a YAML file")
	flag.StringVar(&importPath, "import", "", "Import a YAML snapshot")
	flag.BoolVar(&viewWeek, "week", false, "Start in week view")
	flag.BoolVar(&viewLibrary, "library", false, "Start in library view")
	flag.BoolVar(&viewRoutines, "routines", false, "Start in routines view")
	flag.BoolVar(&viewPlan, "plan", false, "Start in plan view")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("workout-tui version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logFile, err := cfg.LogPath()
	if err != nil {
		return fmt.Errorf("failed to resolve log path: %w", err)
	}
	closer := logging.Setup(logging.Params{
		FileName: logFile,
		Level:    cfg.Logging.Level,
		JSON:     cfg.Logging.JSON,
	})
	defer closer.Close()

	dbPath, err := cfg.DBPath()
	if err != nil {
		return fmt.Errorf("failed to resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	switch {
	case exportPath != "":
		return exportSnapshot(st, exportPath)
	case importPath != "":
		return importSnapshot(st, importPath)
	}

	// determine initial tab
	switch {
	case viewWeek:
		cfg.UI.StartTab = "week"
	case viewLibrary:
		cfg.UI.StartTab = "library"
	case viewRoutines:
		cfg.UI.StartTab = "routines"
	case viewPlan:
		cfg.UI.StartTab = "plan"
	}

	return runApp(st, cfg)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

func exportSnapshot(st *store.Store, path string) error {
	snap, err := st.Export(context.Background())
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := store.WriteSnapshot(f, snap); err != nil {
		return err
	}

	fmt.Printf("Exported %d sessions to %s\n", len(snap.Sessions), path)
	return nil
}

func importSnapshot(st *store.Store, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	snap, err := store.ReadSnapshot(f)
	if err != nil {
		return err
	}
	if err := st.Import(context.Background(), snap); err != nil {
		return fmt.Errorf("failed to import: %w", err)
	}

	logrus.WithField("path", path).Info("snapshot imported")
	fmt.Printf("Imported %d exercises, %d routines, %d plans and %d sessions\n",
		len(snap.Exercises), len(snap.Routines), len(snap.Plans), len(snap.Sessions))
	return nil
}

// runApp starts the main TUI application.
func runApp(st *store.Store, cfg *config.Config) error {
	app, err := tui.NewApp(st, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	logrus.Info("exiting")
	return nil
}
