// Command preview renders the active token tree in the terminal: swatches
// for every color, the spacing and typography scales, and the validator's
// findings, with live variant switching. It doubles as a manual test rig
// for the engine's persistence and system-preference sync.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"themekit/internal/debug"
	"themekit/internal/prefs"
	"themekit/internal/store"
	"themekit/internal/theme"
	"themekit/internal/tokens"
	"themekit/internal/tui"
	"themekit/internal/validate"
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	Cycle    key.Binding
	System   key.Binding
	Copy     key.Binding
	Validate key.Binding
	Reset    key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Cycle, k.System, k.Copy, k.Validate, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Copy},
		{k.Toggle, k.Cycle, k.System},
		{k.Validate, k.Reset, k.Quit},
	}
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev token")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next token")),
	Toggle:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle")),
	Cycle:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cycle")),
	System:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "use system")),
	Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy css var")),
	Validate: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "validation")),
	Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset overrides")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// previewPaths is the fixed walk order of the swatch list.
var previewPaths = []string{
	"colors.primary",
	"colors.secondary",
	"colors.accent",
	"colors.background",
	"colors.surface",
	"colors.border",
	"colors.error",
	"colors.warning",
	"colors.success",
	"colors.info",
	"colors.text.primary",
	"colors.text.secondary",
	"colors.text.disabled",
	"spacing.xs",
	"spacing.sm",
	"spacing.md",
	"spacing.lg",
	"spacing.xl",
	"typography.fontFamily",
	"typography.fontSize.base",
	"typography.fontSize.lg",
	"typography.fontWeight.regular",
	"typography.fontWeight.bold",
	"shadows.md",
	"borderRadius.md",
	"transitions.normal",
}

type model struct {
	engine     *theme.Engine
	styles     tui.Styles
	help       help.Model
	cursor     int
	width      int
	showChecks bool
	checks     validate.Result
	status     string
}

func initialModel(e *theme.Engine, checks validate.Result) model {
	return model{
		engine: e,
		styles: tui.New(e),
		help:   help.New(),
		checks: checks,
		width:  80,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(previewPaths)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Toggle):
			m.engine.ToggleVariant()
			m.styles = tui.New(m.engine)
			m.status = fmt.Sprintf("variant: %s", m.engine.ActiveVariant())
		case key.Matches(msg, keys.Cycle):
			m.engine.CycleVariant()
			m.styles = tui.New(m.engine)
			m.status = fmt.Sprintf("variant: %s", m.engine.ActiveVariant())
		case key.Matches(msg, keys.System):
			m.engine.UseSystem()
			m.styles = tui.New(m.engine)
			m.status = fmt.Sprintf("variant: %s (system: %s)", m.engine.ActiveVariant(), m.engine.SystemPreference())
		case key.Matches(msg, keys.Copy):
			ref := m.engine.CSSVariable(previewPaths[m.cursor])
			if err := clipboard.WriteAll(ref); err != nil {
				m.status = "clipboard unavailable"
			} else {
				m.status = "copied " + ref
			}
		case key.Matches(msg, keys.Validate):
			m.showChecks = !m.showChecks
		case key.Matches(msg, keys.Reset):
			m.engine.ResetOverrides()
			m.styles = tui.New(m.engine)
			m.status = "overrides cleared"
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	title := fmt.Sprintf(" themekit preview — %s ", m.engine.ActiveVariant())
	b.WriteString(m.styles.Header.Render(title))
	b.WriteString("\n\n")

	for i, path := range previewPaths {
		line := m.renderToken(path)
		if i == m.cursor {
			line = m.styles.Selected.Render("▸ ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.showChecks {
		b.WriteString("\n")
		b.WriteString(m.renderChecks())
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Footer.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(keys))
	return b.String()
}

func (m model) renderToken(path string) string {
	value := m.engine.Token(path)
	label := m.styles.Label.Render(path)

	if s, ok := value.(string); ok && strings.HasPrefix(path, "colors.") {
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(s)).Render("      ")
		return label + swatch + " " + m.styles.Value.Render(s)
	}
	return label + m.styles.Value.Render(fmt.Sprint(value))
}

func (m model) renderChecks() string {
	if len(m.checks.Errors) == 0 && len(m.checks.Warnings) == 0 {
		return m.styles.Muted.Render("validation: clean")
	}
	var lines []string
	for _, e := range tui.WrapFindings(m.checks.Errors, m.width-6) {
		lines = append(lines, m.styles.ErrorText.Render(e))
	}
	for _, w := range tui.WrapFindings(m.checks.Warnings, m.width-6) {
		lines = append(lines, m.styles.WarnText.Render(w))
	}
	return m.styles.WarnBox.Render(strings.Join(lines, "\n"))
}

func main() {
	configPath := flag.String("config", "", "TOML theme config (defaults to the built-in trees)")
	dbPath := flag.String("db", "", "persist the variant in this SQLite database instead of the config file")
	prefPath := flag.String("pref", "", "watch this file for the system preference instead of the terminal background")
	defaultVariant := flag.String("default", "light", "variant used when nothing is persisted")
	noPersist := flag.Bool("no-persist", false, "do not persist variant changes")
	debugLog := flag.Bool("debug", false, "write diagnostics to ~/.themekit/debug.log")
	flag.Parse()

	if err := debug.Init(*debugLog); err != nil {
		fmt.Fprintf(os.Stderr, "init debug log: %v\n", err)
		os.Exit(1)
	}
	defer debug.Close()

	cfg := tokens.DefaultConfig()
	if *configPath != "" {
		loaded, err := tokens.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load theme config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	checks := validate.New(false).Validate(cfg)

	var st store.Store
	switch {
	case *noPersist:
		st = nil
	case *dbPath != "":
		sq, err := store.NewSQLiteStore(*dbPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open variant store: %v\n", err)
			os.Exit(1)
		}
		defer sq.Close()
		st = sq
	default:
		fs, err := store.NewFileStore("")
		if err != nil {
			fmt.Fprintf(os.Stderr, "open variant store: %v\n", err)
			os.Exit(1)
		}
		st = fs
	}

	var probe prefs.Probe = prefs.Terminal{}
	if *prefPath != "" {
		fp, err := prefs.NewFile(*prefPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "watch preference file: %v\n", err)
			os.Exit(1)
		}
		defer fp.Close()
		probe = fp
	}

	opts := []theme.Option{
		theme.WithProbe(probe),
		theme.WithDefault(theme.Variant(*defaultVariant)),
	}
	if st != nil {
		opts = append(opts, theme.WithStore(st))
	}

	engine := theme.Configure(cfg, opts...)
	defer theme.Reset()

	p := tea.NewProgram(initialModel(engine, checks), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "preview: %v\n", err)
		os.Exit(1)
	}
}
