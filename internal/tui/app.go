// Package tui provides the interactive Bubble Tea dashboard for vitadash.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vitadash/vitadash/internal/cli"
	"github.com/vitadash/vitadash/internal/config"
	"github.com/vitadash/vitadash/internal/model"
	"github.com/vitadash/vitadash/internal/pipeline"
	"github.com/vitadash/vitadash/internal/store"
	"github.com/vitadash/vitadash/internal/tui/components"
	"github.com/vitadash/vitadash/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// daySummaryMsg carries one finished recompute. seq ties the result to the
// request that started it; results from superseded requests are dropped.
type daySummaryMsg struct {
	seq     uint64
	summary model.DaySummary
	err     error
}

// App is the root Bubble Tea model.
type App struct {
	st   store.Store
	cfg  config.Config
	ctrl *pipeline.Controller

	// Identity
	user      string
	entering  bool // phone entry view active
	userInput textinput.Model

	// Data
	summary *model.DaySummary
	errMsg  string

	// UI state
	width     int
	height    int
	selected  int // index into the day window
	activeTab int
	showHelp  bool

	// Loading
	loading bool
	reqSeq  uint64
	spinner spinner.Model

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *setupValues
	needSetup bool
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 110
	minContentHeight = 5
)

// NewApp creates a new TUI app model reading from st.
func NewApp(st store.Store, cfg config.Config, user string) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	ti := textinput.New()
	ti.Placeholder = "Phone number"
	ti.CharLimit = 32
	ti.Width = 30
	ti.Focus()

	ctrl := pipeline.NewController(st, cfg.General.DaysBefore, cfg.General.DaysAfter, time.Now())

	a := App{
		st:        st,
		cfg:       cfg,
		ctrl:      ctrl,
		user:      user,
		entering:  user == "",
		userInput: ti,
		selected:  ctrl.TodayIndex(),
		spinner:   sp,
		needSetup: !config.Exists(),
	}

	if a.needSetup {
		a.setupVals = newSetupValues(cfg, user)
		a.setupForm = newSetupForm(a.setupVals)
	} else if !a.entering {
		// First fetch starts in Init; tag it before the model is copied.
		a.reqSeq = 1
		a.loading = true
	}

	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.Init()
	}
	if a.entering {
		return textinput.Blink
	}
	return tea.Batch(a.spinner.Tick, fetchDayCmd(a.ctrl, a.user, a.selected, a.reqSeq))
}

// fetchDayCmd runs the day pipeline in the background and reports the
// result tagged with the request sequence.
func fetchDayCmd(ctrl *pipeline.Controller, user string, dayIdx int, seq uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		sum, err := ctrl.Recompute(ctx, user, dayIdx)
		return daySummaryMsg{seq: seq, summary: sum, err: err}
	}
}

// startFetch begins a new recompute for the selected day, superseding any
// fetch still in flight.
func (a *App) startFetch() tea.Cmd {
	a.reqSeq++
	a.loading = true
	return tea.Batch(a.spinner.Tick, fetchDayCmd(a.ctrl, a.user, a.selected, a.reqSeq))
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case daySummaryMsg:
		if msg.seq != a.reqSeq {
			return a, nil // superseded while in flight
		}
		a.loading = false

		if msg.err != nil {
			a.summary = nil
			if errors.Is(msg.err, store.ErrUserNotFound) {
				a.errMsg = "No profile found for that number. Check it and try again."
				a.user = ""
				a.entering = true
				a.userInput.SetValue("")
				a.userInput.Focus()
				return a, textinput.Blink
			}
			a.errMsg = msg.err.Error()
			return a, nil
		}

		a.errMsg = ""
		a.summary = &msg.summary
		return a, nil

	case spinner.TickMsg:
		if a.loading {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKeys(msg)
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	// First-run setup wizard intercepts all keys
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	// Phone entry intercepts all keys
	if a.entering {
		return a.updateEntry(msg)
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch key {
	case "q", "esc":
		return a, tea.Quit

	case "left", "h":
		if a.selected > 0 {
			a.selected--
			return a, a.startFetch()
		}
		return a, nil

	case "right", "l":
		if a.selected < len(a.ctrl.Window())-1 {
			a.selected++
			return a, a.startFetch()
		}
		return a, nil

	case "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil

	case "r":
		return a, a.startFetch()

	case "t":
		// Persist the toggled theme (best-effort, ignore errors)
		a.cfg.Appearance.Theme = theme.Toggle()
		_ = config.Save(a.cfg)
		return a, nil

	case "u":
		a.entering = true
		a.errMsg = ""
		a.userInput.SetValue("")
		a.userInput.Focus()
		return a, textinput.Blink
	}

	if len(msg.Runes) == 1 {
		if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
			a.activeTab = idx
			return a, nil
		}
	}

	return a, nil
}

// updateEntry handles key events while the phone entry view is active.
func (a App) updateEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		phone := strings.TrimSpace(a.userInput.Value())
		if phone == "" {
			a.errMsg = "Enter a phone number to load your dashboard."
			return a, nil
		}
		a.user = phone
		a.entering = false
		a.errMsg = ""
		return a, a.startFetch()

	case "esc":
		return a, tea.Quit
	}

	var cmd tea.Cmd
	a.userInput, cmd = a.userInput.Update(msg)
	return a, cmd
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.cfg = a.setupVals.apply(a.cfg)
		_ = config.Save(a.cfg)
		theme.SetActive(a.cfg.Appearance.Theme)

		a.needSetup = false
		a.setupForm = nil

		if user := a.cfg.General.User; user != "" {
			a.user = user
			a.entering = false
			return a, a.startFetch()
		}
		a.entering = true
		a.userInput.Focus()
		return a, textinput.Blink
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		if a.user == "" {
			a.entering = true
			return a, textinput.Blink
		}
		return a, a.startFetch()
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.entering {
		return a.viewEntry()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  vitadash needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewEntry() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	labelStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	errStyle := lipgloss.NewStyle().
		Foreground(t.Red)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ vitadash"))
	b.WriteString(labelStyle.Render(" · Daily Health Dashboard"))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Enter the phone number your profile is registered under."))
	b.WriteString("\n\n")
	b.WriteString(a.userInput.View())
	if a.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errStyle.Render(a.errMsg))
	}
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Enter to continue · Esc to quit"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Blue).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"← →", "Previous / Next day"},
		{"m w", "Meals / Workouts tab"},
		{"Tab", "Cycle tabs"},
		{"r", "Reload the selected day"},
		{"t", "Toggle dark / light theme"},
		{"u", "Switch user"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-6s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewMain() string {
	t := theme.Active
	cw := a.contentWidth()

	var b strings.Builder

	// Header
	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	header := titleStyle.Render("◈ vitadash")
	if a.summary != nil && a.summary.Name != "" {
		header += subtitleStyle.Render(" · " + a.summary.Name)
	}
	b.WriteString(" " + header + "\n\n")

	// Day picker
	window := a.ctrl.Window()
	b.WriteString(components.RenderDayPicker(window, a.selected))
	b.WriteString("\n")

	headingStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	if a.selected >= 0 && a.selected < len(window) {
		b.WriteString(" " + headingStyle.Render(components.DayHeading(window[a.selected])) + "\n\n")
	}

	switch {
	case a.loading:
		b.WriteString(" " + a.spinner.View() + subtitleStyle.Render(" Loading day..."))
	case a.errMsg != "":
		errStyle := lipgloss.NewStyle().Foreground(t.Red)
		b.WriteString(" " + errStyle.Render(a.errMsg))
	case a.summary != nil:
		b.WriteString(a.renderSummary(*a.summary, cw))
	}

	b.WriteString("\n\n")
	footStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	b.WriteString(" " + footStyle.Render("← → day · m/w tabs · r reload · t theme · ? help · q quit"))

	content := b.String()

	contentH := a.height
	if contentH < minContentHeight {
		contentH = minContentHeight
	}
	content = padHeight(truncateHeight(content, contentH), contentH)

	return lipgloss.Place(a.width, contentH, lipgloss.Center, lipgloss.Top, content)
}

func (a App) renderSummary(s model.DaySummary, cw int) string {
	t := theme.Active

	var b strings.Builder

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)

	// Body measurements
	b.WriteString(" " + labelStyle.Render("Weight ") + valueStyle.Render(cli.FormatMeasure(s.Weight, "kg")))
	b.WriteString(labelStyle.Render("   Height ") + valueStyle.Render(cli.FormatMeasure(s.Height, "cm")))
	b.WriteString("\n\n")

	// Calories headline + goal bar
	b.WriteString(" " + labelStyle.Render("Calories ") +
		valueStyle.Render(cli.FormatCaloriePair(s.CaloriesEaten, s.CalorieGoal)))
	b.WriteString("\n ")
	pct := 0.0
	if s.CalorieGoal > 0 {
		pct = s.CaloriesEaten / s.CalorieGoal
	}
	barW := cw - 20
	if barW > 50 {
		barW = 50
	}
	if barW < 10 {
		barW = 10
	}
	b.WriteString(components.GoalBar("", pct, 0, barW))
	b.WriteString("\n\n")

	// Macro cards
	macros := []struct{ Label, Value, Goal string }{
		{"Protein", cli.FormatMacroPair(s.ProteinConsumed, s.ProteinGoal), "grams"},
		{"Carbs", cli.FormatMacroPair(s.CarbsConsumed, s.CarbGoal), "grams"},
		{"Fat", cli.FormatMacroPair(s.FatConsumed, s.FatGoal), "grams"},
	}
	b.WriteString(components.StatCardRow(macros, cw))
	b.WriteString("\n")

	// Tabs
	b.WriteString(components.RenderTabBar(a.activeTab))
	b.WriteString("\n")
	switch a.activeTab {
	case 0:
		b.WriteString(a.renderMealsTab(s, cw))
	case 1:
		b.WriteString(a.renderWorkoutsTab(s, cw))
	}
	b.WriteString("\n")

	// Daily stats
	stats := []struct{ Label, Value, Goal string }{
		{"Hydration", cli.FormatLiters(s.HydrationLiters), "of " + cli.FormatLiters(model.HydrationGoalLiters)},
		{"Sleep", s.SleepDisplay + " h", fmt.Sprintf("of %d h", model.SleepGoalHours)},
		{"Steps", cli.FormatNumber(s.Steps), "of " + cli.FormatNumber(model.StepsGoal)},
		{"Burned", cli.FormatKcal(s.WorkoutCalories), "workouts"},
	}
	b.WriteString(components.StatCardRow(stats, cw))

	return b.String()
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
