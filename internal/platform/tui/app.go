package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

type appState int

const (
	stateMenu appState = iota
	stateDifficulty
	stateGame
	stateScores
)

// AppModel manages the full flow: menu -> speed -> game -> menu, with the
// scoreboard reachable from the menu. Local play and SSH sessions both run
// it.
type AppModel struct {
	opts       Options
	config     core.RuntimeConfig
	state      appState
	preset     registry.Preset
	menu       MenuModel
	difficulty DifficultyModel
	game       Model
	scores     ScoreboardModel
	quitting   bool
}

// NewAppModel creates the top-level model.
func NewAppModel(opts Options, cfg core.RuntimeConfig) AppModel {
	return AppModel{
		opts:   opts,
		config: cfg,
		state:  stateMenu,
		menu:   NewMenuModel(opts.Store, cfg.ScreenW, cfg.ScreenH),
	}
}

// Init initializes the app.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen and handles transitions.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.state {
	case stateDifficulty:
		return m.updateDifficulty(msg)
	case stateGame:
		return m.updateGame(msg)
	case stateScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH)
		m.state = stateScores
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		m.preset = *m.menu.Selected()
		m.difficulty = NewDifficultyModel(m.opts.Tick.Difficulty, m.config.ScreenW, m.config.ScreenH)
		m.state = stateDifficulty
		return m, m.difficulty.Init()
	}

	return m, cmd
}

func (m AppModel) updateDifficulty(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.difficulty.Update(msg)
	m.difficulty = next.(DifficultyModel)

	if m.difficulty.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.difficulty.WantsBack() {
		return m.toMenu()
	}
	if preset, ok := m.difficulty.Selected(); ok {
		return m.startGame(preset)
	}
	return m, cmd
}

// startGame builds a fresh session for the chosen board and speed.
func (m AppModel) startGame(d config.DifficultyPreset) (tea.Model, tea.Cmd) {
	opts := m.opts
	opts.Tick.Difficulty = d
	opts.Tick.IntervalMS = 0

	sess, err := NewSession(m.preset, opts)
	if err != nil {
		opts.logger().Error("cannot start game", "preset", m.preset.ID, "error", err)
		return m.toMenu()
	}

	m.game = NewModel(sess, opts, m.config)
	m.state = stateGame
	return m, m.game.Init()
}

func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(Model)

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		// The pending tick lands on the menu and is dropped there.
		return m.toMenu()
	}
	return m, cmd
}

func (m AppModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		return m.toMenu()
	}
	return m, cmd
}

// toMenu rebuilds the menu so best scores are fresh.
func (m AppModel) toMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH)
	m.state = stateMenu
	return m, m.menu.Init()
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateDifficulty:
		return m.difficulty.View()
	case stateGame:
		return m.game.View()
	case stateScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunApp runs the menu-driven flow until the user quits.
func RunApp(opts Options, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewAppModel(opts, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
