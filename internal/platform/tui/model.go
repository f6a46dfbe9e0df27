package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/prng"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/session"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Options configures the terminal driver.
type Options struct {
	Store  *storage.Store // May be nil; runs are then not recorded
	Logger *log.Logger
	Tick   config.TickConfig
	Seed   int64 // 0 seeds every new game from host entropy
	Debug  bool
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}

// seed returns the seed for a new game.
func (o Options) seed() prng.Seed {
	if o.Seed == 0 {
		return prng.SeedFromEntropy()
	}
	return prng.SeedFromInt64(o.Seed)
}

// NewSession builds a session for preset and wires run recording into it.
func NewSession(preset registry.Preset, opts Options) (*session.Session, error) {
	logger := opts.logger()
	sess, err := session.New(preset, opts.seed(), snake.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	store := opts.Store
	sess.OnGameOver(func(r session.Run) {
		if store == nil {
			return
		}
		id, err := store.SaveRun(r.Record())
		if err != nil {
			logger.Warn("could not save run", "error", err)
			return
		}
		logger.Debug("run saved", "id", id, "preset", r.Preset, "score", r.Score)
	})
	return sess, nil
}

// Model is the Bubble Tea model for one snake board.
type Model struct {
	session    *session.Session
	screen     *core.Screen
	pacer      *config.Pacer
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       GameKeyMap
	help       help.Model
	tickID     int64
	paused     bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a board model driving sess.
func NewModel(sess *session.Session, opts Options, cfg core.RuntimeConfig) Model {
	pacer := config.NewPacer(opts.Tick)
	cfg.TickInterval = pacer.Base()
	cfg.Debug = cfg.Debug || opts.Debug

	return Model{
		session: sess,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH-1), // Last row is the help bar
		pacer:   pacer,
		logger:  opts.logger(),
		config:  cfg,
		keys:    DefaultGameKeyMap(),
		help:    help.New(),
		tickID:  nextTickID(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickID, m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Direction keys are applied at once;
// the engine only commits them on the next step.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.backToMenu = true
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Debug):
		m.config.Debug = !m.config.Debug
		return m, nil
	case key.Matches(msg, m.keys.Pause):
		if m.session.Game().Running() {
			m.paused = !m.paused
		}
		return m, nil
	}

	cmd := m.keys.Command(msg)
	switch {
	case cmd == core.CommandRestart:
		// Restart is only offered once the run is over.
		if m.session.Game().GameOver() {
			m.session.Apply(cmd)
			m.paused = false
		}
	case cmd != core.CommandNone && !m.paused && m.session.Game().Running():
		m.session.Apply(cmd)
	}
	return m, nil
}

// handleTick steps the engine and schedules the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	g := m.session.Game()
	if g.Running() && !m.paused {
		m.session.Apply(core.CommandStep)
	}
	m.config.TickInterval = m.pacer.Interval(g.Score())
	return m, tickCmd(m.tickID, m.config.TickInterval)
}

// saveScreenshot saves the current board as plain text.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot: no home directory", "error", err)
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot: cannot create directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.session.Preset().ID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot: cannot write", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

func (m Model) draw() {
	DrawBoard(m.screen, m.session.Game(), BoardView{
		Title:  m.session.Preset().Title,
		Debug:  m.config.Debug,
		Paused: m.paused,
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	g := m.session.Game()
	field := FieldRect(m.screen.Width(), m.screen.Height(), g.Width(), g.Height())
	return RenderScreen(m.screen, field) + "\n" + m.help.View(m.keys)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Debug reports whether the semi-open overlay is shown.
func (m Model) Debug() bool {
	return m.config.Debug
}

// Run starts a standalone Bubble Tea program on one board.
func Run(preset registry.Preset, opts Options, cfg core.RuntimeConfig) error {
	sess, err := NewSession(preset, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewModel(sess, opts, cfg),
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
