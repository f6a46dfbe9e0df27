package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func appUpdate(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(AppModel)
}

func TestAppMenuToGameAndBack(t *testing.T) {
	m := NewAppModel(testOptions(t, nil), core.RuntimeConfig{ScreenW: 100, ScreenH: 30})

	m = appUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != stateDifficulty {
		t.Fatalf("state = %v after selecting a board, want difficulty", m.state)
	}
	if m.preset.ID != "narrow" {
		t.Errorf("first preset = %q, want the smallest board", m.preset.ID)
	}

	m = appUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = appUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != stateGame {
		t.Fatalf("state = %v after picking a speed, want game", m.state)
	}
	if got := m.game.config.TickInterval.Milliseconds(); got != 70 {
		t.Errorf("tick interval = %dms, want hard (70ms)", got)
	}

	m = appUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != stateMenu {
		t.Errorf("state = %v after esc, want menu", m.state)
	}

	// A tick left over from the finished board is dropped by the menu.
	m = appUpdate(t, m, TickMsg{ID: m.game.tickID})
	if m.state != stateMenu {
		t.Errorf("stray tick changed state to %v", m.state)
	}
}

func TestAppDifficultyBack(t *testing.T) {
	m := NewAppModel(testOptions(t, nil), core.RuntimeConfig{ScreenW: 100, ScreenH: 30})
	m = appUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = appUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != stateMenu {
		t.Errorf("state = %v, want menu", m.state)
	}
}

func TestAppScoreboard(t *testing.T) {
	m := NewAppModel(testOptions(t, nil), core.RuntimeConfig{ScreenW: 100, ScreenH: 30})

	m = appUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.state != stateScores {
		t.Fatalf("state = %v after tab, want scores", m.state)
	}
	if m.View() == "" {
		t.Error("scoreboard should render without a store")
	}

	m = appUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != stateMenu {
		t.Errorf("state = %v after esc, want menu", m.state)
	}
}

func TestAppQuit(t *testing.T) {
	m := NewAppModel(testOptions(t, nil), core.RuntimeConfig{ScreenW: 100, ScreenH: 30})
	next, cmd := m.Update(runeKey('q'))
	if !next.(AppModel).quitting {
		t.Error("q should quit from the menu")
	}
	if cmd == nil {
		t.Fatal("q should return tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should return tea.Quit")
	}
}
