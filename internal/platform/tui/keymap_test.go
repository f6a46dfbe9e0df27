package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestGameKeyMapCommand(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Command
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.CommandMoveUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.CommandMoveDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.CommandMoveLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.CommandMoveRight},
		{"w", runeKey('w'), core.CommandMoveUp},
		{"a", runeKey('a'), core.CommandMoveLeft},
		{"s", runeKey('s'), core.CommandMoveDown},
		{"d", runeKey('d'), core.CommandMoveRight},
		{"k", runeKey('k'), core.CommandMoveUp},
		{"h", runeKey('h'), core.CommandMoveLeft},
		{"j", runeKey('j'), core.CommandMoveDown},
		{"l", runeKey('l'), core.CommandMoveRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.CommandRestart},
		{"r", runeKey('r'), core.CommandRestart},
		{"q is not a command", runeKey('q'), core.CommandNone},
		{"p is not a command", runeKey('p'), core.CommandNone},
		{"backtick is not a command", runeKey('`'), core.CommandNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Command(tt.msg); got != tt.want {
				t.Errorf("Command(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMenuKeyMapAction(t *testing.T) {
	keys := DefaultMenuKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want MenuAction
	}{
		{"up", tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{"k", runeKey('k'), MenuActionUp},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{"j", runeKey('j'), MenuActionDown},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, MenuActionScores},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{"q", runeKey('q'), MenuActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, MenuActionQuit},
		{"x", runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestHelpBindingsHaveText(t *testing.T) {
	keys := DefaultGameKeyMap()
	for _, group := range keys.FullHelp() {
		for _, b := range group {
			if b.Help().Key == "" || b.Help().Desc == "" {
				t.Errorf("binding %v has no help text", b.Keys())
			}
		}
	}
}
