package core

import (
	"fmt"
	"strings"
)

// Command is a discrete instruction for the snake engine. Drivers translate
// key presses and timer ticks into commands; the engine never sees raw input.
type Command int

const (
	CommandNone Command = iota
	CommandMoveUp
	CommandMoveDown
	CommandMoveLeft
	CommandMoveRight
	CommandRestart
	CommandStep
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandMoveUp:
		return "MoveUp"
	case CommandMoveDown:
		return "MoveDown"
	case CommandMoveLeft:
		return "MoveLeft"
	case CommandMoveRight:
		return "MoveRight"
	case CommandRestart:
		return "Restart"
	case CommandStep:
		return "Step"
	default:
		return "Unknown"
	}
}

// Direction returns the movement direction for a move command.
// The second result is false for non-move commands.
func (c Command) Direction() (Direction, bool) {
	switch c {
	case CommandMoveUp:
		return DirUp, true
	case CommandMoveDown:
		return DirDown, true
	case CommandMoveLeft:
		return DirLeft, true
	case CommandMoveRight:
		return DirRight, true
	default:
		return DirUp, false
	}
}

// MoveCommand returns the move command for a direction.
func MoveCommand(d Direction) Command {
	switch d {
	case DirUp:
		return CommandMoveUp
	case DirDown:
		return CommandMoveDown
	case DirLeft:
		return CommandMoveLeft
	case DirRight:
		return CommandMoveRight
	default:
		return CommandNone
	}
}

// Compact single-rune command codes used by run logs and the sim command.
const (
	codeUp      = 'U'
	codeDown    = 'D'
	codeLeft    = 'L'
	codeRight   = 'R'
	codeRestart = 'X'
	codeStep    = '.'
)

// Rune returns the compact code for the command, or 0 for CommandNone.
func (c Command) Rune() rune {
	switch c {
	case CommandMoveUp:
		return codeUp
	case CommandMoveDown:
		return codeDown
	case CommandMoveLeft:
		return codeLeft
	case CommandMoveRight:
		return codeRight
	case CommandRestart:
		return codeRestart
	case CommandStep:
		return codeStep
	default:
		return 0
	}
}

// EncodeCommands packs a command log into its compact string form.
// CommandNone entries are dropped.
func EncodeCommands(cmds []Command) string {
	var sb strings.Builder
	sb.Grow(len(cmds))
	for _, c := range cmds {
		if r := c.Rune(); r != 0 {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// ParseCommands decodes a compact command string. Whitespace is ignored,
// lowercase move letters are accepted.
func ParseCommands(s string) ([]Command, error) {
	cmds := make([]Command, 0, len(s))
	for i, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		case codeUp, 'u':
			cmds = append(cmds, CommandMoveUp)
		case codeDown, 'd':
			cmds = append(cmds, CommandMoveDown)
		case codeLeft, 'l':
			cmds = append(cmds, CommandMoveLeft)
		case codeRight, 'r':
			cmds = append(cmds, CommandMoveRight)
		case codeRestart, 'x':
			cmds = append(cmds, CommandRestart)
		case codeStep:
			cmds = append(cmds, CommandStep)
		default:
			return nil, fmt.Errorf("core: unknown command %q at offset %d", r, i)
		}
	}
	return cmds, nil
}
