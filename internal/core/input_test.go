package core

import "testing"

func TestCommandDirection(t *testing.T) {
	for _, d := range Directions {
		cmd := MoveCommand(d)
		got, ok := cmd.Direction()
		if !ok || got != d {
			t.Errorf("MoveCommand(%v).Direction() = %v, %v", d, got, ok)
		}
	}

	for _, cmd := range []Command{CommandNone, CommandRestart, CommandStep} {
		if _, ok := cmd.Direction(); ok {
			t.Errorf("%v should not be a move command", cmd)
		}
	}
}

func TestEncodeParseCommands(t *testing.T) {
	cmds := []Command{
		CommandStep, CommandMoveUp, CommandStep, CommandMoveRight,
		CommandMoveDown, CommandMoveLeft, CommandRestart, CommandNone, CommandStep,
	}

	encoded := EncodeCommands(cmds)
	if encoded != ".U.RDLX." {
		t.Fatalf("EncodeCommands() = %q, expected %q", encoded, ".U.RDLX.")
	}

	parsed, err := ParseCommands(encoded)
	if err != nil {
		t.Fatalf("ParseCommands() failed: %v", err)
	}
	if len(parsed) != len(cmds)-1 {
		t.Fatalf("ParseCommands() returned %d commands, expected %d", len(parsed), len(cmds)-1)
	}
	if EncodeCommands(parsed) != encoded {
		t.Errorf("round trip mismatch: %q", EncodeCommands(parsed))
	}
}

func TestParseCommandsLenient(t *testing.T) {
	parsed, err := ParseCommands("u d\nl r x .")
	if err != nil {
		t.Fatalf("ParseCommands() failed: %v", err)
	}
	if EncodeCommands(parsed) != "UDLRX." {
		t.Errorf("got %q", EncodeCommands(parsed))
	}
}

func TestParseCommandsRejectsUnknown(t *testing.T) {
	if _, err := ParseCommands("UU?"); err == nil {
		t.Error("expected error for unknown command rune")
	}
}
