package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pashakim/pasha-party/internal/core"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyActions(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{keyMsg('w'), core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{keyMsg('a'), core.ActionLeft},
		{keyMsg('d'), core.ActionRight},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionTap},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{keyMsg('p'), core.ActionPause},
		{keyMsg('x'), core.ActionNone},
	}

	for _, tt := range tests {
		got, quit := km.MapKey(tt.msg)
		if got != tt.want {
			t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
		if quit {
			t.Errorf("MapKey(%q) reported quit", tt.msg.String())
		}
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()

	_, quit := km.MapKey(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !quit {
		t.Error("ctrl+c should be a quit request")
	}
}

func TestMapKeyToFrameRecordsDigits(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(keyMsg('2'), &frame) {
		t.Error("digit key should not quit")
	}
	if len(frame.Runes) != 1 || frame.Runes[0] != '2' {
		t.Errorf("Runes = %v, want ['2']", frame.Runes)
	}

	frame.Clear()
	km.MapKeyToFrame(keyMsg('0'), &frame)
	if len(frame.Runes) != 0 {
		t.Errorf("Runes = %v, '0' is not an answer key", frame.Runes)
	}
}

func TestMapKeyToFrameSetsAction(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, &frame)
	if !frame.Has(core.ActionTap) {
		t.Error("space should set ActionTap on the frame")
	}
}
