package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"gifgrip/internal/ui/input/types"
)

// CopyFallbackMode presents a link in an editable prompt when the system
// clipboard is unavailable, so the user can copy it manually.
type CopyFallbackMode struct {
	TextInputMode
}

func NewCopyFallbackMode(ti *textinput.Model) *CopyFallbackMode {
	return &CopyFallbackMode{
		TextInputMode: NewTextInputMode(types.ModeCopyFallback, "copy", "Copy link: ", ti),
	}
}

// Enter keeps the prefilled URL instead of resetting the input
func (m *CopyFallbackMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Focus()
		m.textInput.Prompt = ""
		m.textInput.CursorEnd()
	}
	return nil
}

// HandleKey dismisses the prompt on enter; there is nothing to submit
func (m *CopyFallbackMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "enter":
		return []types.Action{
			types.CancelTextAction{},
			types.ChangeModeAction{Mode: types.ModeBrowse},
		}, true
	default:
		return nil, false
	}
}
