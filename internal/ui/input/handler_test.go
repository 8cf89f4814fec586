package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"gifgrip/internal/domain"
	"gifgrip/internal/ui/input/types"
	"gifgrip/internal/ui/state"
)

func browseContext(count int) *ModelContext {
	s := state.NewAppState()
	gen := s.BeginSearch("test")
	items := make([]domain.ResultItem, count)
	for i := range items {
		items[i] = domain.ResultItem{ID: string(rune('a' + i))}
	}
	s.ApplyResults(gen, items)
	return &ModelContext{State: s}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestSlashEntersQueryMode(t *testing.T) {
	t.Parallel()

	h := New()
	ctx := browseContext(0)

	require.Equal(t, types.ModeBrowse, h.CurrentMode())
	_, cmd := h.HandleKey(key("/"), ctx)
	require.Equal(t, types.ModeQuery, h.CurrentMode())
	require.NotNil(t, cmd, "entering a text mode starts the cursor blink")
	require.NotNil(t, h.TextInput())
	require.Empty(t, h.TextInput().Value())
}

func TestQuerySubmitReturnsTypedText(t *testing.T) {
	t.Parallel()

	h := New()
	ctx := browseContext(0)

	h.HandleKey(key("/"), ctx)
	h.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("cat")}, ctx)

	actions, _ := h.HandleKey(key("enter"), ctx)
	require.Equal(t, types.ModeBrowse, h.CurrentMode())

	var submitted *types.SubmitTextAction
	for _, a := range actions {
		if s, ok := a.(types.SubmitTextAction); ok {
			submitted = &s
		}
	}
	require.NotNil(t, submitted)
	require.Equal(t, "cat", submitted.Text)
	require.Equal(t, types.ModeQuery, submitted.Mode)
}

func TestQueryEscCancelsWithoutSubmitting(t *testing.T) {
	t.Parallel()

	h := New()
	ctx := browseContext(0)

	h.HandleKey(key("/"), ctx)
	h.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("cat")}, ctx)
	actions, _ := h.HandleKey(key("esc"), ctx)

	require.Equal(t, types.ModeBrowse, h.CurrentMode())
	for _, a := range actions {
		_, ok := a.(types.SubmitTextAction)
		require.False(t, ok, "esc must not submit")
	}
}

func TestBrowseKeysNeedResults(t *testing.T) {
	t.Parallel()

	h := New()
	empty := browseContext(0)

	actions, _ := h.HandleKey(key("c"), empty)
	require.Empty(t, actions, "copy with no results is a no-op")
	actions, _ = h.HandleKey(key("enter"), empty)
	require.Empty(t, actions, "preview with no results is a no-op")

	full := browseContext(2)
	actions, _ = h.HandleKey(key("c"), full)
	require.Len(t, actions, 1)
	require.IsType(t, types.CopyLinkAction{}, actions[0])
	actions, _ = h.HandleKey(key("enter"), full)
	require.Len(t, actions, 1)
	require.IsType(t, types.OpenPreviewAction{}, actions[0])
}

func TestBrowseDoubleGNavigatesHome(t *testing.T) {
	t.Parallel()

	h := New()
	ctx := browseContext(5)

	actions, _ := h.HandleKey(key("g"), ctx)
	require.Empty(t, actions, "first g waits for the second")
	actions, _ = h.HandleKey(key("g"), ctx)
	require.Len(t, actions, 1)
	require.Equal(t, types.NavigateAction{Direction: "home"}, actions[0])

	actions, _ = h.HandleKey(key("G"), ctx)
	require.Equal(t, types.NavigateAction{Direction: "end"}, actions[0])
}

func TestProgrammaticChangeModePrefillsText(t *testing.T) {
	t.Parallel()

	h := New()
	h.ChangeMode(types.ModeCopyFallback, "https://i.test/a.gif")

	require.Equal(t, types.ModeCopyFallback, h.CurrentMode())
	ti := h.TextInput()
	require.NotNil(t, ti)
	require.Equal(t, "https://i.test/a.gif", ti.Value())
	require.True(t, ti.Focused())

	actions, _ := h.HandleKey(key("enter"), browseContext(0))
	require.Equal(t, types.ModeBrowse, h.CurrentMode())
	for _, a := range actions {
		_, ok := a.(types.SubmitTextAction)
		require.False(t, ok, "the fallback prompt has nothing to submit")
	}
	require.Nil(t, h.TextInput())
}
