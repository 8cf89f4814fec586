package ui

import (
	"context"
	"errors"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"gifgrip/internal/config"
	"gifgrip/internal/domain"
	"gifgrip/internal/ui/input/types"
	"gifgrip/internal/ui/state"
)

// fakeSearcher records calls and answers from a canned table
type fakeSearcher struct {
	mu      sync.Mutex
	calls   []string
	results map[string][]domain.ResultItem
	errs    map[string]error
}

func newFakeSearcher() *fakeSearcher {
	return &fakeSearcher{
		results: make(map[string][]domain.ResultItem),
		errs:    make(map[string]error),
	}
}

func (f *fakeSearcher) Search(ctx context.Context, query string, rating domain.Rating) ([]domain.ResultItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, query)
	if err := f.errs[query]; err != nil {
		return nil, err
	}
	return f.results[query], nil
}

func (f *fakeSearcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func resultItems(ids ...string) []domain.ResultItem {
	out := make([]domain.ResultItem, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.ResultItem{
			ID:      id,
			Title:   "gif " + id,
			PageURL: "https://giphy.com/gifs/" + id,
			Thumb:   domain.ImageFile{URL: "https://i.test/" + id + "-fw.gif", Width: 200, Height: 150},
			Original: domain.ImageFile{
				URL: "https://i.test/" + id + ".gif", Width: 480, Height: 360,
			},
		})
	}
	return out
}

func newTestModel(searcher *fakeSearcher) *Model {
	cfg := config.DefaultConfig()
	cfg.APIKey = "test-key"
	m := NewModel(cfg, searcher, nil)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func typeText(m *Model, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func pressKey(m *Model, k string) tea.Cmd {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

// runCmds executes a command tree and feeds every produced message back into
// the model, the way the bubbletea runtime would.
func runCmds(m *Model, cmd tea.Cmd) {
	for _, msg := range collectMsgs(cmd) {
		m.Update(msg)
	}
}

func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// search types a query into the query bar, submits it and resolves the
// dispatched command.
func search(m *Model, query string) {
	if m.inputHandler.CurrentMode() != types.ModeQuery {
		pressKey(m, "/")
	}
	typeText(m, query)
	runCmds(m, pressKey(m, "enter"))
}

func TestSubmitSearchShowsResults(t *testing.T) {
	t.Parallel()

	searcher := newFakeSearcher()
	searcher.results["cat"] = resultItems("a", "b")
	m := newTestModel(searcher)

	search(m, "cat")

	require.Equal(t, []string{"cat"}, searcher.calls)
	require.Equal(t, state.StatusIdle, m.state.Status)
	require.Len(t, m.state.Results, 2)
	require.Equal(t, "a", m.state.Results[0].ID)
	require.Equal(t, "b", m.state.Results[1].ID)
	require.Zero(t, m.state.SelectedIndex)
}

func TestSubmitTrimsQuery(t *testing.T) {
	t.Parallel()

	searcher := newFakeSearcher()
	searcher.results["cat"] = resultItems("a")
	m := newTestModel(searcher)

	search(m, "  cat  ")

	require.Equal(t, []string{"cat"}, searcher.calls)
	require.Equal(t, "cat", m.state.Query)
}

func TestSubmitEmptyQueryIsSilentNoOp(t *testing.T) {
	t.Parallel()

	searcher := newFakeSearcher()
	m := newTestModel(searcher)

	typeText(m, "   ")
	runCmds(m, pressKey(m, "enter"))

	require.Zero(t, searcher.callCount(), "whitespace-only query must not issue a request")
	require.Equal(t, state.StatusIdle, m.state.Status)
	require.Empty(t, m.state.ErrorMessage)
}

func TestSearchFailureKeepsResults(t *testing.T) {
	t.Parallel()

	searcher := newFakeSearcher()
	searcher.results["cat"] = resultItems("a", "b")
	searcher.errs["dog"] = errors.New("timeout")
	m := newTestModel(searcher)

	search(m, "cat")
	search(m, "dog")

	require.Equal(t, state.StatusError, m.state.Status)
	require.Equal(t, "timeout", m.state.ErrorMessage)
	require.Len(t, m.state.Results, 2, "failed search must keep the prior results")
}

func TestStaleResolutionIsDiscarded(t *testing.T) {
	t.Parallel()

	searcher := newFakeSearcher()
	searcher.results["cat"] = resultItems("c1")
	searcher.results["dog"] = resultItems("d1", "d2")
	m := newTestModel(searcher)

	// Dispatch both searches, then resolve them newest first
	typeText(m, "cat")
	cmd1 := pressKey(m, "enter")
	pressKey(m, "/")
	typeText(m, "dog")
	cmd2 := pressKey(m, "enter")

	runCmds(m, cmd2)
	require.Len(t, m.state.Results, 2)

	runCmds(m, cmd1)
	require.Len(t, m.state.Results, 2, "older resolution must not replace newer results")
	require.Equal(t, "d1", m.state.Results[0].ID)
	require.Equal(t, state.StatusIdle, m.state.Status)
}

func TestPreviewOpenCloseRoundTrip(t *testing.T) {
	t.Parallel()

	searcher := newFakeSearcher()
	searcher.results["cat"] = resultItems("a", "b")
	m := newTestModel(searcher)
	search(m, "cat")

	pressKey(m, "right")
	require.Equal(t, 1, m.state.SelectedIndex)

	pressKey(m, "enter")
	require.NotNil(t, m.state.Preview)
	require.Equal(t, "b", m.state.Preview.ID)

	pressKey(m, "esc")
	require.Nil(t, m.state.Preview)
	require.Len(t, m.state.Results, 2)
	require.Equal(t, 1, m.state.SelectedIndex, "closing the preview must not move the cursor")
}

func TestPreviewConsumesGridKeys(t *testing.T) {
	t.Parallel()

	searcher := newFakeSearcher()
	searcher.results["cat"] = resultItems("a", "b")
	m := newTestModel(searcher)
	search(m, "cat")

	pressKey(m, "enter")
	require.NotNil(t, m.state.Preview)

	// Keys that would navigate or re-open the search bar are swallowed
	pressKey(m, "right")
	require.Zero(t, m.state.SelectedIndex)
	pressKey(m, "/")
	require.Equal(t, types.ModeBrowse, m.inputHandler.CurrentMode())
	require.NotNil(t, m.state.Preview)
}

func TestCopyLinkSuccessShowsConfirmation(t *testing.T) {
	t.Parallel()

	searcher := newFakeSearcher()
	searcher.results["cat"] = resultItems("a")
	m := newTestModel(searcher)
	search(m, "cat")

	var copied string
	m.copyText = func(s string) error {
		copied = s
		return nil
	}

	runCmds(m, pressKey(m, "c"))

	require.Equal(t, "https://i.test/a.gif", copied)
	require.Equal(t, "Link copied", m.state.StatusMessage)
	require.Equal(t, types.ModeBrowse, m.inputHandler.CurrentMode(), "success must not open the fallback prompt")
}

func TestCopyLinkFailureOpensFallbackPrompt(t *testing.T) {
	t.Parallel()

	searcher := newFakeSearcher()
	searcher.results["cat"] = resultItems("a")
	m := newTestModel(searcher)
	search(m, "cat")

	m.copyText = func(string) error {
		return errors.New("no clipboard")
	}

	runCmds(m, pressKey(m, "c"))

	require.Equal(t, types.ModeCopyFallback, m.inputHandler.CurrentMode())
	ti := m.inputHandler.TextInput()
	require.NotNil(t, ti)
	require.Equal(t, "https://i.test/a.gif", ti.Value(), "prompt must be prefilled with the link")
	require.NotEqual(t, "Link copied", m.state.StatusMessage, "failure must not show the success notice")

	pressKey(m, "esc")
	require.Equal(t, types.ModeBrowse, m.inputHandler.CurrentMode())
}

func TestCopyLinkFromPreviewTargetsPreviewedItem(t *testing.T) {
	t.Parallel()

	searcher := newFakeSearcher()
	searcher.results["cat"] = resultItems("a", "b")
	m := newTestModel(searcher)
	search(m, "cat")

	pressKey(m, "right")
	pressKey(m, "enter")
	require.NotNil(t, m.state.Preview)

	var copied string
	m.copyText = func(s string) error {
		copied = s
		return nil
	}
	runCmds(m, pressKey(m, "c"))

	require.Equal(t, "https://i.test/b.gif", copied)
}

func TestOpenPageLaunchesBrowser(t *testing.T) {
	t.Parallel()

	searcher := newFakeSearcher()
	searcher.results["cat"] = resultItems("a")
	m := newTestModel(searcher)
	search(m, "cat")

	var opened string
	m.openURL = func(s string) error {
		opened = s
		return nil
	}
	runCmds(m, pressKey(m, "o"))

	require.Equal(t, "https://giphy.com/gifs/a", opened)
}

func TestCycleRatingUpdatesStateAndConfig(t *testing.T) {
	t.Parallel()

	searcher := newFakeSearcher()
	m := newTestModel(searcher)
	pressKey(m, "esc") // leave the query bar

	require.Equal(t, domain.RatingG, m.state.Rating)
	pressKey(m, "r")
	require.Equal(t, domain.RatingPG, m.state.Rating)
	require.Equal(t, "pg", m.config.Rating)
}

func TestWindowSizeSetsGridGeometry(t *testing.T) {
	t.Parallel()

	searcher := newFakeSearcher()
	m := newTestModel(searcher)

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	require.Equal(t, 4, m.state.Columns)

	m.Update(tea.WindowSizeMsg{Width: 20, Height: 10})
	require.Equal(t, 1, m.state.Columns)
	require.GreaterOrEqual(t, m.state.ViewportRows, 1)
}

func TestViewRendersStates(t *testing.T) {
	t.Parallel()

	searcher := newFakeSearcher()
	searcher.results["cat"] = resultItems("a", "b")
	searcher.errs["dog"] = errors.New("timeout")
	m := newTestModel(searcher)

	out := m.View()
	require.Contains(t, out, "gifgrip")
	require.Contains(t, out, "Search:")

	search(m, "cat")
	out = m.View()
	require.Contains(t, out, "gif a")

	search(m, "dog")
	out = m.View()
	require.Contains(t, out, "timeout")
	require.Contains(t, out, "gif a", "error view still shows the prior results")

	pressKey(m, "enter")
	out = m.View()
	require.Contains(t, out, "https://i.test/a.gif")
}

func TestViewNeverContainsAPIKey(t *testing.T) {
	t.Parallel()

	searcher := newFakeSearcher()
	searcher.results["cat"] = resultItems("a")
	m := newTestModel(searcher)
	search(m, "cat")

	require.NotContains(t, m.View(), "test-key")
}
