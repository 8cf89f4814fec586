package ui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"gifgrip/internal/browser"
	"gifgrip/internal/config"
	"gifgrip/internal/domain"
	"gifgrip/internal/eventbus"
	"gifgrip/internal/giphy"
	"gifgrip/internal/ui/input"
	"gifgrip/internal/ui/input/types"
	"gifgrip/internal/ui/logic"
	"gifgrip/internal/ui/state"
	"gifgrip/internal/ui/views"
)

const searchTimeout = 20 * time.Second

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state

	// UI-specific state not in AppState
	width  int
	height int
	help   help.Model
	keys   keyMap
	spin   spinner.Model

	// Collaborators
	searcher     giphy.Searcher
	inputHandler *input.Handler
	renderer     *views.Renderer

	// Side-effect seams, replaced in tests
	copyText func(string) error
	openURL  func(string) error
}

// NewModel creates a new UI model
func NewModel(cfg *config.Config, searcher giphy.Searcher, bus eventbus.EventBus) *Model {
	appState := state.NewAppState()
	appState.Rating = domain.ParseRating(cfg.Rating)

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		help:         help.New(),
		keys:         defaultKeyMap(),
		spin:         spinner.New(spinner.WithSpinner(spinner.Dot)),
		searcher:     searcher,
		inputHandler: input.New(),
		renderer:     views.NewRenderer(cfg.UISettings.ShowDimensions),
		copyText:     clipboard.WriteAll,
		openURL:      browser.Open,
	}

	// Start with the query bar focused
	m.inputHandler.ChangeMode(types.ModeQuery, "")

	return m
}

// Init returns the initial commands
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spin.Tick)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.state.Columns = logic.ColumnsFor(msg.Width)
		m.state.ViewportRows = gridRowsFor(msg.Height)
		m.ensureVisible()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case searchResultMsg:
		return m.handleSearchResult(msg)

	case linkCopiedMsg:
		return m.handleLinkCopied(msg)

	case pageOpenedMsg:
		if msg.err != nil {
			m.state.StatusMessage = "Could not open browser: " + msg.err.Error()
		}
		return m, nil

	case EventMsg:
		if _, ok := msg.Event.(eventbus.ConfigSavedEvent); ok {
			m.state.StatusMessage = "Settings saved"
		}
		return m, nil

	case tea.KeyMsg:
		// The preview overlay consumes all keys: dismissal and content
		// actions are separate regions, nothing falls through to the grid
		if m.state.Preview != nil {
			return m.handlePreviewKey(msg)
		}

		if m.state.ShowHelp {
			switch msg.String() {
			case "esc", "q", "?":
				m.state.ShowHelp = false
			case "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}

		ctx := &input.ModelContext{State: m.state}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		// Non-keyboard messages may still drive the text input (blink)
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
	}

	return m, nil
}

// handlePreviewKey routes keys while the preview overlay is open
func (m *Model) handlePreviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "q", "enter":
		m.state.ClosePreview()
	case "c", "y":
		if item, ok := m.state.ActiveItem(); ok {
			return m, m.copyCmd(item.Original.URL)
		}
	case "o":
		if item, ok := m.state.ActiveItem(); ok {
			return m, m.openCmd(item.PageURL)
		}
	}
	return m, nil
}

// handleSearchResult applies a search resolution to the state. Stale
// generations are dropped inside AppState, so an out-of-order response or a
// resolution arriving after teardown changes nothing.
func (m *Model) handleSearchResult(msg searchResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if m.state.ApplyError(msg.generation, msg.err.Error()) {
			m.publish(eventbus.SearchFailedEvent{
				Query:      msg.query,
				Generation: msg.generation,
				Message:    m.state.ErrorMessage,
			})
		}
		return m, nil
	}

	if m.state.ApplyResults(msg.generation, msg.items) {
		m.ensureVisible()
		m.publish(eventbus.SearchCompletedEvent{
			Query:      msg.query,
			Generation: msg.generation,
			Count:      len(msg.items),
		})
	}
	return m, nil
}

// handleLinkCopied surfaces either the confirmation notice or the manual
// fallback prompt, never both.
func (m *Model) handleLinkCopied(msg linkCopiedMsg) (tea.Model, tea.Cmd) {
	if msg.err == nil {
		m.state.StatusMessage = "Link copied"
		return m, nil
	}
	m.state.StatusMessage = "Clipboard unavailable, copy the link below"
	m.inputHandler.ChangeMode(types.ModeCopyFallback, msg.url)
	return m, textinput.Blink
}

// processAction executes one input action
func (m *Model) processAction(action types.Action) tea.Cmd {
	switch a := action.(type) {
	case types.NavigateAction:
		count := len(m.state.Results)
		m.state.SelectedIndex = logic.Move(m.state.SelectedIndex, count, m.state.Columns, a.Direction)
		m.ensureVisible()

	case types.SubmitTextAction:
		if a.Mode == types.ModeQuery {
			return m.submitSearch(a.Text)
		}

	case types.OpenPreviewAction:
		m.state.OpenPreview(m.state.SelectedIndex)

	case types.ClosePreviewAction:
		m.state.ClosePreview()

	case types.CopyLinkAction:
		if item, ok := m.state.ActiveItem(); ok {
			return m.copyCmd(item.Original.URL)
		}

	case types.OpenPageAction:
		if item, ok := m.state.ActiveItem(); ok {
			return m.openCmd(item.PageURL)
		}

	case types.CycleRatingAction:
		m.state.Rating = m.state.Rating.Next()
		m.config.Rating = string(m.state.Rating)
		m.state.StatusMessage = "Rating: " + string(m.state.Rating)
		if m.config.UISettings.SaveRating {
			m.publish(eventbus.ConfigChangedEvent{Rating: m.state.Rating})
		}

	case types.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case types.QuitAction:
		return tea.Quit
	}

	return nil
}

// submitSearch dispatches a search for the given text. Empty and
// whitespace-only queries are silently ignored; everything else issues
// exactly one request. Re-entrant submits are allowed, the generation
// assigned here decides which resolution wins.
func (m *Model) submitSearch(text string) tea.Cmd {
	query := strings.TrimSpace(text)
	if query == "" {
		return nil
	}

	gen := m.state.BeginSearch(query)
	m.publish(eventbus.SearchStartedEvent{Query: query, Generation: gen})
	return m.searchCmd(query, gen)
}

// searchCmd issues the request off the UI loop and reports back as a message
func (m *Model) searchCmd(query string, gen int) tea.Cmd {
	searcher := m.searcher
	rating := m.state.Rating
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
		defer cancel()
		items, err := searcher.Search(ctx, query, rating)
		return searchResultMsg{generation: gen, query: query, items: items, err: err}
	}
}

// copyCmd writes the URL to the clipboard and reports the outcome
func (m *Model) copyCmd(url string) tea.Cmd {
	copyText := m.copyText
	return func() tea.Msg {
		return linkCopiedMsg{url: url, err: copyText(url)}
	}
}

// openCmd launches the browser and reports the outcome
func (m *Model) openCmd(url string) tea.Cmd {
	openURL := m.openURL
	return func() tea.Msg {
		return pageOpenedMsg{url: url, err: openURL(url)}
	}
}

// ensureVisible scrolls the viewport to keep the cursor row on screen
func (m *Model) ensureVisible() {
	m.state.ViewportOffset = logic.ScrollTo(
		m.state.SelectedIndex,
		m.state.Columns,
		m.state.ViewportOffset,
		m.state.ViewportRows,
	)
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	vs := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Query:          m.state.Query,
		Status:         m.state.Status,
		ErrorMessage:   m.state.ErrorMessage,
		StatusMessage:  m.state.StatusMessage,
		Results:        m.state.Results,
		SelectedIndex:  m.state.SelectedIndex,
		Columns:        m.state.Columns,
		ViewportOffset: m.state.ViewportOffset,
		ViewportRows:   m.state.ViewportRows,
		Preview:        m.state.Preview,
		Rating:         m.state.Rating,
		ShowHelp:       m.state.ShowHelp,
		SpinnerView:    m.spin.View(),
		HelpView:       m.help.View(m.keys),
	}

	switch m.inputHandler.CurrentMode() {
	case types.ModeQuery:
		vs.InputMode = "query"
	case types.ModeCopyFallback:
		vs.InputMode = "copy"
	}
	if ti := m.inputHandler.TextInput(); ti != nil {
		vs.TextInput = ti.View()
	}

	return m.renderer.Render(vs)
}

// gridRowsFor derives how many card rows fit in the terminal height. A card
// is three content lines plus its border.
func gridRowsFor(height int) int {
	rows := (height - 8) / 5
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}
