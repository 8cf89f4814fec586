package state

import (
	"gifgrip/internal/domain"
)

// Status is the lifecycle of the outstanding search request
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusError
)

// AppState contains all the application state
type AppState struct {
	// Search state
	Query        string              // last submitted query, trimmed
	Results      []domain.ResultItem // current result set, display order
	Status       Status
	ErrorMessage string // set only when Status is StatusError
	Generation   int    // generation of the most recently dispatched search

	// Preview state
	Preview *domain.ResultItem // copy of the previewed item, nil when closed

	// Grid state
	SelectedIndex  int
	Columns        int
	ViewportOffset int // first visible grid row
	ViewportRows   int // visible grid rows

	// UI state
	Rating        domain.Rating
	StatusMessage string // transient status bar notice
	ShowHelp      bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Results:      make([]domain.ResultItem, 0),
		Rating:       domain.RatingG,
		Columns:      1,
		ViewportRows: 4,
	}
}

// BeginSearch transitions into loading for a new query and returns the
// generation assigned to the dispatched request. Any prior error is cleared;
// the result set is left untouched until resolution.
func (s *AppState) BeginSearch(query string) int {
	s.Query = query
	s.Status = StatusLoading
	s.ErrorMessage = ""
	s.StatusMessage = ""
	s.Generation++
	return s.Generation
}

// ApplyResults installs a successful resolution. Resolutions that do not
// carry the latest generation are discarded, so a stale or post-teardown
// response can never clobber fresher state.
func (s *AppState) ApplyResults(generation int, items []domain.ResultItem) bool {
	if generation != s.Generation {
		return false
	}
	if items == nil {
		items = make([]domain.ResultItem, 0)
	}
	s.Results = items
	s.Status = StatusIdle
	s.ErrorMessage = ""
	s.SelectedIndex = 0
	s.ViewportOffset = 0
	return true
}

// ApplyError installs a failed resolution. The prior result set is
// deliberately preserved: stale results under an error banner beat a blank
// screen. Stale generations are discarded as in ApplyResults.
func (s *AppState) ApplyError(generation int, message string) bool {
	if generation != s.Generation {
		return false
	}
	if message == "" {
		message = "search failed"
	}
	s.Status = StatusError
	s.ErrorMessage = message
	return true
}

// ItemAt returns the result at the given index
func (s *AppState) ItemAt(index int) (domain.ResultItem, bool) {
	if index < 0 || index >= len(s.Results) {
		return domain.ResultItem{}, false
	}
	return s.Results[index], true
}

// CurrentItem returns the item under the cursor
func (s *AppState) CurrentItem() (domain.ResultItem, bool) {
	return s.ItemAt(s.SelectedIndex)
}

// OpenPreview sets the preview to a copy of the item at index. The copy
// keeps an open preview valid even if a later search replaces the results.
func (s *AppState) OpenPreview(index int) bool {
	item, ok := s.ItemAt(index)
	if !ok {
		return false
	}
	copied := item
	s.Preview = &copied
	return true
}

// ClosePreview clears the preview unconditionally
func (s *AppState) ClosePreview() {
	s.Preview = nil
}

// ActiveItem returns the item an action should target: the previewed item
// when the overlay is open, otherwise the item under the cursor.
func (s *AppState) ActiveItem() (domain.ResultItem, bool) {
	if s.Preview != nil {
		return *s.Preview, true
	}
	return s.CurrentItem()
}
