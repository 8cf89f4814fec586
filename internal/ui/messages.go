package ui

import (
	"gifgrip/internal/domain"
	"gifgrip/internal/eventbus"
)

// EventMsg wraps a domain event forwarded from the event bus
type EventMsg struct {
	Event eventbus.DomainEvent
}

// searchResultMsg carries the resolution of one dispatched search. The
// generation ties it back to the dispatch so stale resolutions can be
// discarded.
type searchResultMsg struct {
	generation int
	query      string
	items      []domain.ResultItem
	err        error
}

// linkCopiedMsg carries the outcome of a clipboard write
type linkCopiedMsg struct {
	url string
	err error
}

// pageOpenedMsg carries the outcome of launching the browser
type pageOpenedMsg struct {
	url string
	err error
}
