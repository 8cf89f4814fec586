package input

import (
	"gifgrip/internal/ui/state"
)

// ModelContext adapts AppState to the read-only Context the mode handlers see
type ModelContext struct {
	State *state.AppState
}

func (c *ModelContext) CurrentIndex() int { return c.State.SelectedIndex }

func (c *ModelContext) TotalItems() int { return len(c.State.Results) }

func (c *ModelContext) HasResults() bool { return len(c.State.Results) > 0 }

func (c *ModelContext) PreviewOpen() bool { return c.State.Preview != nil }

func (c *ModelContext) Loading() bool { return c.State.Status == state.StatusLoading }
