package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // optional prefill for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Result actions
type OpenPreviewAction struct{}

func (a OpenPreviewAction) Type() string { return "open_preview" }

type ClosePreviewAction struct{}

func (a ClosePreviewAction) Type() string { return "close_preview" }

type CopyLinkAction struct{}

func (a CopyLinkAction) Type() string { return "copy_link" }

type OpenPageAction struct{}

func (a OpenPageAction) Type() string { return "open_page" }

// Settings actions
type CycleRatingAction struct{}

func (a CycleRatingAction) Type() string { return "cycle_rating" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
