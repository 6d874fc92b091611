package core

// Action represents a semantic game action, abstracted from physical input.
// This lets the engine work with high-level intents rather than raw keys
// or mouse buttons.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Enter - start game / dismiss intro
	ActionPress          // Space, Enter, left click on the challenge button
	ActionRestart        // R key - restart after game over
	ActionBack           // B, Escape - leave to score screen
	ActionQuit           // Q, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionPress:
		return "Press"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Click is a pointer click in play-area cell coordinates.
// The engine hit-tests clicks against companion sprites itself.
type Click struct {
	X, Y int
}

// ReplyChoice identifies one reply option of one pending prompt.
type ReplyChoice struct {
	PromptID int64
	Index    int
}

// InputFrame represents the input delivered to the engine for one tick.
// Pointer clicks on widgets (replies, challenge items) arrive pre-mapped by
// the platform layer, because widget layout belongs to presentation; clicks
// inside the play area arrive raw.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Clicks are raw play-area clicks, hit-tested against companions.
	Clicks []Click

	// Reply is a chosen reply option, or nil.
	Reply *ReplyChoice

	// Pick is a chosen challenge item index, or -1.
	Pick int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Pick:    -1,
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddClick records a raw play-area click for this frame.
func (f *InputFrame) AddClick(x, y int) {
	f.Clicks = append(f.Clicks, Click{X: x, Y: y})
}

// SetReply records a chosen reply option for this frame.
func (f *InputFrame) SetReply(promptID int64, index int) {
	f.Reply = &ReplyChoice{PromptID: promptID, Index: index}
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicks = f.Clicks[:0]
	f.Reply = nil
	f.Pick = -1
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Clicks = append(clone.Clicks, f.Clicks...)
	if f.Reply != nil {
		r := *f.Reply
		clone.Reply = &r
	}
	clone.Pick = f.Pick
	return clone
}
