// Package context declares the capability interfaces the simulation
// core uses to talk to its external collaborators (spec §6): file
// I/O, display, input, UI prompts, and messaging. Every call is a
// synchronous procedure from the core's point of view, even when a
// concrete UI implementation suspends internally to await a human.
//
// Grounded on spec §9's design note ("the source uses object-shaped
// context structs ... express each collaborator as a small capability
// trait/interface ... compose a GameContext that is the tuple of
// active capabilities"). No teacher package models a UI boundary this
// way (the teacher has no live-interaction surface at all — it's a
// one-shot generator), so this package's shape is grounded directly on
// that design note rather than on teacher code; its *content* is
// spec §6's own interface catalogue.
package context

import "github.com/hollowcrawl/dungeoncore/pkg/model"

// Pos mirrors grid.Pos without importing package grid, keeping this
// package free of any dependency on the simulation internals it
// merely describes a boundary around.
type Pos struct{ X, Y int }

// FileIO is the platform file-system collaborator used by the
// recording codec (spec 4.J, §6).
type FileIO interface {
	FileExists(path string) bool
	AppendBytes(path string, data []byte) error
	ReadBytes(path string, offset, length int64) ([]byte, error)
	WriteHeader(path string, header []byte) error
	RemoveFile(path string) error
	RenameFile(oldPath, newPath string) error
	CopyFile(src, dst string) error
}

// DisplayBufferHandle is an opaque handle to a saved display buffer,
// owned and interpreted only by the DisplaySink implementation.
type DisplayBufferHandle any

// PauseBehavior selects how PauseBrogue should react to input during
// the pause (spec §6's pause_brogue).
type PauseBehavior int

const (
	PauseUntilInterrupted PauseBehavior = iota
	PauseIgnoreInput
)

// DisplaySink is the rendering collaborator (spec §1: "the rendering
// layer ... treated as external collaborators").
type DisplaySink interface {
	PlotCharWithColor(glyph rune, pos Pos, fg, bg model.Color)
	SaveDisplayBuffer() DisplayBufferHandle
	RestoreDisplayBuffer(h DisplayBufferHandle)
	OverlayDisplayBuffer(h DisplayBufferHandle)
	// PauseBrogue blocks up to ms milliseconds and reports whether the
	// pause was interrupted by input.
	PauseBrogue(ms int, behavior PauseBehavior) bool
}

// EventKind discriminates the Event union returned by InputSource.
type EventKind int

const (
	EventKeystroke EventKind = iota
	EventMouseDown
	EventMouseUp
	EventMouseEnteredCell
	EventEndOfRecording
	EventError
)

// Event is the external-input event shape of spec §6.
type Event struct {
	Kind            EventKind
	Param1          int // keycode for EventKeystroke
	Ctrl, Shift     bool
	X, Y            int // cell coordinates for mouse events
}

// InputSource is the keyboard/mouse collaborator. realInputEvenInPlayback
// lets the playback driver still solicit a real keypress for prompts
// that are never recorded (e.g. "continue watching?").
type InputSource interface {
	NextEvent(textInput, colorsDance, realInputEvenInPlayback bool) Event
}

// TargetMode selects how ChooseTarget interprets maxDistance and
// highlights candidates (bolt line, area, or closest-monster).
type TargetMode int

const (
	TargetModeBolt TargetMode = iota
	TargetModeArea
	TargetModeClosestMonster
)

// TargetResult is ChooseTarget's return shape.
type TargetResult struct {
	Confirmed bool
	Target    Pos
}

// Prompts is the interactive-dialog collaborator: targeting, item
// pickers, confirmations (spec §1 names these "interactive prompts"
// as an external collaborator; spec §6 gives their signatures).
type Prompts interface {
	Confirm(prompt string, defaultYes bool) bool
	WaitForAcknowledgment()
	// PromptForItemOfType returns nil, false if the player escapes.
	PromptForItemOfType(category model.ItemCategory, required, forbidden model.ItemFlag, prompt string, allowEscape bool) (*model.Item, bool)
	ChooseTarget(maxDistance int, mode TargetMode, item *model.Item) TargetResult
}

// MessageFlag marks how a message should be presented (interrupting,
// combat-colored, etc); content and exact flag semantics are a
// collaborator concern, so this is an opaque bit word the core only
// passes through.
type MessageFlag uint32

// MessageSink is the message-log/HUD collaborator.
type MessageSink interface {
	Message(text string, flags MessageFlag)
	MessageWithColor(text string, color model.Color, flags MessageFlag)
	FlashTemporaryAlert(text string, ms int)
	CombatMessage(text string, color model.Color)
}

// GameContext composes the active capabilities for one session, per
// spec §9's "tuple of active capabilities" design note. Any field may
// be nil in a headless context (e.g. playback OOS checking, or unit
// tests exercising package action/ai directly): callers must guard
// against a nil capability before invoking it, exactly as an absent
// collaborator in the original design simply means "no UI is
// attached."
type GameContext struct {
	Files    FileIO
	Display  DisplaySink
	Input    InputSource
	Prompts  Prompts
	Messages MessageSink
}

// NullContext returns a GameContext with every capability nil, for
// running the simulation core headlessly (tests, playback OOS
// checking, scripted CLI runs).
func NullContext() *GameContext {
	return &GameContext{}
}
