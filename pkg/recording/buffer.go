package recording

import (
	"fmt"

	"github.com/hollowcrawl/dungeoncore/pkg/action"
	"github.com/hollowcrawl/dungeoncore/pkg/context"
)

// InputRecordBuffer is the flush threshold: once bufferPosition
// reaches this many bytes, considerFlushingBufferToFile writes the
// header and appends the buffer to the recording file (spec 4.J).
const InputRecordBuffer = 4096

// InputRecordBufferMaxSize bounds the in-memory buffer; recordChar
// drops bytes past this size rather than growing unbounded (spec §7's
// resource-exhaustion policy).
const InputRecordBufferMaxSize = InputRecordBuffer * 4

// Buffer is the session-global recording buffer of spec 4.J: a
// circular byte buffer that accumulates one turn's worth of events at
// a time and is flushed to the recording file once it crosses
// InputRecordBuffer bytes. Grounded on pkg/export/json.go's
// symmetric encode/decode-pair idiom, generalized from a one-shot
// Export* call to a buffered, append-on-turn stream with an explicit
// flush threshold.
type Buffer struct {
	data           []byte
	bufferPosition int
	lastRecordMark int // bufferPosition before the most recent RecordKeystroke, for CancelKeystroke

	path               string
	recording          bool
	playbackFileLength uint32
	warnings           []string
}

// NewRecorder starts a fresh recording at path: removes any existing
// file, writes the header, and readies the buffer (spec 4.J's
// "Initialization: Recording" steps).
func NewRecorder(fio context.FileIO, path string, info HeaderInfo) (*Buffer, error) {
	if fio.FileExists(path) {
		if err := fio.RemoveFile(path); err != nil {
			return nil, fmt.Errorf("recording: removing existing file: %w", err)
		}
	}
	if err := fio.WriteHeader(path, WriteHeaderInfo(info)); err != nil {
		return nil, fmt.Errorf("recording: writing header: %w", err)
	}
	return &Buffer{path: path, recording: true, data: make([]byte, 0, InputRecordBuffer)}, nil
}

// EventKeystroke tags a one-byte keystroke record in the event
// stream, preceding its compressed keycode byte (spec 4.J's "Body").
const EventKeystroke byte = 0x01

// RecordKeystroke appends a keystroke event (type byte + compressed
// keycode) to the buffer, implementing action.Recorder.
func (b *Buffer) RecordKeystroke(k action.Keystroke) {
	b.lastRecordMark = b.bufferPosition
	b.recordChar(EventKeystroke)
	b.recordChar(CompressKeystroke(int(k)))
}

// CancelKeystroke removes the bytes written by the most recent
// RecordKeystroke, implementing action.Recorder. Only the single most
// recent keystroke can be canceled (spec 4.J: "reversible within a
// single action").
func (b *Buffer) CancelKeystroke() {
	b.data = b.data[:b.lastRecordMark]
	b.bufferPosition = b.lastRecordMark
}

// recordChar appends one byte, dropping it with a warning if the
// buffer is already at InputRecordBufferMaxSize (spec §7).
func (b *Buffer) recordChar(c byte) {
	if len(b.data) >= InputRecordBufferMaxSize {
		b.warnings = append(b.warnings, "recording: buffer full, dropping byte")
		return
	}
	b.data = append(b.data, c)
	b.bufferPosition++
}

// Warnings returns and clears accumulated drop-warnings, for a
// verbose-mode CLI to surface (spec §7's resource-exhaustion policy).
func (b *Buffer) Warnings() []string {
	w := b.warnings
	b.warnings = nil
	return w
}

// ConsiderFlushingBufferToFile appends the buffer to the recording
// file and rewrites the header once bufferPosition crosses
// InputRecordBuffer, resetting the in-memory buffer and advancing
// playbackFileLength (spec 4.J). A no-op below threshold, and always
// a no-op in playback mode (spec 4.J: "flushing to file is disabled
// in playback mode").
func (b *Buffer) ConsiderFlushingBufferToFile(fio context.FileIO, info HeaderInfo) error {
	if !b.recording || b.bufferPosition < InputRecordBuffer {
		return nil
	}
	return b.Flush(fio, info)
}

// Flush unconditionally writes the current buffer contents to the
// recording file and rewrites the header, regardless of
// bufferPosition — used at session end to persist a partial buffer.
func (b *Buffer) Flush(fio context.FileIO, info HeaderInfo) error {
	if !b.recording {
		return nil
	}
	if err := fio.AppendBytes(b.path, b.data); err != nil {
		return fmt.Errorf("recording: appending buffer: %w", err)
	}
	b.playbackFileLength += uint32(len(b.data))
	info.PlaybackFileLength = b.playbackFileLength
	if err := fio.WriteHeader(b.path, WriteHeaderInfo(info)); err != nil {
		return fmt.Errorf("recording: rewriting header: %w", err)
	}
	b.data = b.data[:0]
	b.bufferPosition = 0
	b.lastRecordMark = 0
	return nil
}

// BufferPosition reports how many bytes are currently buffered and
// unflushed.
func (b *Buffer) BufferPosition() int { return b.bufferPosition }

// PlaybackFileLength reports how many bytes have been flushed to the
// recording file so far.
func (b *Buffer) PlaybackFileLength() uint32 { return b.playbackFileLength }

var _ action.Recorder = (*Buffer)(nil)
