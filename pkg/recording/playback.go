package recording

import (
	"fmt"

	"github.com/hollowcrawl/dungeoncore/pkg/context"
)

// Player drives a previously-recorded file back through the same
// event stream the live session wrote (spec 4.J's "Initialization:
// Playback" and "recall" steps). It tracks three independent
// positions the way the source does: fileReadPosition (bytes
// physically pulled from disk into the in-memory window),
// streamPosition (logical event-stream cursor, advanced one RecallChar
// at a time) and bufferPosition (offset of streamPosition within the
// current in-memory window) — kept distinct so a playback can refill
// its window from disk without losing its place in the stream.
//
// Grounded on pkg/export/json.go and pkg/export/tmj.go's symmetric
// encode/decode-pair idiom: this is that pair's decode half, reading
// back what Buffer (buffer.go) wrote.
type Player struct {
	Header HeaderInfo

	path               string
	window             []byte
	fileReadPosition   int64
	bufferPosition     int
	streamPosition     int64
	playbackFileLength int64

	// OutOfSync is set once a checksum or header mismatch is detected
	// and never cleared; per spec §9's Open Question resolution, a
	// desynced playback continues rather than aborting, surfacing this
	// flag for the caller to display.
	OutOfSync bool
	oosReason string
}

// NewPlayer opens path for playback and parses its header; the read
// window is filled later, on demand, by refill. currentVersion is compared against the recorded
// version with VersionsCompatible; a mismatch sets OutOfSync rather
// than failing outright, consistent with the OOS-tolerant design.
func NewPlayer(fio context.FileIO, path, currentVersion string) (*Player, error) {
	raw, err := fio.ReadBytes(path, 0, RecordingHeaderLength)
	if err != nil {
		return nil, fmt.Errorf("recording: reading header: %w", err)
	}
	info, err := ParseHeaderInfo(raw)
	if err != nil {
		return nil, err
	}

	p := &Player{
		Header:             info,
		path:               path,
		playbackFileLength: int64(info.PlaybackFileLength),
	}
	if !VersionsCompatible(info.VersionString, currentVersion) {
		p.markOOS(fmt.Sprintf("recorded version %q incompatible with current %q", info.VersionString, currentVersion))
	}
	return p, nil
}

// playbackWindowSize is how many bytes refill pulls from disk
// at a time, matching Buffer's InputRecordBuffer flush granularity so
// a playback never waits on a partial flush mid-window.
const playbackWindowSize = InputRecordBuffer

// EndOfRecording is RecallChar's sentinel second return value: no more
// bytes remain in the recorded stream (spec 4.J's EventEndOfRecording).
const EndOfRecording = -1

// RecallChar returns the next byte in the recorded stream, refilling
// the in-memory window from disk as needed, or EndOfRecording once
// streamPosition reaches playbackFileLength.
func (p *Player) RecallChar(fio context.FileIO) int {
	if p.streamPosition >= p.playbackFileLength {
		return EndOfRecording
	}
	if p.bufferPosition >= len(p.window) {
		if err := p.refill(fio); err != nil {
			p.markOOS(fmt.Sprintf("refilling playback window: %v", err))
			return EndOfRecording
		}
		if len(p.window) == 0 {
			return EndOfRecording
		}
	}
	c := p.window[p.bufferPosition]
	p.bufferPosition++
	p.streamPosition++
	return int(c)
}

func (p *Player) refill(fio context.FileIO) error {
	remaining := p.playbackFileLength - p.fileReadPosition
	if remaining <= 0 {
		p.window = nil
		return nil
	}
	want := int64(playbackWindowSize)
	if remaining < want {
		want = remaining
	}
	buf, err := fio.ReadBytes(p.path, RecordingHeaderLength+p.fileReadPosition, want)
	if err != nil {
		return err
	}
	p.window = buf
	p.bufferPosition = 0
	p.fileReadPosition += int64(len(buf))
	return nil
}

// RecallKeystroke reads one keystroke event from the stream: the
// EventKeystroke tag byte followed by a compressed keycode, returning
// the uncompressed keycode. ok is false at end of recording or if the
// next event tag is not EventKeystroke (an OOS condition, since a
// healthy stream and the live session's RecordKeystroke calls are
// expected to agree on event shape).
func (p *Player) RecallKeystroke(fio context.FileIO) (key int, ok bool) {
	tag := p.RecallChar(fio)
	if tag == EndOfRecording {
		return 0, false
	}
	if byte(tag) != EventKeystroke {
		p.markOOS(fmt.Sprintf("expected keystroke event tag %d, got %d", EventKeystroke, tag))
		return 0, false
	}
	b := p.RecallChar(fio)
	if b == EndOfRecording {
		p.markOOS("truncated keystroke event")
		return 0, false
	}
	return UncompressKeystroke(byte(b)), true
}

// CheckOOS compares a checkpoint value recorded at a known turn (e.g.
// a level's RNG-derived checksum) against the value recomputed live
// during playback, marking OutOfSync on mismatch. The simulation
// itself never aborts on an OOS condition (spec §9): callers surface
// p.OutOfSync and p.Reason() to the UI and keep playing.
func (p *Player) CheckOOS(turn uint32, recorded, live uint64) {
	if recorded != live {
		p.markOOS(fmt.Sprintf("checksum mismatch at turn %d: recorded %d, live %d", turn, recorded, live))
	}
}

func (p *Player) markOOS(reason string) {
	if !p.OutOfSync {
		p.OutOfSync = true
		p.oosReason = reason
	}
}

// Reason returns the first OOS condition detected, or "" if still in
// sync.
func (p *Player) Reason() string { return p.oosReason }

// Done reports whether the stream has been fully consumed.
func (p *Player) Done() bool { return p.streamPosition >= p.playbackFileLength }
