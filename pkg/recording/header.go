package recording

import "fmt"

// Byte offsets and field widths for the recording header (spec 4.J's
// table). RECORDING_HEADER_LENGTH is the on-disk header length;
// implementations may reserve trailing zero-padded bytes beyond the
// last named field, which this port does not use.
const (
	HeaderVersionOffset  = 0
	HeaderVersionLength  = 16
	HeaderModeOffset     = 16
	HeaderSeedOffset     = 17
	HeaderSeedLength     = 8
	HeaderTurnOffset     = 25
	HeaderTurnLength     = 4
	HeaderDepthOffset    = 29
	HeaderDepthLength    = 4
	HeaderFileLenOffset  = 33
	HeaderFileLenLength  = 4

	// RecordingHeaderLength is the minimum on-disk header size; this
	// port writes exactly this many bytes and reserves none beyond it.
	RecordingHeaderLength = 37
)

// Mode values for the header's single mode byte.
const (
	ModeRecording byte = iota
	ModePlayback
	ModeSave
)

// HeaderInfo is the parsed/unparsed form of the recording header.
type HeaderInfo struct {
	VersionString      string
	Mode               byte
	Seed               uint64
	PlayerTurnNumber   uint32
	MaxDepthChanges    uint32
	PlaybackFileLength uint32
}

// NumberToBytes writes value as length big-endian bytes into buf at
// offset (spec 4.J). length must be 1, 2, 4, or 8.
func NumberToBytes(value uint64, length int, buf []byte, offset int) {
	for i := 0; i < length; i++ {
		shift := uint((length - 1 - i) * 8)
		buf[offset+i] = byte(value >> shift)
	}
}

// BytesToNumber reads length big-endian bytes from buf at offset into
// a uint64 (spec 4.J). length must be 1, 2, 4, or 8.
func BytesToNumber(buf []byte, length int, offset int) uint64 {
	var v uint64
	for i := 0; i < length; i++ {
		v = v<<8 | uint64(buf[offset+i])
	}
	return v
}

// WriteHeaderInfo serializes info into a RecordingHeaderLength-byte
// buffer. VersionString longer than 15 bytes is truncated (spec 4.J:
// "read up to 15 chars"); the 16th version byte is always zero,
// reserved the way the source reserves it for a future use distinct
// from the Mode byte that follows at offset 16.
func WriteHeaderInfo(info HeaderInfo) []byte {
	buf := make([]byte, RecordingHeaderLength)

	v := info.VersionString
	if len(v) > 15 {
		v = v[:15]
	}
	copy(buf[HeaderVersionOffset:HeaderVersionOffset+HeaderVersionLength], v)

	buf[HeaderModeOffset] = info.Mode
	NumberToBytes(info.Seed, HeaderSeedLength, buf, HeaderSeedOffset)
	NumberToBytes(uint64(info.PlayerTurnNumber), HeaderTurnLength, buf, HeaderTurnOffset)
	NumberToBytes(uint64(info.MaxDepthChanges), HeaderDepthLength, buf, HeaderDepthOffset)
	NumberToBytes(uint64(info.PlaybackFileLength), HeaderFileLenLength, buf, HeaderFileLenOffset)

	return buf
}

// ParseHeaderInfo is WriteHeaderInfo's inverse.
func ParseHeaderInfo(buf []byte) (HeaderInfo, error) {
	if len(buf) < RecordingHeaderLength {
		return HeaderInfo{}, fmt.Errorf("recording: header too short: %d bytes, need %d", len(buf), RecordingHeaderLength)
	}

	versionBytes := buf[HeaderVersionOffset : HeaderVersionOffset+HeaderVersionLength]
	end := 0
	for end < len(versionBytes) && versionBytes[end] != 0 {
		end++
	}

	return HeaderInfo{
		VersionString:      string(versionBytes[:end]),
		Mode:               buf[HeaderModeOffset],
		Seed:               BytesToNumber(buf, HeaderSeedLength, HeaderSeedOffset),
		PlayerTurnNumber:   uint32(BytesToNumber(buf, HeaderTurnLength, HeaderTurnOffset)),
		MaxDepthChanges:    uint32(BytesToNumber(buf, HeaderDepthLength, HeaderDepthOffset)),
		PlaybackFileLength: uint32(BytesToNumber(buf, HeaderFileLenLength, HeaderFileLenOffset)),
	}, nil
}

// VersionsCompatible reports whether recorded and current version
// strings share the same major.minor component (spec 4.J: "if the
// recorded major.minor matches the current, accept even if patch
// differs"). Both strings are expected in "MAJOR.MINOR.PATCH" form;
// a malformed string never compares equal.
func VersionsCompatible(recorded, current string) bool {
	rMajor, rMinor, _, rOK := splitVersion(recorded)
	cMajor, cMinor, _, cOK := splitVersion(current)
	return rOK && cOK && rMajor == cMajor && rMinor == cMinor
}

func splitVersion(s string) (major, minor, patch string, ok bool) {
	parts := make([]string, 0, 3)
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '.' {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	if len(parts) != 3 {
		return "", "", "", false
	}
	return parts[0], parts[1], parts[2], true
}
