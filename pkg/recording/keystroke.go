package recording

// Canonical keycodes for keys that fall outside the 0..255 ASCII/raw
// range the recording format can store in a single byte (spec 4.J).
// Values follow the convention of sitting well above any ASCII byte
// so a raw printable keystroke ('h', 'k', ...) is never confused with
// one of these.
const (
	UpArrow    = 61000
	LeftArrow  = 61001
	DownArrow  = 61002
	RightArrow = 61003
	EscapeKey  = 61004
	ReturnKey  = 61005
	DeleteKey  = 61006
	TabKey     = 61007
	Numpad0    = 61010
	Numpad1    = 61011
	Numpad2    = 61012
	Numpad3    = 61013
	Numpad4    = 61014
	Numpad5    = 61015
	Numpad6    = 61016
	Numpad7    = 61017
	Numpad8    = 61018
	Numpad9    = 61019
)

// UnknownKey is the sentinel compressKeystroke returns for a key that
// is neither in the compression table nor in [0,256).
const UnknownKey = 0xFF

// keystrokeTable is the compression table of spec 4.J: index i
// compresses to byte 128+i. Order is fixed and is itself part of the
// on-disk contract — reordering this slice would desync every
// existing recording.
var keystrokeTable = [18]int{
	UpArrow, LeftArrow, DownArrow, RightArrow,
	EscapeKey, ReturnKey, DeleteKey, TabKey,
	Numpad0, Numpad1, Numpad2, Numpad3, Numpad4,
	Numpad5, Numpad6, Numpad7, Numpad8, Numpad9,
}

// CompressKeystroke returns the on-disk byte for keycode k: 128+index
// when k is in keystrokeTable, k itself when 0<=k<256, else
// UnknownKey.
func CompressKeystroke(k int) byte {
	for i, v := range keystrokeTable {
		if v == k {
			return byte(128 + i)
		}
	}
	if k >= 0 && k < 256 {
		return byte(k)
	}
	return UnknownKey
}

// UncompressKeystroke is CompressKeystroke's inverse. A byte of
// 128+i with i >= len(keystrokeTable) passes through unchanged (spec
// 4.J: "unknown bytes ... pass through"), as does any byte < 128.
func UncompressKeystroke(b byte) int {
	if b < 128 {
		return int(b)
	}
	idx := int(b) - 128
	if idx < 0 || idx >= len(keystrokeTable) {
		return int(b)
	}
	return keystrokeTable[idx]
}
