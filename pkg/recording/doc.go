// Package recording implements the keystroke-recording and playback
// codec of spec 4.J: a fixed-width binary header, a byte-compression
// scheme for non-ASCII keycodes, a circular append-on-turn recording
// buffer, a symmetric playback reader, and an annotation side-channel.
//
// Grounded on pkg/export/json.go and pkg/export/tmj.go's paired
// encode/decode idiom (one file per direction, sharing the constants
// and layout that make them inverses of each other), generalized from
// a one-shot whole-artifact marshal to a streaming, buffered codec
// since a recording accumulates turn by turn rather than being built
// once and serialized at the end.
package recording
