package recording

import "testing"

func TestCompressKeystrokeTableRoundTrip(t *testing.T) {
	for _, k := range keystrokeTable {
		b := CompressKeystroke(k)
		if got := UncompressKeystroke(b); got != k {
			t.Fatalf("CompressKeystroke(%d)=%d, UncompressKeystroke(%d)=%d, want %d", k, b, b, got, k)
		}
	}
}

func TestUncompressCompressRoundTrip(t *testing.T) {
	for b := 0; b < 256; b++ {
		k := UncompressKeystroke(byte(b))
		if got := CompressKeystroke(k); got != byte(b) {
			t.Fatalf("UncompressKeystroke(%d)=%d, CompressKeystroke(%d)=%d, want %d", b, k, k, got, b)
		}
	}
}

func TestCompressKeystrokeASCIIPassthrough(t *testing.T) {
	for _, k := range []int{0, 'h', 'j', 'k', 'l', 255} {
		if got := CompressKeystroke(k); int(got) != k {
			t.Fatalf("CompressKeystroke(%d) = %d, want %d", k, got, k)
		}
	}
}

func TestCompressKeystrokeUnknown(t *testing.T) {
	if got := CompressKeystroke(-1); got != UnknownKey {
		t.Fatalf("CompressKeystroke(-1) = %d, want UnknownKey", got)
	}
	if got := CompressKeystroke(99999); got != UnknownKey {
		t.Fatalf("CompressKeystroke(99999) = %d, want UnknownKey", got)
	}
}
