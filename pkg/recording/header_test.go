package recording

import "testing"

func TestHeaderRoundTrip(t *testing.T) {
	info := HeaderInfo{
		VersionString:      "1.11.0",
		Mode:               ModeRecording,
		Seed:               0xdeadbeefcafebabe,
		PlayerTurnNumber:   12345,
		MaxDepthChanges:    7,
		PlaybackFileLength: 999999,
	}
	buf := WriteHeaderInfo(info)
	if len(buf) != RecordingHeaderLength {
		t.Fatalf("header length = %d, want %d", len(buf), RecordingHeaderLength)
	}
	got, err := ParseHeaderInfo(buf)
	if err != nil {
		t.Fatalf("ParseHeaderInfo: %v", err)
	}
	if got != info {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, info)
	}
}

func TestHeaderVersionTruncation(t *testing.T) {
	info := HeaderInfo{VersionString: "1234567890123456789"}
	buf := WriteHeaderInfo(info)
	got, err := ParseHeaderInfo(buf)
	if err != nil {
		t.Fatalf("ParseHeaderInfo: %v", err)
	}
	if len(got.VersionString) > 15 {
		t.Fatalf("version not truncated: %q", got.VersionString)
	}
}

func TestParseHeaderInfoTooShort(t *testing.T) {
	if _, err := ParseHeaderInfo(make([]byte, 10)); err == nil {
		t.Fatal("expected error for short buffer")
	}
}

func TestNumberToBytesRoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	NumberToBytes(0x0102030405060708, 8, buf, 0)
	if got := BytesToNumber(buf, 8, 0); got != 0x0102030405060708 {
		t.Fatalf("BytesToNumber = %#x, want %#x", got, 0x0102030405060708)
	}
}

func TestVersionsCompatible(t *testing.T) {
	cases := []struct {
		recorded, current string
		want              bool
	}{
		{"1.11.0", "1.11.3", true},
		{"1.11.0", "1.12.0", false},
		{"1.11.0", "2.11.0", false},
		{"garbage", "1.11.0", false},
	}
	for _, c := range cases {
		if got := VersionsCompatible(c.recorded, c.current); got != c.want {
			t.Errorf("VersionsCompatible(%q, %q) = %v, want %v", c.recorded, c.current, got, c.want)
		}
	}
}
