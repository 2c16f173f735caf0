package shortlink

import "testing"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, id := range []uint{1, 9, 15, 16, 255, 256, 4096, 123456789} {
		decoded, err := Decode(Encode(id))

		if err != nil {
			t.Fatalf("Decode(Encode(%d)) error = %v", id, err)
		}

		if decoded != id {
			t.Errorf("Decode(Encode(%d)) = %d", id, decoded)
		}
	}
}

func TestEncodeZeroPadding(t *testing.T) {
	tests := []struct {
		id   uint
		want string
	}{
		{1, "01"},
		{15, "0f"},
		{255, "ff"},
		{256, "100"},
	}

	for _, tt := range tests {
		if got := Encode(tt.id); got != tt.want {
			t.Errorf("Encode(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestDecodeRejectsMalformedCodes(t *testing.T) {
	for _, code := range []string{"", "zz", "0x1f", "-1", "1 2"} {
		if _, err := Decode(code); err == nil {
			t.Errorf("Decode(%q) expected an error", code)
		}
	}
}

func TestPath(t *testing.T) {
	if got := Path(26); got != "/s/1a" {
		t.Errorf("Path(26) = %q, want %q", got, "/s/1a")
	}
}
