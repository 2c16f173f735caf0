package utils

import "testing"

func TestParseBase64Image(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantExt  string
		wantBody string
		wantErr  bool
	}{
		{
			name:     "valid png payload",
			data:     "data:image/png;base64,ZmFrZQ==",
			wantExt:  "png",
			wantBody: "fake",
		},
		{
			name:     "valid jpeg payload",
			data:     "data:image/jpeg;base64,aGVsbG8=",
			wantExt:  "jpeg",
			wantBody: "hello",
		},
		{
			name:    "missing data url prefix",
			data:    "ZmFrZQ==",
			wantErr: true,
		},
		{
			name:    "missing base64 marker",
			data:    "data:image/png,ZmFrZQ==",
			wantErr: true,
		},
		{
			name:    "empty payload",
			data:    "data:image/png;base64,",
			wantErr: true,
		},
		{
			name:    "invalid base64",
			data:    "data:image/png;base64,!!!",
			wantErr: true,
		},
		{
			name:    "path traversal in extension",
			data:    "data:image/../secret;base64,ZmFrZQ==",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, raw, err := ParseBase64Image(tt.data)

			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBase64Image() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				return
			}

			if ext != tt.wantExt {
				t.Errorf("ParseBase64Image() ext = %q, want %q", ext, tt.wantExt)
			}

			if string(raw) != tt.wantBody {
				t.Errorf("ParseBase64Image() body = %q, want %q", raw, tt.wantBody)
			}
		})
	}
}

func TestMediaURL(t *testing.T) {
	if got := MediaURL("avatars/a.png"); got != "/media/avatars/a.png" {
		t.Errorf("MediaURL() = %q", got)
	}

	if got := MediaURL(""); got != "" {
		t.Errorf("MediaURL(\"\") = %q, want empty", got)
	}
}

func TestSaveBase64Image(t *testing.T) {
	t.Setenv("MEDIA_ROOT", t.TempDir())

	relative, err := SaveBase64Image("data:image/png;base64,ZmFrZQ==", "avatars")

	if err != nil {
		t.Fatalf("SaveBase64Image() error = %v", err)
	}

	if relative == "" {
		t.Fatal("SaveBase64Image() returned empty path")
	}

	if err := RemoveMediaFile(relative); err != nil {
		t.Errorf("RemoveMediaFile() error = %v", err)
	}

	// Removing again must be a no-op, not an error.
	if err := RemoveMediaFile(relative); err != nil {
		t.Errorf("RemoveMediaFile() second call error = %v", err)
	}
}
