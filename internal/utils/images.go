package utils

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ParseBase64Image splits a "data:image/<ext>;base64,<payload>" string
// into its extension and decoded bytes.
func ParseBase64Image(data string) (string, []byte, error) {
	if !strings.HasPrefix(data, "data:image/") {
		return "", nil, fmt.Errorf("image must be a base64 data URL")
	}

	format, payload, found := strings.Cut(data, ";base64,")

	if !found || payload == "" {
		return "", nil, fmt.Errorf("image must be base64 encoded")
	}

	ext := strings.TrimPrefix(format, "data:image/")

	if ext == "" || strings.ContainsAny(ext, "/\\.") {
		return "", nil, fmt.Errorf("unsupported image format %q", ext)
	}

	raw, err := base64.StdEncoding.DecodeString(payload)

	if err != nil {
		return "", nil, fmt.Errorf("invalid base64 image payload: %w", err)
	}

	return ext, raw, nil
}

// SaveBase64Image decodes a data URL and writes it under the media root
// with a generated filename. Returns the path relative to the media root.
func SaveBase64Image(data, subdir string) (string, error) {
	ext, raw, err := ParseBase64Image(data)

	if err != nil {
		return "", err
	}

	relative := filepath.Join(subdir, fmt.Sprintf("%s.%s", uuid.NewString(), ext))
	full := filepath.Join(MediaRoot(), relative)

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}

	if err := os.WriteFile(full, raw, 0o644); err != nil {
		return "", err
	}

	return filepath.ToSlash(relative), nil
}

// RemoveMediaFile deletes a previously stored image. A missing file is
// not an error; the row is the source of truth.
func RemoveMediaFile(relative string) error {
	if relative == "" {
		return nil
	}

	err := os.Remove(filepath.Join(MediaRoot(), relative))

	if err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}

func MediaRoot() string {
	if root := os.Getenv("MEDIA_ROOT"); root != "" {
		return root
	}
	return "media"
}

// MediaURL maps a stored relative path to its public URL path.
func MediaURL(relative string) string {
	if relative == "" {
		return ""
	}
	return "/media/" + relative
}
