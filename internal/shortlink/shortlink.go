// Package shortlink encodes recipe IDs as compact hex codes for the
// /s/<code> redirect path.
package shortlink

import (
	"fmt"
	"strconv"
)

// Encode renders a recipe ID as lowercase hex, zero-padded to at least
// two characters.
func Encode(id uint) string {
	return fmt.Sprintf("%02x", id)
}

// Decode parses a short code back into a recipe ID.
func Decode(code string) (uint, error) {
	if code == "" {
		return 0, fmt.Errorf("empty short code")
	}

	id, err := strconv.ParseUint(code, 16, 64)

	if err != nil {
		return 0, fmt.Errorf("invalid short code %q", code)
	}

	return uint(id), nil
}

// Path returns the redirect path served for a recipe.
func Path(id uint) string {
	return "/s/" + Encode(id)
}
