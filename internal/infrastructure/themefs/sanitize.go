package themefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SanitizeDirName derives a filesystem-safe directory name from a merchant
// supplied theme name: diacritics are folded to their base letters, then
// everything outside [a-z0-9] is dropped.
func SanitizeDirName(name string) string {
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(folder, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// UniqueDirName returns base, or base-{suffix} with a 6-digit time-derived
// suffix when a directory with that name already exists under parent.
func UniqueDirName(parent, base string) string {
	if base == "" {
		base = "theme"
	}
	if _, err := os.Stat(filepath.Join(parent, base)); os.IsNotExist(err) {
		return base
	}
	suffix := time.Now().UnixMilli() % 1_000_000
	return fmt.Sprintf("%s-%06d", base, suffix)
}
