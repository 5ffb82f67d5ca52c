package atlas

import "strings"

// NormalizeID derives a stable working-set key from a display name:
// lowercased, with every run of non-alphanumeric characters collapsed to a
// single dash. Census results are keyed this way so re-running a search
// de-duplicates against earlier merges.
func NormalizeID(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	dash := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
		} else if !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// PlaceholderImage synthesizes a deterministic image reference for entities
// the content service returned without one.
func PlaceholderImage(name string) string {
	seed := strings.ReplaceAll(name, " ", "")
	return "https://picsum.photos/seed/" + seed + "/400/300"
}
