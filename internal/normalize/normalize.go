package normalize

import (
	"strings"

	"golang.org/x/text/cases"
)

var folder = cases.Fold()

// Name canonicalizes a player or team name for lookups: trimmed and
// case-folded so "Ivanov" and "IVANOV" hit the same cache key.
func Name(name string) string {
	return folder.String(strings.TrimSpace(name))
}
