package scaffold

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// ComponentName validates raw and converts it to PascalCase:
// "badge" → "Badge", "nav-bar" → "NavBar", "user_card" → "UserCard".
// Existing inner capitals are kept ("DataTable" stays "DataTable").
func ComponentName(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if !namePattern.MatchString(raw) {
		return "", fmt.Errorf("invalid component name %q: must start with a letter and contain only letters, digits, '-' or '_'", raw)
	}

	words := strings.FieldsFunc(raw, func(r rune) bool { return r == '-' || r == '_' })
	// Casers are stateful, so each call gets its own.
	caser := cases.Title(language.English, cases.NoLower)
	var b strings.Builder
	for _, w := range words {
		b.WriteString(caser.String(w))
	}
	return b.String(), nil
}
