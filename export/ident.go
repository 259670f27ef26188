package export

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Ident converts an asset name into an exported Go identifier fragment.
// Runs of letters and digits become title-cased words; everything else is
// dropped. "folder-open" and "folder_open" both become "FolderOpen".
// A name without letters or digits becomes "X".
func Ident(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	// Casers are stateful; one per call.
	title := cases.Title(language.Und, cases.NoLower)

	var b strings.Builder
	for _, w := range words {
		b.WriteString(title.String(w))
	}
	if b.Len() == 0 {
		return "X"
	}
	return b.String()
}

// identSet hands out unique identifiers. A clash gets a numeric suffix:
// Icon, Icon_2, Icon_3.
type identSet map[string]bool

func (s identSet) add(prefix, name string) string {
	base := prefix + Ident(name)
	id := base
	for n := 2; s[id]; n++ {
		id = fmt.Sprintf("%s_%d", base, n)
	}
	s[id] = true
	return id
}
