package extractor

import (
	"regexp"
	"strconv"
	"strings"

	"pagemapper/internal/entity"
)

var identifierRunRE = regexp.MustCompile(`(?s)[^a-z0-9]+.`)

// Namer turns key bases into unique page-object identifiers and
// records them, in traversal order, into the page object.
type Namer struct {
	po *entity.PageObject
}

func NewNamer(po *entity.PageObject) *Namer {
	return &Namer{po: po}
}

// Record derives the identifier for one classified element and
// inserts its selector. When the key base is unusable the identifier
// falls back to the lowercase tag followed by the element's
// zero-based traversal index. Taken keys get an increasing numeric
// suffix; nothing is ever overwritten or dropped.
func (n *Namer) Record(m entity.Match, el entity.Element, index int) string {
	base := strings.TrimSpace(m.KeyBase)
	if base == "" {
		base = strings.ToLower(el.Tag) + strconv.Itoa(index)
	}

	key := NormalizeIdentifier(base)
	if key == "" {
		key = strings.ToLower(el.Tag) + strconv.Itoa(index)
	}

	if n.po.Set(key, m.Selector) {
		return key
	}

	for suffix := 1; ; suffix++ {
		candidate := key + strconv.Itoa(suffix)
		if n.po.Set(candidate, m.Selector) {
			return candidate
		}
	}
}

// NormalizeIdentifier lowercases the base, then folds every run of
// non-alphanumeric characters into the uppercased character that
// follows it: "search input" becomes "searchInput", "Submit" becomes
// "submit". A trailing run with nothing after it is left as is,
// matching the behavior of the original replace rule.
func NormalizeIdentifier(base string) string {
	lowered := strings.ToLower(base)

	return identifierRunRE.ReplaceAllStringFunc(lowered, func(run string) string {
		// Last rune of the match is the character the run swallows.
		runes := []rune(run)

		return strings.ToUpper(string(runes[len(runes)-1]))
	})
}
