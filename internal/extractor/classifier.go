package extractor

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"pagemapper/internal/entity"
)

// maxLabelLength bounds role labels and text selectors. A label of
// exactly this many runes is already too long.
const maxLabelLength = 30

// keyBaseWords is how many leading words of a label survive into the
// page-object key base.
const keyBaseWords = 3

var newlineRunRE = regexp.MustCompile(`[ \t]*[\r\n]+[ \t]*`)

// Classify maps one element to at most one selector. Strategies are
// tried in strict priority order and the first hit wins: id,
// data-testid, name, role (explicit or implicit), visible text.
// Attribute values and text are interpolated without escaping, which
// is a known limitation for values containing quotes.
func Classify(el entity.Element) (entity.Match, bool) {
	tag := strings.ToLower(el.Tag)

	if id := el.Attr("id"); id != "" {
		return entity.Match{
			Strategy: entity.StrategyID,
			Selector: "#" + id,
			KeyBase:  id,
		}, true
	}

	if testID := el.Attr("data-testid"); testID != "" {
		return entity.Match{
			Strategy: entity.StrategyTestID,
			Selector: fmt.Sprintf(`[data-testid="%s"]`, testID),
			KeyBase:  testID,
		}, true
	}

	if name := el.Attr("name"); name != "" {
		return entity.Match{
			Strategy: entity.StrategyName,
			Selector: fmt.Sprintf(`%s[name="%s"]`, tag, name),
			// Tag joins the key base so input[name="search"] maps to
			// the page-object key searchInput, not a bare search.
			KeyBase: name + " " + tag,
		}, true
	}

	if role := elementRole(el); role != "" {
		label := el.Attr("aria-label")
		if label == "" {
			label = el.Text
		}
		label = cleanText(label)

		if label != "" && utf8.RuneCountInString(label) < maxLabelLength {
			return entity.Match{
				Strategy: entity.StrategyRole,
				Selector: fmt.Sprintf(`role=%s[name="%s"]`, role, label),
				KeyBase:  firstWords(label, keyBaseWords),
			}, true
		}

		return entity.Match{
			Strategy: entity.StrategyRole,
			Selector: "role=" + role,
			KeyBase:  role,
		}, true
	}

	if text := cleanText(el.Text); text != "" && utf8.RuneCountInString(text) < maxLabelLength {
		return entity.Match{
			Strategy: entity.StrategyText,
			Selector: fmt.Sprintf(`%s:has-text("%s")`, tag, text),
			KeyBase:  firstWords(text, keyBaseWords),
		}, true
	}

	return entity.Match{}, false
}

// elementRole resolves the element's ARIA role: the explicit role
// attribute when present, otherwise the implicit role of its tag/type.
func elementRole(el entity.Element) string {
	if role := el.Attr("role"); role != "" {
		return role
	}

	switch strings.ToLower(el.Tag) {
	case "a":
		return "link"
	case "button":
		return "button"
	case "select":
		return "combobox"
	case "option":
		return "option"
	case "input":
		switch strings.ToLower(el.Attr("type")) {
		case "checkbox":
			return "checkbox"
		case "radio":
			return "radio"
		case "submit", "button":
			return "button"
		default:
			return "textbox"
		}
	}

	return ""
}

// CollapseNewlines rewrites every run of newlines, together with any
// spaces hugging it, into a single space. Re-applying it to an
// already collapsed string is a no-op.
func CollapseNewlines(s string) string {
	return newlineRunRE.ReplaceAllString(s, " ")
}

func cleanText(s string) string {
	return strings.TrimSpace(CollapseNewlines(s))
}

func firstWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) > n {
		words = words[:n]
	}

	return strings.Join(words, " ")
}
