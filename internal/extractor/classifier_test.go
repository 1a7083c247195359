package extractor

import (
	"strings"
	"testing"

	"pagemapper/internal/entity"
)

func el(tag, text string, attrs map[string]string) entity.Element {
	if attrs == nil {
		attrs = map[string]string{}
	}

	return entity.Element{Tag: tag, Text: text, Attributes: attrs}
}

func TestClassifyStrategies(t *testing.T) {
	tests := []struct {
		name     string
		element  entity.Element
		strategy entity.Strategy
		selector string
	}{
		{
			name:     "id",
			element:  el("div", "", map[string]string{"id": "main"}),
			strategy: entity.StrategyID,
			selector: "#main",
		},
		{
			name:     "test id",
			element:  el("div", "Header", map[string]string{"data-testid": "header"}),
			strategy: entity.StrategyTestID,
			selector: `[data-testid="header"]`,
		},
		{
			name:     "name attribute",
			element:  el("input", "", map[string]string{"name": "search"}),
			strategy: entity.StrategyName,
			selector: `input[name="search"]`,
		},
		{
			name:     "name attribute lowercases tag",
			element:  el("INPUT", "", map[string]string{"name": "q"}),
			strategy: entity.StrategyName,
			selector: `input[name="q"]`,
		},
		{
			name:     "implicit button role with text label",
			element:  el("button", "Submit", nil),
			strategy: entity.StrategyRole,
			selector: `role=button[name="Submit"]`,
		},
		{
			name:     "explicit role with aria label",
			element:  el("nav", "ignored", map[string]string{"role": "navigation", "aria-label": "Main menu"}),
			strategy: entity.StrategyRole,
			selector: `role=navigation[name="Main menu"]`,
		},
		{
			name:     "aria label wins over text for the role name",
			element:  el("button", "Visible text", map[string]string{"aria-label": "Close dialog"}),
			strategy: entity.StrategyRole,
			selector: `role=button[name="Close dialog"]`,
		},
		{
			name:     "role without usable label",
			element:  el("input", "", map[string]string{"type": "checkbox"}),
			strategy: entity.StrategyRole,
			selector: "role=checkbox",
		},
		{
			name:     "role label at the cutoff drops the name filter",
			element:  el("a", strings.Repeat("x", 30), nil),
			strategy: entity.StrategyRole,
			selector: "role=link",
		},
		{
			name:     "text fallback for roleless tag",
			element:  el("span", "Hello", nil),
			strategy: entity.StrategyText,
			selector: `span:has-text("Hello")`,
		},
		{
			name:     "text lowercases tag",
			element:  el("SPAN", "Hi", nil),
			strategy: entity.StrategyText,
			selector: `span:has-text("Hi")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, ok := Classify(tt.element)
			if !ok {
				t.Fatalf("Classify(%v): no match, want %q", tt.element, tt.selector)
			}
			if match.Strategy != tt.strategy {
				t.Errorf("strategy = %q, want %q", match.Strategy, tt.strategy)
			}
			if match.Selector != tt.selector {
				t.Errorf("selector = %q, want %q", match.Selector, tt.selector)
			}
		})
	}
}

func TestClassifyNoMatch(t *testing.T) {
	tests := []struct {
		name    string
		element entity.Element
	}{
		{"no attributes, no text", el("div", "", nil)},
		{"whitespace-only text", el("div", "   \n\t  ", nil)},
		{"text too long", el("div", strings.Repeat("a", 30), nil)},
		{"empty attribute values are absent", el("div", "", map[string]string{"id": "", "data-testid": "", "name": "", "role": ""})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if match, ok := Classify(tt.element); ok {
				t.Errorf("Classify = %+v, want no match", match)
			}
		})
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	// An element carrying every hook must resolve to the id selector
	// alone; each attribute removed peels back exactly one level.
	attrs := map[string]string{
		"id":          "all",
		"data-testid": "all-tid",
		"name":        "all-name",
		"role":        "tab",
	}

	steps := []struct {
		drop     string
		strategy entity.Strategy
		selector string
	}{
		{"", entity.StrategyID, "#all"},
		{"id", entity.StrategyTestID, `[data-testid="all-tid"]`},
		{"data-testid", entity.StrategyName, `button[name="all-name"]`},
		{"name", entity.StrategyRole, `role=tab[name="Click me"]`},
		{"role", entity.StrategyRole, `role=button[name="Click me"]`},
	}

	for _, step := range steps {
		if step.drop != "" {
			delete(attrs, step.drop)
		}

		match, ok := Classify(el("button", "Click me", attrs))
		if !ok {
			t.Fatalf("after dropping %q: no match", step.drop)
		}
		if match.Strategy != step.strategy || match.Selector != step.selector {
			t.Errorf("after dropping %q: got (%s, %s), want (%s, %s)",
				step.drop, match.Strategy, match.Selector, step.strategy, step.selector)
		}
	}
}

func TestClassifyCutoffBoundary(t *testing.T) {
	// 29 characters pass, 30 do not. Applies to both the text strategy
	// and role-derived labels.
	text29 := strings.Repeat("a", 29)
	text30 := strings.Repeat("a", 30)

	match, ok := Classify(el("span", text29, nil))
	if !ok || match.Strategy != entity.StrategyText {
		t.Fatalf("29-char text: got (%v, %v), want text match", match, ok)
	}

	if match, ok := Classify(el("span", text30, nil)); ok {
		t.Errorf("30-char text: got %+v, want no match", match)
	}

	match, ok = Classify(el("button", text29, nil))
	if !ok || match.Selector != `role=button[name="`+text29+`"]` {
		t.Fatalf("29-char label: got %q, want name filter", match.Selector)
	}

	match, ok = Classify(el("button", text30, nil))
	if !ok || match.Selector != "role=button" {
		t.Fatalf("30-char label: got %q, want bare role", match.Selector)
	}
}

func TestClassifyRoleNeverFallsThroughToText(t *testing.T) {
	// A role-bearing element with an oversized label stays on the role
	// strategy even though its text would be rejected there too.
	match, ok := Classify(el("a", strings.Repeat("long ", 10), nil))
	if !ok {
		t.Fatal("expected a role match")
	}
	if match.Strategy != entity.StrategyRole || match.Selector != "role=link" {
		t.Errorf("got (%s, %s), want bare role=link", match.Strategy, match.Selector)
	}
}

func TestImplicitRoles(t *testing.T) {
	tests := []struct {
		tag  string
		typ  string
		role string
	}{
		{"a", "", "link"},
		{"button", "", "button"},
		{"select", "", "combobox"},
		{"option", "", "option"},
		{"input", "checkbox", "checkbox"},
		{"input", "radio", "radio"},
		{"input", "submit", "button"},
		{"input", "button", "button"},
		{"input", "text", "textbox"},
		{"input", "", "textbox"},
		{"div", "", ""},
		{"span", "", ""},
	}

	for _, tt := range tests {
		attrs := map[string]string{}
		if tt.typ != "" {
			attrs["type"] = tt.typ
		}

		got := elementRole(el(tt.tag, "", attrs))
		if got != tt.role {
			t.Errorf("elementRole(%s[type=%s]) = %q, want %q", tt.tag, tt.typ, got, tt.role)
		}
	}
}

func TestExplicitRoleOverridesImplicit(t *testing.T) {
	got := elementRole(el("button", "", map[string]string{"role": "switch"}))
	if got != "switch" {
		t.Errorf("elementRole = %q, want switch", got)
	}
}

func TestCollapseNewlines(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Sign\nin", "Sign in"},
		{"Sign\n\n\nin", "Sign in"},
		{"Sign \n in", "Sign in"},
		{"Sign\r\nin", "Sign in"},
		{"no newlines here", "no newlines here"},
		{"", ""},
	}

	for _, tt := range tests {
		got := CollapseNewlines(tt.in)
		if got != tt.want {
			t.Errorf("CollapseNewlines(%q) = %q, want %q", tt.in, got, tt.want)
		}

		// Idempotency: renormalizing is a no-op.
		if again := CollapseNewlines(got); again != got {
			t.Errorf("CollapseNewlines not idempotent: %q -> %q", got, again)
		}
	}
}

func TestClassifyNormalizesLabelNewlines(t *testing.T) {
	match, ok := Classify(el("button", "Add\nto\ncart", nil))
	if !ok {
		t.Fatal("expected a match")
	}
	if match.Selector != `role=button[name="Add to cart"]` {
		t.Errorf("selector = %q, want collapsed label", match.Selector)
	}
}
