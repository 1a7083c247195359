package extractor

import (
	"testing"

	"pagemapper/internal/entity"
)

func TestNormalizeIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"search input", "searchInput"},
		{"Submit", "submit"},
		{"main", "main"},
		{"user-name", "userName"},
		{"SIGN_UP_BUTTON", "signUpButton"},
		{"add to cart", "addToCart"},
		{"a  b c", "aBC"},
		{"data.test.id", "dataTestId"},
		{"item 2", "item2"},
	}

	for _, tt := range tests {
		got := NormalizeIdentifier(tt.in)
		if got != tt.want {
			t.Errorf("NormalizeIdentifier(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNamerCollisionSuffixing(t *testing.T) {
	po := entity.NewPageObject()
	n := NewNamer(po)

	button := el("button", "Submit", nil)

	first := n.Record(entity.Match{Strategy: entity.StrategyRole, Selector: "sel-a", KeyBase: "Submit"}, button, 0)
	second := n.Record(entity.Match{Strategy: entity.StrategyRole, Selector: "sel-b", KeyBase: "Submit"}, button, 1)
	third := n.Record(entity.Match{Strategy: entity.StrategyRole, Selector: "sel-c", KeyBase: "submit"}, button, 2)

	if first != "submit" || second != "submit1" || third != "submit2" {
		t.Fatalf("keys = %q, %q, %q, want submit, submit1, submit2", first, second, third)
	}

	// Each key still points at its own element's selector.
	for key, want := range map[string]string{"submit": "sel-a", "submit1": "sel-b", "submit2": "sel-c"} {
		if got, _ := po.Get(key); got != want {
			t.Errorf("po[%s] = %q, want %q", key, got, want)
		}
	}
}

func TestNamerFallbackKey(t *testing.T) {
	po := entity.NewPageObject()
	n := NewNamer(po)

	key := n.Record(entity.Match{Strategy: entity.StrategyRole, Selector: "role=button", KeyBase: ""}, el("BUTTON", "", nil), 7)
	if key != "button7" {
		t.Errorf("fallback key = %q, want button7", key)
	}
}

func TestNamerInjectivity(t *testing.T) {
	po := entity.NewPageObject()
	n := NewNamer(po)

	records := 25
	for i := 0; i < records; i++ {
		// Every record shares the same key base; suffixing must keep
		// one entry per element with nothing overwritten.
		n.Record(entity.Match{Strategy: entity.StrategyID, Selector: "#dup", KeyBase: "dup"}, el("div", "", nil), i)
	}

	if po.Len() != records {
		t.Fatalf("page object has %d keys, want %d", po.Len(), records)
	}
}

func TestNamerInsertionOrder(t *testing.T) {
	po := entity.NewPageObject()
	n := NewNamer(po)

	n.Record(entity.Match{Selector: "#b", KeyBase: "beta"}, el("div", "", nil), 0)
	n.Record(entity.Match{Selector: "#a", KeyBase: "alpha"}, el("div", "", nil), 1)

	keys := po.Keys()
	if len(keys) != 2 || keys[0] != "beta" || keys[1] != "alpha" {
		t.Errorf("keys = %v, want [beta alpha]", keys)
	}
}
