package console

// Colorizer decorates output fragments. The console never assumes a
// capable terminal: when color is disabled (or tests want raw text)
// the no-op implementation formats everything as identity.
type Colorizer interface {
	Heading(s string) string
	Selector(s string) string
	Key(s string) string
	Muted(s string) string
}

const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiDim    = "\x1b[2m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiCyan   = "\x1b[36m"
)

type ansiColorizer struct{}

func (ansiColorizer) Heading(s string) string { return ansiBold + ansiCyan + s + ansiReset }

func (ansiColorizer) Selector(s string) string { return ansiGreen + s + ansiReset }

func (ansiColorizer) Key(s string) string { return ansiYellow + s + ansiReset }

func (ansiColorizer) Muted(s string) string { return ansiDim + s + ansiReset }

type nopColorizer struct{}

func (nopColorizer) Heading(s string) string { return s }

func (nopColorizer) Selector(s string) string { return s }

func (nopColorizer) Key(s string) string { return s }

func (nopColorizer) Muted(s string) string { return s }

func NewColorizer(enabled bool) Colorizer {
	if enabled {
		return ansiColorizer{}
	}

	return nopColorizer{}
}
