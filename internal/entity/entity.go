package entity

import (
	"time"

	"github.com/google/uuid"
)

// Strategy identifies which rule of the classification cascade
// produced a selector.
type Strategy string

const (
	StrategyID     Strategy = "id"
	StrategyTestID Strategy = "testId"
	StrategyName   Strategy = "name"
	StrategyRole   Strategy = "role"
	StrategyText   Strategy = "text"
)

// Strategies lists all strategies in cascade priority order.
var Strategies = []Strategy{
	StrategyID,
	StrategyTestID,
	StrategyName,
	StrategyRole,
	StrategyText,
}

// Element is a read-only snapshot of one DOM element, as marshalled
// back from the in-page traversal. The extractor never touches the
// live document.
type Element struct {
	Tag        string
	Text       string
	Attributes map[string]string
}

// Attr returns the named attribute or "" when absent. Empty values
// are indistinguishable from missing ones on purpose: the cascade
// treats them the same.
func (e Element) Attr(name string) string {
	return e.Attributes[name]
}

// Match is the classifier's verdict for one element: the winning
// strategy, the selector it built, and the raw key base the namer
// derives a page-object identifier from.
type Match struct {
	Strategy Strategy
	Selector string
	KeyBase  string
}

// Extraction is the full result of one page inspection.
type Extraction struct {
	RunID      uuid.UUID   `json:"-"`
	URL        string      `json:"-"`
	IDs        []string    `json:"ids"`
	TestIDs    []string    `json:"testIds"`
	Names      []string    `json:"names"`
	Roles      []string    `json:"roles"`
	Text       []string    `json:"text"`
	All        []string    `json:"all"`
	PageObject *PageObject `json:"pageObject"`
	Screenshot string      `json:"-"`
	Timestamp  time.Time   `json:"-"`
}

// NewEmptyExtraction returns the well-formed zero result: every
// sequence present and empty, the page object present and empty.
// This is what callers receive when an open browser session fails.
func NewEmptyExtraction(url string) *Extraction {
	return &Extraction{
		RunID:      uuid.New(),
		URL:        url,
		IDs:        []string{},
		TestIDs:    []string{},
		Names:      []string{},
		Roles:      []string{},
		Text:       []string{},
		All:        []string{},
		PageObject: NewPageObject(),
		Timestamp:  time.Now(),
	}
}

// Bucket returns the sequence for the given strategy.
func (e *Extraction) Bucket(s Strategy) []string {
	switch s {
	case StrategyID:
		return e.IDs
	case StrategyTestID:
		return e.TestIDs
	case StrategyName:
		return e.Names
	case StrategyRole:
		return e.Roles
	case StrategyText:
		return e.Text
	}

	return nil
}
