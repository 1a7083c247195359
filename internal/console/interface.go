package console

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"pagemapper/internal/config"
	"pagemapper/internal/entity"
	"pagemapper/pkg/apperr"
	"pagemapper/pkg/logg"
)

const usageText = `Usage: pagemapper <url>

Inspects the page at <url> and prints prioritized selectors for every
element, grouped by strategy (id, testId, name, role, text), together
with a generated page-object map. A full-page screenshot is written to
the working directory.
`

// Interface renders extraction results to the terminal.
type Interface struct {
	config *config.Config
	logger *zap.Logger
	color  Colorizer
	out    io.Writer
	errOut io.Writer
}

type Params struct {
	fx.In

	Config *config.Config
	Logger *zap.Logger
}

func NewInterface(params Params) *Interface {
	return &Interface{
		config: params.Config,
		logger: params.Logger.With(zap.String(logg.Layer, "Console")),
		color:  NewColorizer(params.Config.OutputConfig.Color),
		out:    os.Stdout,
		errOut: os.Stderr,
	}
}

// PrintUsage writes the usage message. Exposed at package level so
// main can report a missing argument before any wiring happens.
func PrintUsage(w io.Writer) {
	fmt.Fprint(w, usageText)
}

// PrintExtraction renders the grouped result in the configured format.
func (i *Interface) PrintExtraction(res *entity.Extraction) error {
	if i.config.OutputConfig.Format == "json" {
		return i.printJSON(res)
	}

	i.printText(res)

	return nil
}

// PrintError reports a hard failure, with a remediation hint when the
// browser collaborator itself is unavailable.
func (i *Interface) PrintError(err error) {
	fmt.Fprintf(i.errOut, "Error: %v\n", err)

	if apperr.Code(err) == apperr.CodeUnavailable {
		fmt.Fprintln(i.errOut, "Hint: the Playwright browser driver could not be started. Check network access and that the browser bundle can be downloaded.")
	}
}

func (i *Interface) printJSON(res *entity.Extraction) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal extraction: %w", err)
	}

	fmt.Fprintln(i.out, string(data))

	return nil
}

func (i *Interface) printText(res *entity.Extraction) {
	fmt.Fprintf(i.out, "\n%s\n", i.color.Heading("Selectors for "+res.URL))

	i.printBucket("ids", res.IDs)
	i.printBucket("testIds", res.TestIDs)
	i.printBucket("names", res.Names)
	i.printBucket("roles", res.Roles)
	i.printBucket("text", res.Text)
	i.printBucket("all", res.All)

	fmt.Fprintf(i.out, "\n%s\n", i.color.Heading(fmt.Sprintf("pageObject (%d)", res.PageObject.Len())))

	keyWidth := 0
	for _, key := range res.PageObject.Keys() {
		if len(key) > keyWidth {
			keyWidth = len(key)
		}
	}

	for _, key := range res.PageObject.Keys() {
		selector, _ := res.PageObject.Get(key)
		// Pad before coloring, otherwise escape codes skew the width.
		padding := strings.Repeat(" ", keyWidth-len(key))
		fmt.Fprintf(i.out, "  %s%s %s %s\n",
			i.color.Key(key), padding,
			i.color.Muted("=>"),
			i.color.Selector(selector))
	}

	if res.Screenshot != "" {
		fmt.Fprintf(i.out, "\n%s %s\n", i.color.Muted("Screenshot:"), res.Screenshot)
	}
}

func (i *Interface) printBucket(name string, selectors []string) {
	fmt.Fprintf(i.out, "\n%s\n", i.color.Heading(fmt.Sprintf("%s (%d)", name, len(selectors))))

	for _, s := range selectors {
		fmt.Fprintf(i.out, "  %s\n", i.color.Selector(s))
	}
}
