package orders

import (
	"log"
	"strings"
)

// LineSpacing is the vertical advance of each panel line.
const LineSpacing = "1.2em"

// TextBox is the template element the panel host provides. Every line is
// aligned to its X.
type TextBox struct {
	X float64
	Y float64
}

// Span is one rendered panel line.
type Span struct {
	X    float64
	DY   string
	Text string
}

// Panel is the order text panel: the template box followed by one span per
// stored order.
type Panel struct {
	Template TextBox
	Spans    []Span
	logger   *log.Logger
}

// NewPanel creates an empty panel anchored at template.
func NewPanel(template TextBox, logger *log.Logger) *Panel {
	if logger == nil {
		logger = log.Default()
	}
	return &Panel{Template: template, logger: logger}
}

// Rerender drops every span and serializes orders again. Orders of an
// unknown kind are logged and skipped.
func (p *Panel) Rerender(orders []Order) {
	p.Spans = p.Spans[:0]
	for _, o := range orders {
		line, ok := o.Line()
		if !ok {
			p.logger.Printf("orders: unknown order kind %s for %s", o.Kind, o.Origin)
			continue
		}
		p.Spans = append(p.Spans, Span{X: p.Template.X, DY: LineSpacing, Text: line})
	}
}

// Lines returns the text of every span.
func (p *Panel) Lines() []string {
	lines := make([]string, len(p.Spans))
	for i, s := range p.Spans {
		lines[i] = s.Text
	}
	return lines
}

// String joins the panel lines, one order per line.
func (p *Panel) String() string {
	if len(p.Spans) == 0 {
		return ""
	}
	return strings.Join(p.Lines(), "\n") + "\n"
}
