// Package svg keeps order glyphs as SVG elements on a named layer and writes
// the layer, the province markers and the order text panel as one document.
package svg

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Garsondee/Order-Sketch/internal/mapdata"
	"github.com/Garsondee/Order-Sketch/internal/orders"
)

// Document is an orders.Layer backed by an ordered list of SVG elements.
type Document struct {
	LayerID string

	next  orders.ElementID
	ids   []orders.ElementID
	elems map[orders.ElementID]orders.Primitive
}

// New creates an empty document whose order layer has the given id.
func New(layerID string) *Document {
	return &Document{
		LayerID: layerID,
		elems:   make(map[orders.ElementID]orders.Primitive),
	}
}

// Append adds p at the top of the layer.
func (d *Document) Append(p orders.Primitive) orders.ElementID {
	d.next++
	d.ids = append(d.ids, d.next)
	d.elems[d.next] = p
	return d.next
}

// Remove deletes an element. Unknown ids are ignored.
func (d *Document) Remove(id orders.ElementID) {
	if _, ok := d.elems[id]; !ok {
		return
	}
	delete(d.elems, id)
	for i, v := range d.ids {
		if v == id {
			d.ids = append(d.ids[:i], d.ids[i+1:]...)
			break
		}
	}
}

// Len returns the number of live elements.
func (d *Document) Len() int { return len(d.ids) }

// Primitives returns the live elements bottom to top.
func (d *Document) Primitives() []orders.Primitive {
	out := make([]orders.Primitive, 0, len(d.ids))
	for _, id := range d.ids {
		out = append(out, d.elems[id])
	}
	return out
}

// Margin is the padding around the province bounding box.
const Margin = 40.0

// Encode writes a standalone SVG with the province markers, the order layer
// and, when panel is non-nil, the order text panel.
func (d *Document) Encode(w io.Writer, board *mapdata.Map, panel *orders.Panel) error {
	bw := bufio.NewWriter(w)
	lo, hi := board.Bounds()
	width := hi.X - lo.X + 2*Margin
	height := hi.Y - lo.Y + 2*Margin

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" width="%s" height="%s">`+"\n",
		num(lo.X-Margin), num(lo.Y-Margin), num(width), num(height), num(width), num(height))
	bw.WriteString(markerDefs)

	bw.WriteString(`<g id="provinces">` + "\n")
	for _, name := range board.Names() {
		p := board.Provinces[name]
		fill := "none"
		if p.Unit != mapdata.UnitNone {
			fill = "#666"
		}
		fmt.Fprintf(bw, `<circle cx="%s" cy="%s" r="%s" fill="%s" stroke="#999"/>`+"\n",
			num(p.X), num(p.Y), num(board.Render.UnitRadius*0.6), fill)
		fmt.Fprintf(bw, `<text x="%s" y="%s" font-size="10" fill="#444">%s</text>`+"\n",
			num(p.X+board.Render.UnitRadius), num(p.Y-board.Render.UnitRadius), escape(name))
	}
	bw.WriteString("</g>\n")

	fmt.Fprintf(bw, `<g id="%s">`+"\n", escape(d.LayerID))
	for _, p := range d.Primitives() {
		bw.WriteString(Element(p))
		bw.WriteByte('\n')
	}
	bw.WriteString("</g>\n")

	if panel != nil {
		fmt.Fprintf(bw, `<text id="order_output_textbox" x="%s" y="%s" font-size="12">`+"\n",
			num(panel.Template.X), num(panel.Template.Y))
		for _, s := range panel.Spans {
			fmt.Fprintf(bw, `<tspan x="%s" dy="%s">%s</tspan>`+"\n", num(s.X), s.DY, escape(s.Text))
		}
		bw.WriteString("</text>\n")
	}
	bw.WriteString("</svg>\n")
	return bw.Flush()
}

const markerDefs = `<defs>
<marker id="arrow" viewBox="0 0 3 3" refX="1.5" refY="1.5" markerWidth="3" markerHeight="3" orient="auto-start-reverse"><path d="M 0,0 L 3,1.5 L 0,3 z"/></marker>
<marker id="ball" viewBox="0 0 3 3" refX="1.5" refY="1.5" markerWidth="3" markerHeight="3"><circle cx="1.5" cy="1.5" r="1.5"/></marker>
</defs>
`

// Element serializes one primitive.
func Element(p orders.Primitive) string {
	var b strings.Builder
	switch p.Shape {
	case orders.ShapeCircle:
		fmt.Fprintf(&b, `<circle cx="%s" cy="%s" r="%s"`, num(p.Center.X), num(p.Center.Y), num(p.Radius))
	case orders.ShapeSquare:
		fmt.Fprintf(&b, `<rect x="%s" y="%s" width="%s" height="%s" transform="rotate(%s %s %s)"`,
			num(p.Center.X-p.Radius), num(p.Center.Y-p.Radius), num(2*p.Radius), num(2*p.Radius),
			num(p.Rotate), num(p.Center.X), num(p.Center.Y))
	case orders.ShapeLine:
		fmt.Fprintf(&b, `<path d="M %s %s L %s %s"`, num(p.Start.X), num(p.Start.Y), num(p.End.X), num(p.End.Y))
	case orders.ShapeQuad:
		fmt.Fprintf(&b, `<path d="M %s,%s Q %s,%s %s,%s"`,
			num(p.Start.X), num(p.Start.Y), num(p.Control.X), num(p.Control.Y), num(p.End.X), num(p.End.Y))
	}
	fmt.Fprintf(&b, ` fill="none" stroke="black" stroke-width="%s"`, num(p.StrokeWidth))
	if p.Dash > 0 {
		fmt.Fprintf(&b, ` stroke-dasharray="%s %s"`, num(p.Dash), num(p.Dash))
	}
	if p.RoundCap {
		b.WriteString(` stroke-linecap="round"`)
	}
	if p.MarkerStart != orders.MarkerNone {
		fmt.Fprintf(&b, ` marker-start="url(#%s)"`, p.MarkerStart)
	}
	if p.MarkerEnd != orders.MarkerNone {
		fmt.Fprintf(&b, ` marker-end="url(#%s)"`, p.MarkerEnd)
	}
	b.WriteString(` shape-rendering="geometricPrecision"/>`)
	return b.String()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
