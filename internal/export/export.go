// Package export writes the current order sketch to disk and the clipboard.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"

	"github.com/Garsondee/Order-Sketch/internal/mapdata"
	"github.com/Garsondee/Order-Sketch/internal/orders"
	"github.com/Garsondee/Order-Sketch/internal/raster"
	"github.com/Garsondee/Order-Sketch/internal/svg"
)

const (
	SVGName = "orders.svg"
	PNGName = "orders.png"
)

// Paths lists the files written by Files.
type Paths struct {
	SVG string
	PNG string
}

// Files writes orders.svg and orders.png into dir, creating it if needed.
func Files(dir string, board *mapdata.Map, doc *svg.Document, panel *orders.Panel) (Paths, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Paths{}, fmt.Errorf("create export dir: %w", err)
	}
	paths := Paths{
		SVG: filepath.Join(dir, SVGName),
		PNG: filepath.Join(dir, PNGName),
	}
	if err := SVG(paths.SVG, board, doc, panel); err != nil {
		return Paths{}, err
	}
	if err := raster.Save(paths.PNG, board, doc.Primitives(), raster.Options{Lines: panel.Lines()}); err != nil {
		return Paths{}, err
	}
	return paths, nil
}

// SVG writes the document to path.
func SVG(path string, board *mapdata.Map, doc *svg.Document, panel *orders.Panel) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create svg: %w", err)
	}
	if err := doc.Encode(f, board, panel); err != nil {
		f.Close()
		return fmt.Errorf("encode svg: %w", err)
	}
	return f.Close()
}

// Copy puts the order text panel on the system clipboard.
func Copy(panel *orders.Panel) error {
	if err := clipboard.WriteAll(panel.String()); err != nil {
		return fmt.Errorf("copy orders: %w", err)
	}
	return nil
}
