package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Garsondee/Order-Sketch/internal/mapdata"
	"github.com/Garsondee/Order-Sketch/internal/orders"
	"github.com/Garsondee/Order-Sketch/internal/svg"
)

func TestFiles_WritesBoth(t *testing.T) {
	board := mapdata.Demo()
	doc := svg.New(board.Render.Layer)
	s := orders.NewSession(board, doc)
	s.Click(orders.ButtonPrimary, "lon")
	s.Click(orders.ButtonPrimary, "wal")

	dir := filepath.Join(t.TempDir(), "out")
	paths, err := Files(dir, board, doc, s.Panel)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if paths.SVG != filepath.Join(dir, SVGName) || paths.PNG != filepath.Join(dir, PNGName) {
		t.Fatalf("unexpected paths %+v", paths)
	}

	data, err := os.ReadFile(paths.SVG)
	if err != nil {
		t.Fatalf("read svg: %v", err)
	}
	if !strings.Contains(string(data), "lon -&gt; wal") {
		t.Fatalf("expected panel line in svg, got:\n%s", data)
	}
	info, err := os.Stat(paths.PNG)
	if err != nil {
		t.Fatalf("stat png: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("expected non-empty png")
	}
}

func TestSVG_BadPath(t *testing.T) {
	board := mapdata.Demo()
	doc := svg.New(board.Render.Layer)
	path := filepath.Join(t.TempDir(), "missing", "orders.svg")
	if err := SVG(path, board, doc, nil); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
