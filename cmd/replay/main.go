package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Garsondee/Order-Sketch/internal/export"
	"github.com/Garsondee/Order-Sketch/internal/mapdata"
	"github.com/Garsondee/Order-Sketch/internal/orders"
	"github.com/Garsondee/Order-Sketch/internal/raster"
	"github.com/Garsondee/Order-Sketch/internal/svg"
)

type script struct {
	Clicks []scriptClick `yaml:"clicks"`
}

type scriptClick struct {
	Button   string `yaml:"button"`
	Province string `yaml:"province"`
}

type replayStats struct {
	handled int
	ignored int
	session *orders.Session
	doc     *svg.Document
}

func main() {
	var mapPath string
	var scriptPath string
	var svgPath string
	var pngPath string

	flag.StringVar(&mapPath, "map", "", "map table YAML (default: embedded demo board)")
	flag.StringVar(&scriptPath, "script", "", "click script YAML")
	flag.StringVar(&svgPath, "svg", "", "write the final sketch as SVG to this path")
	flag.StringVar(&pngPath, "png", "", "write the final sketch as PNG to this path")
	flag.Parse()

	if scriptPath == "" {
		fmt.Println("error: -script is required")
		return
	}

	board := mapdata.Demo()
	if mapPath != "" {
		b, err := mapdata.Load(mapPath)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
		board = b
	}
	sc, err := loadScript(scriptPath)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("=== Order Replay ===\n")
	fmt.Printf("provinces=%d clicks=%d\n\n", len(board.Provinces), len(sc.Clicks))

	stats, err := replay(board, sc, os.Stdout)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	printStats(os.Stdout, stats)

	if svgPath != "" {
		if err := export.SVG(svgPath, board, stats.doc, stats.session.Panel); err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
		fmt.Printf("wrote %s\n", svgPath)
	}
	if pngPath != "" {
		opts := raster.Options{Lines: stats.session.Panel.Lines()}
		if err := raster.Save(pngPath, board, stats.doc.Primitives(), opts); err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
		fmt.Printf("wrote %s\n", pngPath)
	}
}

func loadScript(path string) (script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return script{}, fmt.Errorf("failed to read script: %w", err)
	}
	return parseScript(data)
}

func parseScript(data []byte) (script, error) {
	var sc script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return script{}, fmt.Errorf("failed to parse script: %w", err)
	}
	return sc, nil
}

// parseButton accepts the names used in scripts. Unrecognised names are
// errors, not unknown buttons; use "middle" to send one.
func parseButton(name string) (orders.Button, error) {
	switch name {
	case "primary", "left":
		return orders.ButtonPrimary, nil
	case "secondary", "right":
		return orders.ButtonSecondary, nil
	case "middle", "auxiliary":
		return orders.ButtonAuxiliary, nil
	default:
		return 0, fmt.Errorf("unknown button name %q", name)
	}
}

// replay feeds every click through a fresh session. Each click and any
// anomaly the session logs is echoed to out.
func replay(board *mapdata.Map, sc script, out io.Writer) (replayStats, error) {
	doc := svg.New(board.Render.Layer)
	logger := log.New(out, "  log: ", 0)
	s := orders.NewSession(board, doc, orders.WithLogger(logger))
	stats := replayStats{session: s, doc: doc}

	for i, c := range sc.Clicks {
		button, err := parseButton(c.Button)
		if err != nil {
			return replayStats{}, fmt.Errorf("click %d: %w", i+1, err)
		}
		handled := s.Click(button, c.Province)
		if handled {
			stats.handled++
		} else {
			stats.ignored++
		}
		primary, _ := s.Machine.Pending()
		fmt.Fprintf(out, "%3d %-9s %-8s handled=%-5v next=%q\n", i+1, button, c.Province, handled, primary.Step.String())
	}
	return stats, nil
}

func printStats(out io.Writer, stats replayStats) {
	fmt.Fprintf(out, "\nhandled=%d ignored=%d orders=%d elements=%d\n\n",
		stats.handled, stats.ignored, stats.session.Store.Len(), stats.doc.Len())
	fmt.Fprintln(out, "--- orders ---")
	fmt.Fprint(out, stats.session.Panel.String())
}
