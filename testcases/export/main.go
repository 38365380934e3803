// seehuhn.de/go/sketch - 2D path geometry for immediate-mode rasterizers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command export records the drawing calls of all scenes and writes them
// to testdata/scenes.json, for comparison with other implementations.
package main

import (
	"encoding/json"
	"log/slog"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/testcases"
)

func main() {
	sketch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))

	var out struct {
		Scenes []jsonScene `json:"scenes"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			rec := &sketch.Recorder{}
			if err := sc.Render(rec); err != nil {
				panic(err)
			}
			out.Scenes = append(out.Scenes, toJSON(category, sc, rec))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/scenes.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonScene struct {
	Name   string   `json:"name"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Ops    []jsonOp `json:"ops"`
}

type jsonOp struct {
	Op    string       `json:"op"`
	Color [4]float32   `json:"color"`
	Pts   [][2]float64 `json:"pts,omitempty"`
}

func toJSON(category string, sc testcases.Scene, rec *sketch.Recorder) jsonScene {
	js := jsonScene{
		Name:   category + "_" + sc.Name,
		Width:  sc.Width,
		Height: sc.Height,
	}
	for _, op := range rec.Ops {
		jop := jsonOp{
			Op:    op.Kind.String(),
			Color: [4]float32{op.Color.R, op.Color.G, op.Color.B, op.Color.A},
		}
		if op.Clear {
			jop.Op = "clear"
		}
		switch op.Kind {
		case sketch.PrimLine, sketch.PrimLineStrip, sketch.PrimTriangleStrip:
			for _, p := range op.Points {
				jop.Pts = append(jop.Pts, [2]float64{p.X, p.Y})
			}
		case sketch.PrimLines:
			for _, s := range op.Segments {
				jop.Pts = append(jop.Pts, [2]float64{s.A.X, s.A.Y}, [2]float64{s.B.X, s.B.Y})
			}
		case sketch.PrimFilledRect:
			jop.Pts = [][2]float64{{op.Rect.LLx, op.Rect.LLy}, {op.Rect.URx, op.Rect.URy}}
		case sketch.PrimTriangles:
			for _, t := range op.Triangles {
				jop.Pts = append(jop.Pts,
					[2]float64{t.A.X, t.A.Y}, [2]float64{t.B.X, t.B.Y}, [2]float64{t.C.X, t.C.Y})
			}
		}
		js.Ops = append(js.Ops, jop)
	}
	return js
}
