// Command export runs every test case and writes the resulting dab
// sequences to JSON, for comparison with other implementations.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/brush"
	"seehuhn.de/go/brush/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/dabs.json")
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

type jsonTestCase struct {
	Name    string       `json:"name"`
	Width   int          `json:"width"`
	Height  int          `json:"height"`
	Seed    uint64       `json:"seed"`
	Samples []jsonSample `json:"samples"`
	Dabs    []jsonDab    `json:"dabs"`
}

type jsonSample struct {
	Pos      [2]float64 `json:"pos"`
	Pressure float64    `json:"pressure"`
	Tilt     [2]float64 `json:"tilt"`
	Rotation float64    `json:"rotation"`
	Velocity [2]float64 `json:"velocity"`
	Time     uint64     `json:"time"`
}

type jsonDab struct {
	Pos      [2]float64 `json:"pos"`
	Size     float64    `json:"size"`
	Opacity  float64    `json:"opacity"`
	Rotation float64    `json:"rotation"`
	Hardness float64    `json:"hardness"`
	Flow     float64    `json:"flow"`
	Scatter  float64    `json:"scatter,omitempty"`
	Color    [3]float64 `json:"color"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Seed:   tc.Seed,
	}
	for _, s := range tc.Samples {
		jtc.Samples = append(jtc.Samples, jsonSample{
			Pos:      [2]float64{s.Pos.X, s.Pos.Y},
			Pressure: s.Pressure,
			Tilt:     [2]float64{s.TiltX, s.TiltY},
			Rotation: s.Rotation,
			Velocity: [2]float64{s.Velocity.X, s.Velocity.Y},
			Time:     s.Time,
		})
	}
	for _, d := range testcases.Run(tc) {
		jtc.Dabs = append(jtc.Dabs, dabToJSON(d))
	}
	return jtc
}

func dabToJSON(d brush.Dab) jsonDab {
	return jsonDab{
		Pos:      [2]float64{d.Pos.X, d.Pos.Y},
		Size:     d.Size,
		Opacity:  d.Opacity,
		Rotation: d.Rotation,
		Hardness: d.Hardness,
		Flow:     d.Flow,
		Scatter:  d.Scatter,
		Color:    [3]float64{d.Color.R, d.Color.G, d.Color.B},
	}
}
