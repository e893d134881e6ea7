package main

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/template"

	"github.com/plus3/tetrimino/tetromino"
)

// Report collects the shape table and a frequency sample for rendering.
type Report struct {
	// Configuration
	Randomizer string
	Seed       uint64
	Tolerance  float64

	// Results
	Kinds   []KindRow
	Samples int
}

// KindRow is one line of the shape table plus the kind's sample count.
type KindRow struct {
	Kind      tetromino.Kind
	Color     tetromino.Color
	Rotations [4]tetromino.Shape
	Count     int
}

// Frequency returns the share of samples that drew this kind.
func (k KindRow) Frequency(total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(k.Count) / float64(total)
}

// NewReport builds the shape table for every kind with no samples yet.
func NewReport(randomizer string, seed uint64, tolerance float64) *Report {
	r := &Report{
		Randomizer: randomizer,
		Seed:       seed,
		Tolerance:  tolerance,
		Kinds:      make([]KindRow, 0, tetromino.KindCount),
	}
	for _, kind := range tetromino.Kinds {
		row := KindRow{Kind: kind, Color: kind.Color()}
		for rotation := range row.Rotations {
			row.Rotations[rotation] = kind.Shape(rotation)
		}
		r.Kinds = append(r.Kinds, row)
	}
	return r
}

// Sample draws n kinds from source and adds them to the counts.
func (r *Report) Sample(source tetromino.Randomizer, n int) {
	for range n {
		r.Kinds[source.Next()].Count++
	}
	r.Samples += n
}

// Outliers returns the kinds whose frequency is further than Tolerance from
// the uniform expectation.
func (r *Report) Outliers() []tetromino.Kind {
	if r.Samples == 0 {
		return nil
	}
	var out []tetromino.Kind
	for _, row := range r.Kinds {
		if r.deviation(row) > r.Tolerance {
			out = append(out, row.Kind)
		}
	}
	return out
}

func (r *Report) deviation(row KindRow) float64 {
	return math.Abs(row.Frequency(r.Samples) - 1.0/tetromino.KindCount)
}

// Generate renders the report as markdown to w.
func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tetromino Shape Report

## Shape Table
{{range .Kinds}}
### {{.Kind}} (rgba {{printf "%.2f %.2f %.2f %.2f" .Color.R .Color.G .Color.B .Color.A}})
{{grids .Rotations}}
{{end}}
{{- if .Samples}}
## Distribution
- **Randomizer:** {{.Randomizer}}
- **Seed:** {{.Seed}}
- **Samples:** {{.Samples}}
- **Expected frequency:** {{printf "%.4f" expected}}

| Kind | Count | Frequency | Deviation |
|------|-------|-----------|-----------|
{{- range .Kinds}}
| {{.Kind}} | {{.Count}} | {{printf "%.4f" (.Frequency $.Samples)}} | {{deviation .}}{{if outlier .}} !{{end}} |
{{- end}}
{{end}}`

	fm := template.FuncMap{
		"grids":     renderGrids,
		"expected":  func() float64 { return 1.0 / tetromino.KindCount },
		"deviation": func(row KindRow) string { return fmt.Sprintf("%+.4f", row.Frequency(r.Samples)-1.0/tetromino.KindCount) },
		"outlier":   func(row KindRow) bool { return r.deviation(row) > r.Tolerance },
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}

// renderGrids lays the four rotations side by side under their hex masks.
func renderGrids(rotations [4]tetromino.Shape) string {
	const column = "%-8s"

	var b strings.Builder
	b.WriteString("```\n")

	var header strings.Builder
	for _, shape := range rotations {
		fmt.Fprintf(&header, column, fmt.Sprintf("0x%04x", uint16(shape)))
	}
	b.WriteString(strings.TrimRight(header.String(), " "))
	b.WriteString("\n")

	var grids [4][]string
	for i, shape := range rotations {
		grids[i] = strings.Split(shape.String(), "\n")
	}
	for row := range tetromino.BoxSize {
		var line strings.Builder
		for i := range rotations {
			fmt.Fprintf(&line, column, grids[i][row])
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteString("\n")
	}

	b.WriteString("```")
	return b.String()
}
