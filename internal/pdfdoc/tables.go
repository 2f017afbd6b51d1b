package pdfdoc

import (
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Table detection constants
const (
	// rowTolerance is the vertical distance within which glyphs belong
	// to the same line.
	rowTolerance = 5.0

	// cellGap is the horizontal gap that separates two cells on a line.
	cellGap = 12.0

	// wordGap is the horizontal gap that separates two words in a cell.
	wordGap = 2.0

	// columnSnap is the distance within which cell starts on different
	// lines count as the same column.
	columnSnap = 6.0

	minTableRows = 2
	minTableCols = 2
)

// textCell is a run of glyphs separated from its neighbours by a
// column-sized gap.
type textCell struct {
	x    float64
	text string
}

// textLine is one visual line of the page, split into cells.
type textLine struct {
	y     float64
	cells []textCell
}

// tablesFromTexts reconstructs tables from the positioned text of one
// page. Consecutive lines holding two or more cells form a block; each
// block with enough rows and aligned columns becomes one table.
func tablesFromTexts(texts []pdf.Text) [][][]string {
	lines := groupTextsByLine(texts)

	var tables [][][]string
	var block []textLine
	flush := func() {
		if table := tableFromBlock(block); table != nil {
			tables = append(tables, table)
		}
		block = nil
	}

	for _, line := range lines {
		if len(line.cells) >= minTableCols {
			block = append(block, line)
			continue
		}
		flush()
	}
	flush()

	return tables
}

// groupTextsByLine clusters glyphs by Y coordinate, top of the page
// first, and splits every line into cells.
func groupTextsByLine(texts []pdf.Text) []textLine {
	if len(texts) == 0 {
		return nil
	}

	sorted := make([]pdf.Text, len(texts))
	copy(sorted, texts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Y > sorted[j].Y
	})

	var lines []textLine
	group := []pdf.Text{sorted[0]}
	currentY := sorted[0].Y

	for i := 1; i < len(sorted); i++ {
		if math.Abs(sorted[i].Y-currentY) <= rowTolerance {
			// Same line
			group = append(group, sorted[i])
			continue
		}
		lines = append(lines, lineFromGroup(group))
		group = []pdf.Text{sorted[i]}
		currentY = sorted[i].Y
	}
	lines = append(lines, lineFromGroup(group))

	return lines
}

// lineFromGroup orders the glyphs of one line left to right and joins
// them into cells, inserting spaces at word-sized gaps and starting a
// new cell at column-sized gaps.
func lineFromGroup(group []pdf.Text) textLine {
	sort.SliceStable(group, func(i, j int) bool {
		return group[i].X < group[j].X
	})

	line := textLine{y: group[0].Y}
	var builder strings.Builder
	start := group[0].X
	end := group[0].X + group[0].W
	builder.WriteString(group[0].S)

	appendCell := func() {
		if text := strings.TrimSpace(builder.String()); text != "" {
			line.cells = append(line.cells, textCell{x: start, text: text})
		}
		builder.Reset()
	}

	for i := 1; i < len(group); i++ {
		gap := group[i].X - end
		switch {
		case gap > cellGap:
			appendCell()
			start = group[i].X
		case gap > wordGap:
			builder.WriteString(" ")
		}
		builder.WriteString(group[i].S)
		end = group[i].X + group[i].W
	}
	appendCell()

	return line
}

// tableFromBlock turns a block of consecutive multi-cell lines into a
// cell matrix. Returns nil when the block is too small to be a table.
func tableFromBlock(block []textLine) [][]string {
	if len(block) < minTableRows {
		return nil
	}

	starts := columnStarts(block)
	if len(starts) < minTableCols {
		return nil
	}

	table := make([][]string, 0, len(block))
	for _, line := range block {
		row := make([]string, len(starts))
		for _, cell := range line.cells {
			idx := columnIndex(starts, cell.x)
			if row[idx] != "" {
				row[idx] += " "
			}
			row[idx] += cell.text
		}
		table = append(table, row)
	}

	return table
}

// columnStarts derives the column positions of a block: the cell start
// positions that align, within columnSnap, across at least half of the
// block's lines.
func columnStarts(block []textLine) []float64 {
	var xs []float64
	for _, line := range block {
		for _, cell := range line.cells {
			xs = append(xs, cell.x)
		}
	}
	sort.Float64s(xs)

	minLines := (len(block) + 1) / 2
	var starts []float64
	for i := 0; i < len(xs); {
		j := i
		for j < len(xs) && xs[j]-xs[i] <= columnSnap {
			j++
		}
		if j-i >= minLines {
			starts = append(starts, xs[i])
		}
		i = j
	}

	return starts
}

// columnIndex maps a cell start position to the rightmost column that
// begins at or before it.
func columnIndex(starts []float64, x float64) int {
	idx := 0
	for i, start := range starts {
		if start <= x+columnSnap {
			idx = i
		}
	}
	return idx
}
