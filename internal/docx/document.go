// Package docx reads procurement attachments in DOCX form. Only the
// WordprocessingML elements that carry table content are decoded.
package docx

import (
	"encoding/xml"
	"fmt"
	"strings"
)

type document struct {
	Body body `xml:"body"`
}

type body struct {
	Tables []table `xml:"tbl"`
}

type table struct {
	Rows []tableRow `xml:"tr"`
}

type tableRow struct {
	Cells []tableCell `xml:"tc"`
}

// tableCell holds paragraphs plus any tables nested inside the cell.
type tableCell struct {
	Paragraphs []paragraph `xml:"p"`
	Tables     []table     `xml:"tbl"`
}

type paragraph struct {
	Runs []run `xml:"r"`
}

type run struct {
	Text  []runText  `xml:"t"`
	Tab   []struct{} `xml:"tab"`
	Break []struct{} `xml:"br"`
}

type runText struct {
	Content string `xml:",chardata"`
}

// parseDocument decodes the document body. Tag names match on the
// local element name, so the w: namespace needs no special handling.
func parseDocument(data []byte) (*document, error) {
	var doc document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document.xml: %w", err)
	}
	return &doc, nil
}

// collectTables flattens the document's tables into cell matrices,
// body tables first, then tables nested inside cells.
func collectTables(doc *document) [][][]string {
	var matrices [][][]string

	queue := append([]table(nil), doc.Body.Tables...)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		matrices = append(matrices, matrixFromTable(current))
		for _, row := range current.Rows {
			for _, cell := range row.Cells {
				queue = append(queue, cell.Tables...)
			}
		}
	}

	return matrices
}

// matrixFromTable renders a table's cell text.
func matrixFromTable(t table) [][]string {
	matrix := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		cells := make([]string, 0, len(row.Cells))
		for _, cell := range row.Cells {
			cells = append(cells, cellText(cell))
		}
		matrix = append(matrix, cells)
	}
	return matrix
}

// cellText joins the cell's paragraphs with newlines.
func cellText(c tableCell) string {
	parts := make([]string, 0, len(c.Paragraphs))
	for _, p := range c.Paragraphs {
		parts = append(parts, paragraphText(p))
	}
	return strings.Join(parts, "\n")
}

func paragraphText(p paragraph) string {
	var builder strings.Builder
	for _, r := range p.Runs {
		for _, t := range r.Text {
			builder.WriteString(t.Content)
		}
		for range r.Tab {
			builder.WriteString("\t")
		}
		for range r.Break {
			builder.WriteString("\n")
		}
	}
	return strings.TrimSpace(builder.String())
}
