// CLAUDE:SUMMARY Extracts ordered paragraphs and tables from one slide's DrawingML payload via an encoding/xml token walk.
package deckpipe

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// The XML decoder already resolves standard entities and numeric character
// references to literal runes, so the en-dash and em-dash come through as
// themselves. The non-breaking hyphen has no plain-text form and is mapped
// to an ordinary hyphen.
var dashReplacer = strings.NewReplacer("‑", "-")

// parseSlide turns one slide's raw markup into a Slide. Element names are
// matched on their local part: <a:p> paragraphs, <a:r>/<a:t> text runs,
// <a:tbl>/<a:tr>/<a:tc> tables. Paragraphs inside table cells belong to
// the cell, not to the slide's paragraph list. Malformed fragments yield
// empty strings or rows; only a decoder failure on the payload itself is
// an error.
func parseSlide(index int, raw []byte) (Slide, error) {
	dec := xml.NewDecoder(bytes.NewReader(raw))

	slide := Slide{Index: index, ByteSize: len(raw)}

	var (
		inText   bool
		textBuf  strings.Builder
		inPara   bool
		paraBuf  strings.Builder
		curTable Table
		inRow    bool
		curRow   []string
		inCell   bool
		cellRuns []string
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Slide{}, fmt.Errorf("parse slide %d markup: %w", index, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				curTable = Table{}
			case "tr":
				if curTable != nil {
					inRow = true
					curRow = []string{}
				}
			case "tc":
				if inRow {
					inCell = true
					cellRuns = nil
				}
			case "p":
				if !inCell {
					inPara = true
					paraBuf.Reset()
				}
			case "t":
				inText = true
				textBuf.Reset()
			}

		case xml.CharData:
			if inText {
				textBuf.Write(t)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
				run := textBuf.String()
				switch {
				case inCell:
					cellRuns = append(cellRuns, run)
				case inPara:
					paraBuf.WriteString(run)
				}
			case "p":
				if !inCell && inPara {
					inPara = false
					text := strings.TrimSpace(dashReplacer.Replace(paraBuf.String()))
					if text != "" {
						slide.Paragraphs = append(slide.Paragraphs, text)
					}
				}
			case "tc":
				if inCell {
					inCell = false
					curRow = append(curRow, joinCellRuns(cellRuns))
				}
			case "tr":
				if inRow {
					inRow = false
					curTable = append(curTable, curRow)
					curRow = nil
				}
			case "tbl":
				if curTable != nil {
					slide.Tables = append(slide.Tables, curTable)
					curTable = nil
				}
			}
		}
	}

	return slide, nil
}

// joinCellRuns concatenates a cell's text runs with single spaces. A cell
// with no runs is an empty string, never absent.
func joinCellRuns(runs []string) string {
	parts := make([]string, 0, len(runs))
	for _, r := range runs {
		r = strings.TrimSpace(dashReplacer.Replace(r))
		if r != "" {
			parts = append(parts, r)
		}
	}
	return strings.Join(parts, " ")
}
