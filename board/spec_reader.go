package board

import (
	"fmt"
	"strings"
)

// Warning is a non-fatal spec-reader diagnostic: spec.md §7 treats every
// reader failure as "warn and replace with a space", never fatal.
type Warning struct {
	Row, Col int
	Message  string
}

// ReadSpec turns spec text into a rectangular [z][y][x] rune grid, per
// spec.md §4.1. It never fails outright: invalid characters and misplaced
// comment markers are reported as Warnings and replaced with spaces.
func ReadSpec(text string) ([][]([]rune), []Warning) {
	text = stripShebang(text)

	runes := []rune(text)
	var warnings []Warning
	blockComment := false
	layerComment := false
	row, col := 1, 1

	for i, c := range runes {
		switch {
		case c == '\n':
			layerComment = false
		case blockComment && c == ';':
			blockComment = false
			runes[i] = ' '
		case c == '=' && (i == 0 || runes[i-1] == '\n'):
			layerComment = true
		case !layerComment && c == ':':
			blockComment = true
			runes[i] = ' '
		case blockComment || layerComment:
			runes[i] = ' '
		default:
			msg := ""
			switch {
			case c == '=':
				msg = "'=' must only be found at the beginning of a line, or in a comment"
			case c == ';':
				msg = "';' must only be used to terminate a block comment, or found within a layer comment"
			case !IsValidLexeme(c):
				msg = fmt.Sprintf("%q is not a valid character", c)
			}
			if msg != "" {
				warnings = append(warnings, Warning{Row: row, Col: col, Message: msg})
				runes[i] = ' '
			}
		}

		if c == '\n' {
			row++
			col = 1
		} else {
			col++
		}
	}

	lines := strings.Split(string(runes), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t")
	}
	lines = trimLayerAdjacentBlanks(lines)
	if len(lines) > 0 && lines[0] == "=" {
		lines = lines[1:]
	}

	layers := splitLayers(lines)
	for i, layer := range layers {
		layers[i] = trimLayerBlanks(layer)
	}

	return rectangularize(layers), warnings
}

func stripShebang(text string) string {
	if !strings.HasPrefix(text, "#!") {
		return text
	}
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		return text[idx+1:]
	}
	return ""
}

// trimLayerAdjacentBlanks drops blank lines that sit immediately before a
// "=" separator line or at the very end of the spec (spec.md §4.1.5:
// "trailing blank lines are trimmed"), scanning from the end backward so
// a run of blanks collapses in one pass.
func trimLayerAdjacentBlanks(lines []string) []string {
	keep := make([]bool, len(lines))
	layerTail := true
	for i := len(lines) - 1; i >= 0; i-- {
		switch lines[i] {
		case "":
			keep[i] = !layerTail
		case "=":
			keep[i] = true
			layerTail = true
		default:
			keep[i] = true
			layerTail = false
		}
	}
	out := lines[:0:0]
	for i, l := range lines {
		if keep[i] {
			out = append(out, l)
		}
	}
	return out
}

func splitLayers(lines []string) [][]string {
	var layers [][]string
	var cur []string
	for _, l := range lines {
		if l == "=" {
			layers = append(layers, cur)
			cur = nil
			continue
		}
		cur = append(cur, l)
	}
	return append(layers, cur)
}

// trimLayerBlanks drops one optional leading blank line and all trailing
// blank lines within a single layer.
func trimLayerBlanks(layer []string) []string {
	if len(layer) > 0 && layer[0] == "" {
		layer = layer[1:]
	}
	for len(layer) > 0 && layer[len(layer)-1] == "" {
		layer = layer[:len(layer)-1]
	}
	return layer
}

// rectangularize pads every layer to the maximum height and width with
// spaces, so every layer ends up h x w per spec.md §3.
func rectangularize(layers [][]string) [][][]rune {
	maxH, maxW := 0, 0
	for _, layer := range layers {
		if len(layer) > maxH {
			maxH = len(layer)
		}
		for _, l := range layer {
			if n := len([]rune(l)); n > maxW {
				maxW = n
			}
		}
	}

	grid := make([][][]rune, len(layers))
	for z, layer := range layers {
		cells := make([][]rune, maxH)
		for y := 0; y < maxH; y++ {
			row := make([]rune, maxW)
			for x := range row {
				row[x] = ' '
			}
			if y < len(layer) {
				copy(row, []rune(layer[y]))
			}
			cells[y] = row
		}
		grid[z] = cells
	}
	return grid
}
