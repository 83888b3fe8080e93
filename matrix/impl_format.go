// SPDX-License-Identifier: MIT

// Package matrix - text rendering for diagnostics and display sinks.
//
// Two renderings are provided:
//   - String: "[a, b]\n" per row with %g values (logs, test failures).
//   - Render: right-aligned fixed-precision columns; the column width is the
//     longer of the formatted minimum and maximum cell, rows end with "\n".
//
// Framing, named alignments and terminal geometry belong to the display
// layer, not to this package.
package matrix

import (
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtColGap   = " "
)

// String provides a readable row-wise dump for diagnostics.
// Complexity: O(r*c).
func (g *grid) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < g.dim.m; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * g.dim.n
		for j = 0; j < g.dim.n; j++ {
			b.WriteString(strconv.FormatFloat(g.data[base+j], 'g', -1, 64))
			if j+1 < g.dim.n {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Render formats the cells as right-aligned columns with precision fractional digits.
// Implementation:
//   - Stage 1: find min and max cell; width = max(len(fmt(min)), len(fmt(max))).
//   - Stage 2: emit each row, cells padded on the left to width, separated by one space.
//
// Behavior highlights:
//   - Negative precision falls back to the matrix option (WithPrecision).
//   - An empty matrix renders as "".
//
// Complexity:
//   - Time O(r*c), Space O(r*c·width).
func (g *grid) Render(precision int) string {
	if precision < 0 {
		precision = g.opts.precision
	}
	if len(g.data) == 0 {
		return ""
	}

	lo, hi := g.data[0], g.data[0]
	for _, v := range g.data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	width := max(len(formatCell(lo, precision)), len(formatCell(hi, precision)))

	var b strings.Builder
	var i, j, base int
	var cell string
	for i = 0; i < g.dim.m; i++ {
		base = i * g.dim.n
		for j = 0; j < g.dim.n; j++ {
			cell = formatCell(g.data[base+j], precision)
			if pad := width - len(cell); pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
			b.WriteString(cell)
			if j+1 < g.dim.n {
				b.WriteString(_fmtColGap)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// Pretty is Render with the precision configured on the matrix.
func (g *grid) Pretty() string { return g.Render(g.opts.precision) }

// formatCell renders v in fixed notation; NaN/Inf use strconv spellings.
func formatCell(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}
