/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package export renders flyer sheets. The print path writes a multi-page A4
// PDF with a 2x9 grid of invitations (alternating front and back pages); the
// preview path rasterizes a single grid cell to PNG.
package export

// Sheet geometry, in points. One A4 page carries GridCols x GridRows
// invitation cells; each cell holds six lines of 11.5 pt monospaced text.
const (
	cmPt = 72.0 / 2.54 // points per centimetre

	PageWidth  = 595.28 // A4 portrait
	PageHeight = 841.89

	GridCols = 2
	GridRows = 9

	FontSizePt = 11.5

	borderH = 0.5 * cmPt
	borderV = 0.5 * cmPt

	// crop marks sit slightly outside the cell corners; the padding is pulled
	// back towards the page on the outer edges so marks stay printable
	paddingH = -0.1 * cmPt
	paddingV = -0.1 * cmPt

	cropMarkLen = 2 * cmPt
	hairline    = 0.1
)

// CellWidth is the width of one invitation cell in points.
const CellWidth = PageWidth / GridCols

// CellHeight is the height of one invitation cell in points.
const CellHeight = PageHeight / GridRows

// rgb is a plain 8-bit colour triple; the flyers are intentionally
// monochrome except for the preview tint.
type rgb struct{ r, g, b int }

var (
	colorBlack  = rgb{0, 0, 0}
	colorWhite  = rgb{255, 255, 255}
	colorYellow = rgb{242, 179, 0} // flipdot yellow
)

// cellBaselines returns the baseline y offsets (from the cell top) for n
// lines anchored to the cell bottom with the vertical border, matching the
// original layout where line spacing equals the font size.
func cellBaselines(n int) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = CellHeight - borderV - float64(n-1-i)*FontSizePt
	}
	return out
}

// cropMarkCenters returns the x coordinates of crop mark columns and the y
// coordinates of crop mark rows across the full page grid.
func cropMarkCenters() (xs, ys []float64) {
	for i := 0; i <= GridCols; i++ {
		x := float64(i)*CellWidth + paddingH + float64(i)/GridCols*paddingH*-2
		xs = append(xs, x)
	}
	for j := 0; j <= GridRows; j++ {
		y := float64(j)*CellHeight + paddingV + float64(j)/GridRows*paddingV*-2
		ys = append(ys, y)
	}
	return xs, ys
}
