/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"github.com/flipdot/ascii-flyers/internal/flyer"
	applog "github.com/flipdot/ascii-flyers/internal/log"
)

// PDFFontFamily is the family name the embedded TTF is registered under.
const PDFFontFamily = "FlyerMono"

// PDFOptions controls sheet PDF output.
type PDFOptions struct {
	Pages     int    // sheets to render; each sheet is a front page and a back page
	CropMarks bool   // draw cutting guides at the grid intersections
	FontTTF   []byte // embedded into the PDF when set; core Courier otherwise
}

// WriteSheetPDF renders req as duplex A4 sheets to outPath. Front pages are
// white-on-black invitations, back pages black-on-white descriptions; each
// page repeats its cell across the full 2x9 grid. Text layout is resolved
// before the file is created, so invalid input never leaves output behind.
func WriteSheetPDF(req flyer.Request, outPath string, opt PDFOptions) error {
	front, err := flyer.FrontText(req)
	if err != nil {
		return err
	}
	back, err := flyer.BackText(req.Description)
	if err != nil {
		return err
	}
	pages := opt.Pages
	if pages < 1 {
		pages = 1
	}

	l := applog.WithComponent("export")
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetTitle(filepath.Base(outPath), true)
	pdf.SetAuthor("asciiflyer", false)

	family := "Courier"
	if len(opt.FontTTF) > 0 {
		pdf.AddUTF8FontFromBytes(PDFFontFamily, "", opt.FontTTF)
		family = PDFFontFamily
	}

	for pn := 0; pn < pages*2; pn++ {
		frontSide := pn%2 == 0
		fg, bg := colorWhite, colorBlack
		lines := front
		if !frontSide {
			fg, bg = colorBlack, colorWhite
			lines = back
		}

		pdf.AddPage()
		pdf.SetFont(family, "", FontSizePt)
		pdf.SetFillColor(bg.r, bg.g, bg.b)
		pdf.Rect(0, 0, PageWidth, PageHeight, "F")
		pdf.SetTextColor(fg.r, fg.g, fg.b)

		baselines := cellBaselines(len(lines))
		for row := 0; row < GridRows; row++ {
			for col := 0; col < GridCols; col++ {
				x := float64(col)*CellWidth + borderH
				for i, line := range lines {
					pdf.Text(x, float64(row)*CellHeight+baselines[i], line)
				}
			}
		}

		if opt.CropMarks {
			drawCropMarks(pdf, fg)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	l.Debug("sheet pdf written", slog.String("path", outPath), slog.Int("pages", pages*2))
	return nil
}

// drawCropMarks draws a hairline cross at every grid intersection.
func drawCropMarks(pdf *gofpdf.Fpdf, col rgb) {
	pdf.SetDrawColor(col.r, col.g, col.b)
	pdf.SetLineWidth(hairline)
	xs, ys := cropMarkCenters()
	for _, y := range ys {
		for _, x := range xs {
			pdf.Line(x-cropMarkLen/2, y, x+cropMarkLen/2, y)
			pdf.Line(x, y-cropMarkLen/2, x, y+cropMarkLen/2)
		}
	}
}
