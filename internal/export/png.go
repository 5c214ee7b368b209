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
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/flipdot/ascii-flyers/internal/flyer"
	"github.com/flipdot/ascii-flyers/internal/fontlib"
	applog "github.com/flipdot/ascii-flyers/internal/log"
)

// PNGOptions controls preview output.
type PNGOptions struct {
	DPI     int       // raster resolution; default 300
	FontTTF []byte    // face source; embedded Go Mono when empty
	Face    font.Face // overrides FontTTF when set
}

// PreviewSize returns the pixel dimensions of a preview at the given DPI:
// one grid cell of the A4 sheet.
func PreviewSize(dpi int) (w, h int) {
	scale := float64(dpi) / 72.0
	return int(math.Round(CellWidth * scale)), int(math.Round(CellHeight * scale))
}

// WritePreviewPNG rasterizes the front of a single invitation cell to
// outPath, in flipdot yellow on black. Crop marks are never drawn on
// previews.
func WritePreviewPNG(req flyer.Request, outPath string, opt PNGOptions) error {
	lines, err := flyer.FrontText(req)
	if err != nil {
		return err
	}

	dpi := opt.DPI
	if dpi <= 0 {
		dpi = 300
	}
	scale := float64(dpi) / 72.0
	pixW, pixH := PreviewSize(dpi)

	face := opt.Face
	if face == nil {
		ttf := opt.FontTTF
		if len(ttf) == 0 {
			ttf = fontlib.FallbackTTF()
		}
		face, err = fontlib.Face(ttf, FontSizePt, float64(dpi))
		if err != nil {
			return err
		}
	}

	dc := gg.NewContext(pixW, pixH)
	dc.SetRGB255(colorBlack.r, colorBlack.g, colorBlack.b)
	dc.Clear()
	dc.SetRGB255(colorYellow.r, colorYellow.g, colorYellow.b)
	dc.SetFontFace(face)

	baselines := cellBaselines(len(lines))
	for i, line := range lines {
		dc.DrawString(line, borderH*scale, baselines[i]*scale)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	if err := dc.SavePNG(outPath); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	applog.WithComponent("export").Debug("preview png written",
		slog.String("path", outPath), slog.Int("w", pixW), slog.Int("h", pixH))
	return nil
}
