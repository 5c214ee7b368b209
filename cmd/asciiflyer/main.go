/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Command asciiflyer renders printable invitation flyers for hackerspace
// events: an A4 PDF with a 2x9 grid of invitations, or a single-cell PNG
// preview in flipdot yellow.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/flipdot/ascii-flyers/internal/config"
	"github.com/flipdot/ascii-flyers/internal/crash"
	"github.com/flipdot/ascii-flyers/internal/export"
	"github.com/flipdot/ascii-flyers/internal/flyer"
	"github.com/flipdot/ascii-flyers/internal/fontlib"
	applog "github.com/flipdot/ascii-flyers/internal/log"
	"github.com/flipdot/ascii-flyers/internal/version"
)

type renderFlags struct {
	title       string
	description string
	datetime    string
	eventType   string
	batch       string
	outDir      string
	pages       int
	preview     bool
	noCropMarks bool
	verbose     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f renderFlags

	root := &cobra.Command{
		Use:   "asciiflyer",
		Short: "Generate small flyers for inviting people to events at the hackerspace",
		Long: `asciiflyer lays a fixed ASCII invitation onto an A4 sheet in a 2x9 grid
(front: invitation, back: description), draws crop marks between the cells
and writes a PDF. With --preview a single invitation cell is rendered as a
PNG in flipdot yellow instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, &f)
		},
	}

	root.Flags().StringVar(&f.title, "title", "", "event's title")
	root.Flags().StringVar(&f.description, "description", "",
		fmt.Sprintf("multiline description of text (max %d cols, %d lines)", flyer.MaxCols, flyer.MaxLines))
	root.Flags().StringVar(&f.datetime, "datetime", "", "event's date and time; most formats are parsable")
	root.Flags().StringVar(&f.eventType, "type", flyer.DefaultEventType, "event's type")
	root.Flags().StringVar(&f.batch, "batch", "", "render several flyers from a JSON events file")
	root.Flags().StringVar(&f.outDir, "out", "", "output directory (default from config)")
	root.Flags().IntVar(&f.pages, "pages", 1, "number of pages")
	root.Flags().BoolVar(&f.preview, "preview", false, "render a single invitation as PNG in flipdot yellow")
	root.Flags().BoolVar(&f.noCropMarks, "no-cropmarks", false, "disable drawing crop marks")
	root.Flags().BoolVar(&f.verbose, "verbose", false, "increase verbosity of output to debugging")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(*cobra.Command, []string) {
			fmt.Println(version.String())
		},
	})

	return root
}

func run(cmd *cobra.Command, f *renderFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logOpts := applog.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.Source,
		File:      cfg.Logging.File,
	}
	if f.verbose {
		logOpts.Level = "debug"
	}
	applog.Init(logOpts)
	defer crash.Recover()
	l := applog.WithComponent("cli")

	reqs, err := collectRequests(f)
	if err != nil {
		return err
	}
	// flag parsing is done; later failures are rendering problems, not usage
	cmd.SilenceUsage = true

	outDir := f.outDir
	if outDir == "" {
		outDir = cfg.Output.Dir
	}

	fontDir, err := config.FontCacheDir(cfg)
	if err != nil {
		return err
	}
	lib := fontlib.New(fontDir, cfg.Font.URL)
	ttf, err := lib.TTF(cmd.Context())
	if err != nil {
		// render with the fallback faces rather than refusing to work offline
		l.Warn("preferred font unavailable, using fallback", slog.Any("err", err))
		ttf = nil
	}

	today := time.Now().Format("2006-01-02")
	for i, req := range reqs {
		out := outputPath(outDir, today, i, len(reqs), req.Preview)
		if req.Preview {
			err = export.WritePreviewPNG(req, out, export.PNGOptions{FontTTF: ttf})
		} else {
			err = export.WriteSheetPDF(req, out, export.PDFOptions{
				Pages:     req.Pages,
				CropMarks: req.CropMarks,
				FontTTF:   ttf,
			})
		}
		if err != nil {
			return err
		}
		l.Debug("flyer rendered", slog.String("title", req.Title), slog.String("out", out))
		fmt.Println(out)
	}
	return nil
}

// collectRequests builds the render requests from either the batch file or
// the individual flags. Missing required flags surface as usage errors.
func collectRequests(f *renderFlags) ([]flyer.Request, error) {
	if f.batch != "" {
		reqs, err := flyer.LoadBatch(f.batch)
		if err != nil {
			return nil, err
		}
		for i := range reqs {
			reqs[i].Pages = f.pages
			reqs[i].Preview = f.preview
			reqs[i].CropMarks = !f.noCropMarks
			if err := reqs[i].Validate(); err != nil {
				return nil, fmt.Errorf("batch entry %d: %w", i+1, err)
			}
		}
		return reqs, nil
	}

	var missing []string
	if strings.TrimSpace(f.title) == "" {
		missing = append(missing, "--title")
	}
	if strings.TrimSpace(f.description) == "" {
		missing = append(missing, "--description")
	}
	if strings.TrimSpace(f.datetime) == "" {
		missing = append(missing, "--datetime")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("required flag(s) %s not set", strings.Join(missing, ", "))
	}

	req := flyer.Request{
		Title:       f.title,
		Description: f.description,
		Datetime:    f.datetime,
		EventType:   f.eventType,
		Pages:       f.pages,
		Preview:     f.preview,
		CropMarks:   !f.noCropMarks,
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return []flyer.Request{req}, nil
}

// outputPath names the file like the daily flyer: <dir>/<date>-flyer.pdf,
// numbered when a batch renders more than one.
func outputPath(dir, date string, idx, total int, preview bool) string {
	name := date + "-flyer"
	if total > 1 {
		name = fmt.Sprintf("%s-flyer-%d", date, idx+1)
	}
	if preview {
		return filepath.Join(dir, name+"-preview.png")
	}
	return filepath.Join(dir, name+".pdf")
}
