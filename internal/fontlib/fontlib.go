/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package fontlib fetches and caches the flyer's monospaced TTF and resolves
// font.Face values for raster rendering. The preferred face is downloaded on
// first use; when it is unavailable the embedded Go Mono is used so rendering
// works offline.
package fontlib

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	applog "github.com/flipdot/ascii-flyers/internal/log"
)

// DefaultFileName is the cache file name for the downloaded face.
const DefaultFileName = "lmmono10regular.ttf"

// Library caches one TTF file in Dir, fetching it from URL when absent.
type Library struct {
	Dir    string
	URL    string
	Client *http.Client
}

// New returns a Library caching under dir and downloading from url.
func New(dir, url string) *Library {
	return &Library{
		Dir:    dir,
		URL:    url,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Path returns the cache location of the TTF file.
func (l *Library) Path() string { return filepath.Join(l.Dir, DefaultFileName) }

// TTF returns the font bytes, downloading into the cache when missing.
// The downloaded data is parsed before it is cached, so an HTML error page
// served at the font URL never poisons the cache.
func (l *Library) TTF(ctx context.Context) ([]byte, error) {
	path := l.Path()
	if data, err := os.ReadFile(path); err == nil {
		if _, perr := truetype.Parse(data); perr == nil {
			return data, nil
		}
		applog.WithComponent("fontlib").Warn("cached font unreadable, refetching", slog.String("path", path))
	}

	data, err := l.download(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := truetype.Parse(data); err != nil {
		return nil, fmt.Errorf("downloaded font invalid: %w", err)
	}
	if err := os.MkdirAll(l.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure font dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("cache font: %w", err)
	}
	applog.WithComponent("fontlib").Info("font cached", slog.String("path", path))
	return data, nil
}

func (l *Library) download(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build font request: %w", err)
	}
	cli := l.Client
	if cli == nil {
		cli = &http.Client{Timeout: 30 * time.Second}
	}
	resp, err := cli.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch font: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch font: unexpected status %s", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read font body: %w", err)
	}
	return data, nil
}

// Face builds a font.Face from TTF bytes at the given point size and DPI.
func Face(ttf []byte, sizePt, dpi float64) (font.Face, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: sizePt, DPI: dpi}), nil
}

// FallbackTTF returns the embedded Go Mono face, used when the preferred
// font cannot be fetched.
func FallbackTTF() []byte { return gomono.TTF }
