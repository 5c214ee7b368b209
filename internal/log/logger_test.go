/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestLineHandlerWritesOneLine(t *testing.T) {
	var buf bytes.Buffer
	h := &lineHandler{level: slog.LevelDebug, w: &buf}
	l := slog.New(h)
	l.Info("render done", slog.String("out", "x.pdf"), slog.Int("pages", 2))
	s := buf.String()
	if !strings.Contains(s, "INF") {
		t.Fatalf("level marker missing: %q", s)
	}
	if !strings.Contains(s, "render done") {
		t.Fatalf("message missing: %q", s)
	}
	if !strings.Contains(s, "out=x.pdf") || !strings.Contains(s, "pages=2") {
		t.Fatalf("attrs missing: %q", s)
	}
	if strings.Count(s, "\n") != 1 {
		t.Fatalf("expected a single line, got %q", s)
	}
}

func TestLineHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	h := &lineHandler{level: slog.LevelWarn, w: &buf}
	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatalf("debug should be suppressed at warn level")
	}
	slog.New(h).Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug record was written: %q", buf.String())
	}
}

func TestLineHandlerGroupsPrefixKeys(t *testing.T) {
	var buf bytes.Buffer
	var h slog.Handler = &lineHandler{level: slog.LevelDebug, w: &buf}
	h = h.WithGroup("font").WithAttrs([]slog.Attr{slog.String("file", "mono.ttf")})
	_ = h.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "loaded", 0))
	if !strings.Contains(buf.String(), "font.file=mono.ttf") {
		t.Fatalf("grouped attr missing: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInitSetsDefaultLogger(t *testing.T) {
	Init(Options{Level: "debug", Format: "console"})
	if L() == nil {
		t.Fatalf("default logger is nil after Init")
	}
	if WithComponent("export") == nil {
		t.Fatalf("WithComponent returned nil")
	}
}
