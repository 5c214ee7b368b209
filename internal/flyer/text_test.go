/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package flyer

import (
	"errors"
	"strings"
	"testing"
)

func TestParseWhenAcceptsCommonFormats(t *testing.T) {
	cases := []string{
		"2026-09-12T19:30:00Z",
		"2026-09-12 19:30",
		"2026-09-12",
		"12.09.2026 19:30",
		"12.09.2026, 19:30",
		"12.09.2026",
		"Sep 12 2026 19:30",
		"12 Sep 2026 19:30",
	}
	for _, in := range cases {
		when, err := ParseWhen(in)
		if err != nil {
			t.Fatalf("ParseWhen(%q) error: %v", in, err)
		}
		if when.Year() != 2026 || int(when.Month()) != 9 || when.Day() != 12 {
			t.Fatalf("ParseWhen(%q) = %v, wrong date", in, when)
		}
	}
}

func TestParseWhenRejectsGarbage(t *testing.T) {
	if _, err := ParseWhen("next full moon"); err == nil {
		t.Fatalf("expected error for unparsable input")
	}
}

func TestFrontTextFillsTemplate(t *testing.T) {
	req := Request{Title: "Lockpicking 101", Datetime: "2026-09-12 19:30", EventType: "CTF", Pages: 1}
	lines, err := FrontText(req)
	if err != nil {
		t.Fatalf("FrontText error: %v", err)
	}
	if len(lines) != MaxLines {
		t.Fatalf("front has %d lines, want %d", len(lines), MaxLines)
	}
	if !strings.Contains(lines[0], "Einladung zu CTF") {
		t.Fatalf("event type missing from line 0: %q", lines[0])
	}
	if !strings.Contains(lines[2], "Lockpicking 101") {
		t.Fatalf("title missing from line 2: %q", lines[2])
	}
	if !strings.Contains(lines[4], "12.09.2026, 19:30") {
		t.Fatalf("reformatted date missing from line 4: %q", lines[4])
	}
	if !strings.Contains(lines[5], "flipdot.org") {
		t.Fatalf("footer missing: %q", lines[5])
	}
}

func TestFrontTextDefaultsEventType(t *testing.T) {
	req := Request{Title: "t", Datetime: "2026-09-12", Pages: 1}
	lines, err := FrontText(req)
	if err != nil {
		t.Fatalf("FrontText error: %v", err)
	}
	if !strings.Contains(lines[0], "Einladung zu Workshop") {
		t.Fatalf("default event type not applied: %q", lines[0])
	}
}

func TestFrontTextBadDate(t *testing.T) {
	req := Request{Title: "t", Datetime: "whenever", Pages: 1}
	if _, err := FrontText(req); err == nil {
		t.Fatalf("expected error for bad datetime")
	}
}

func TestBackTextCentresShortText(t *testing.T) {
	lines, err := BackText("bring your own lock")
	if err != nil {
		t.Fatalf("BackText error: %v", err)
	}
	if len(lines) != MaxLines {
		t.Fatalf("got %d lines, want %d", len(lines), MaxLines)
	}
	// one content line padded to six: blanks go below first, then above
	if lines[2] != "bring your own lock" {
		t.Fatalf("content not centred, lines = %q", lines)
	}
	for i, l := range lines {
		if i != 2 && l != "" {
			t.Fatalf("line %d should be blank, got %q", i, l)
		}
	}
}

func TestBackTextSplitsEscapedNewlines(t *testing.T) {
	lines, err := BackText(`first\nsecond`)
	if err != nil {
		t.Fatalf("BackText error: %v", err)
	}
	joined := strings.Join(lines, "|")
	if !strings.Contains(joined, "first|second") {
		t.Fatalf("escaped newline not honored: %q", lines)
	}
}

func TestBackTextHardWrapsLongLines(t *testing.T) {
	long := strings.Repeat("x", MaxCols+5)
	lines, err := BackText(long)
	if err != nil {
		t.Fatalf("BackText error: %v", err)
	}
	var content []string
	for _, l := range lines {
		if l != "" {
			content = append(content, l)
		}
	}
	if len(content) != 2 {
		t.Fatalf("expected 2 wrapped lines, got %q", content)
	}
	if len([]rune(content[0])) != MaxCols || len([]rune(content[1])) != 5 {
		t.Fatalf("wrap lengths wrong: %d and %d", len(content[0]), len(content[1]))
	}
}

func TestBackTextRejectsOverflow(t *testing.T) {
	long := strings.Repeat(strings.Repeat("y", MaxCols)+"\n", MaxLines+1)
	_, err := BackText(strings.TrimSuffix(long, "\n"))
	if err == nil {
		t.Fatalf("expected overflow error")
	}
	if !errors.Is(err, ErrTooManyLines) {
		t.Fatalf("error is not ErrTooManyLines: %v", err)
	}
}

func TestBackTextExactlySixLines(t *testing.T) {
	in := "a\nb\nc\nd\ne\nf"
	lines, err := BackText(in)
	if err != nil {
		t.Fatalf("BackText error: %v", err)
	}
	if got := strings.Join(lines, ""); got != "abcdef" {
		t.Fatalf("six full lines should be untouched, got %q", lines)
	}
}
