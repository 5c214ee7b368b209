/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package flyer

import (
	"fmt"
	"strings"
	"time"
)

// Text box limits of one flyer cell in the monospaced face.
const (
	MaxCols  = 40
	MaxLines = 6
)

// DateFormat is how the event date is printed on the flyer.
const DateFormat = "02.01.2006, 15:04"

// ErrTooManyLines is returned when a description does not fit the back of a
// flyer after wrapping.
var ErrTooManyLines = fmt.Errorf("description does not fit %d columns x %d lines", MaxCols, MaxLines)

// frontLines is the fixed front of every invitation. The three %s verbs take
// the event type, the title and the reformatted date, in that order.
var frontLines = []string{
	"  .-==-,     .-==-,     Einladung zu %s",
	",\"     \\_  ,\"     \\_",
	"|  flip  | |  dot   |     %s",
	"`.      ,' `.      ,'",
	"  `\"--\"'     `\"--\"'     %s",
	"   ccc erfa kassel      flipdot.org",
}

// whenLayouts are tried in order by ParseWhen. Covers the formats people
// actually paste from calendars, chat and the wiki.
var whenLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02.01.2006 15:04",
	"02.01.2006, 15:04",
	"02.01.2006",
	"02.01.06 15:04",
	"02/01/2006 15:04",
	"Jan 2 2006 15:04",
	"Jan 2, 2006 15:04",
	"January 2, 2006 15:04",
	"2 Jan 2006 15:04",
	"2. January 2006 15:04",
}

// ParseWhen parses a user-supplied event date/time, accepting a range of
// common formats.
func ParseWhen(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range whenLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date/time %q", s)
}

// FrontText renders the six front lines for req. The datetime is re-parsed
// and printed in DateFormat regardless of the input format.
func FrontText(req Request) ([]string, error) {
	when, err := ParseWhen(req.Datetime)
	if err != nil {
		return nil, err
	}
	lines := make([]string, len(frontLines))
	copy(lines, frontLines)
	lines[0] = fmt.Sprintf(frontLines[0], req.Type())
	lines[2] = fmt.Sprintf(frontLines[2], req.Title)
	lines[4] = fmt.Sprintf(frontLines[4], when.Format(DateFormat))
	return lines, nil
}

// BackText wraps the description into at most MaxLines lines of MaxCols
// columns and centres it vertically by padding empty lines alternating
// bottom, then top. Both literal newlines and the two-character escape "\n"
// break lines. Returns ErrTooManyLines when the text does not fit.
func BackText(description string) ([]string, error) {
	normalized := strings.ReplaceAll(description, `\n`, "\n")
	var lines []string
	for _, raw := range strings.Split(normalized, "\n") {
		lines = append(lines, chunk(raw, MaxCols)...)
	}
	if len(lines) > MaxLines {
		return nil, fmt.Errorf("%w (got %d lines)", ErrTooManyLines, len(lines))
	}
	for len(lines) < MaxLines {
		if len(lines)%2 == 1 {
			lines = append(lines, "")
		} else {
			lines = append([]string{""}, lines...)
		}
	}
	return lines, nil
}

// chunk hard-wraps s into rune slices of at most width columns.
func chunk(s string, width int) []string {
	r := []rune(s)
	if len(r) <= width {
		return []string{s}
	}
	var out []string
	for len(r) > width {
		out = append(out, string(r[:width]))
		r = r[width:]
	}
	return append(out, string(r))
}
