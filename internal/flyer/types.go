/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package flyer holds the invitation model and the fixed text layout of the
// flipdot event flyers: a six-line ASCII front and a wrapped, vertically
// centred description on the back.
package flyer

import (
	"errors"
	"strings"
)

// DefaultEventType is used when no event type is given.
const DefaultEventType = "Workshop"

// Request describes one flyer to render. It is populated once from CLI flags
// or a batch file entry and consumed immediately; nothing is persisted.
type Request struct {
	Title       string
	Description string
	Datetime    string
	EventType   string
	Pages       int
	Preview     bool
	CropMarks   bool
}

// Validate checks that the required fields are present. Layout constraints
// (datetime format, description length) are reported by FrontText/BackText.
func (r Request) Validate() error {
	var missing []string
	if strings.TrimSpace(r.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(r.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(r.Datetime) == "" {
		missing = append(missing, "datetime")
	}
	if len(missing) > 0 {
		return errors.New("missing required field(s): " + strings.Join(missing, ", "))
	}
	if r.Pages < 1 {
		return errors.New("pages must be at least 1")
	}
	return nil
}

// Type returns the event type, defaulted.
func (r Request) Type() string {
	if strings.TrimSpace(r.EventType) == "" {
		return DefaultEventType
	}
	return r.EventType
}
