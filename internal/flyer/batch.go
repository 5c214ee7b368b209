/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package flyer

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// batchSchema validates batch event files before any rendering starts, so a
// typo in entry 7 does not leave 6 half-written flyers behind.
const batchSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["events"],
  "additionalProperties": false,
  "properties": {
    "events": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["title", "description", "datetime"],
        "additionalProperties": false,
        "properties": {
          "title": {"type": "string", "minLength": 1},
          "description": {"type": "string", "minLength": 1},
          "datetime": {"type": "string", "minLength": 1},
          "type": {"type": "string"}
        }
      }
    }
  }
}`

type batchFile struct {
	Events []batchEvent `json:"events"`
}

type batchEvent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Datetime    string `json:"datetime"`
	Type        string `json:"type"`
}

// LoadBatch reads a JSON events file and returns one Request per event.
// The file is validated against the embedded schema; validation problems are
// reported together with the offending field paths.
func LoadBatch(path string) ([]Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(batchSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("validate batch file: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("invalid batch file %s: %s", path, strings.Join(msgs, "; "))
	}

	var bf batchFile
	if err := json.Unmarshal(data, &bf); err != nil {
		return nil, fmt.Errorf("decode batch file: %w", err)
	}

	reqs := make([]Request, 0, len(bf.Events))
	for _, ev := range bf.Events {
		reqs = append(reqs, Request{
			Title:       ev.Title,
			Description: ev.Description,
			Datetime:    ev.Datetime,
			EventType:   ev.Type,
			Pages:       1,
			CropMarks:   true,
		})
	}
	return reqs, nil
}
