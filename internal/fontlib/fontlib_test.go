/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package fontlib

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestTTFDownloadsAndCaches(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		_, _ = w.Write(FallbackTTF())
	}))
	defer srv.Close()

	lib := New(t.TempDir(), srv.URL)
	data, err := lib.TTF(context.Background())
	if err != nil {
		t.Fatalf("TTF error: %v", err)
	}
	if !bytes.Equal(data, FallbackTTF()) {
		t.Fatalf("downloaded bytes differ from served bytes")
	}
	if _, err := os.Stat(lib.Path()); err != nil {
		t.Fatalf("cache file missing: %v", err)
	}

	// second call must come from the cache
	if _, err := lib.TTF(context.Background()); err != nil {
		t.Fatalf("cached TTF error: %v", err)
	}
	if hits != 1 {
		t.Fatalf("server hit %d times, want 1", hits)
	}
}

func TestTTFRejectsNonFontPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>404</html>"))
	}))
	defer srv.Close()

	lib := New(t.TempDir(), srv.URL)
	if _, err := lib.TTF(context.Background()); err == nil {
		t.Fatalf("expected error for non-font payload")
	}
	if _, err := os.Stat(lib.Path()); !os.IsNotExist(err) {
		t.Fatalf("bad payload must not be cached")
	}
}

func TestTTFServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	lib := New(t.TempDir(), srv.URL)
	if _, err := lib.TTF(context.Background()); err == nil {
		t.Fatalf("expected error for 404")
	}
}

func TestTTFRefetchesCorruptCache(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, DefaultFileName), []byte("junk"), 0o644); err != nil {
		t.Fatalf("seed corrupt cache: %v", err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(FallbackTTF())
	}))
	defer srv.Close()

	lib := New(dir, srv.URL)
	data, err := lib.TTF(context.Background())
	if err != nil {
		t.Fatalf("TTF error: %v", err)
	}
	if !bytes.Equal(data, FallbackTTF()) {
		t.Fatalf("corrupt cache was not replaced")
	}
}

func TestFaceFromFallback(t *testing.T) {
	face, err := Face(FallbackTTF(), 11.5, 300)
	if err != nil {
		t.Fatalf("Face error: %v", err)
	}
	if face == nil {
		t.Fatalf("Face returned nil")
	}
	m := face.Metrics()
	if m.Height <= 0 {
		t.Fatalf("face metrics look wrong: %+v", m)
	}
}

func TestFaceRejectsGarbage(t *testing.T) {
	if _, err := Face([]byte("not a font"), 12, 72); err == nil {
		t.Fatalf("expected parse error")
	}
}
