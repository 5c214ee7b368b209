/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package crash

import (
	"os"
	"strings"
	"testing"
)

func TestWriteReportCreatesFile(t *testing.T) {
	path, err := writeReport("boom", []byte("stacktrace"))
	if err != nil {
		t.Fatalf("writeReport error: %v", err)
	}
	t.Cleanup(func() { _ = os.Remove(path) })
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, "ASCII Flyers Crash Report") {
		t.Fatalf("report header missing")
	}
	if !strings.Contains(s, "Panic: boom") {
		t.Fatalf("panic content missing: %s", s)
	}
	if !strings.Contains(s, "stacktrace") {
		t.Fatalf("stack missing: %s", s)
	}
}

func TestRecoverExitsNonZero(t *testing.T) {
	oldExit := exitFn
	var code int
	exitFn = func(c int) { code = c }
	t.Cleanup(func() { exitFn = oldExit })

	func() {
		defer Recover()
		panic("kaboom")
	}()

	if code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}
}

func TestRecoverNoPanicIsNoop(t *testing.T) {
	oldExit := exitFn
	called := false
	exitFn = func(int) { called = true }
	t.Cleanup(func() { exitFn = oldExit })

	func() {
		defer Recover()
	}()

	if called {
		t.Fatalf("exit called without a panic")
	}
}
