// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/H0llyW00dzZ/certlist2pem/src/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyWriter fails its first failures writes and then behaves like a bytes.Buffer.
type flakyWriter struct {
	failures int
	buf      bytes.Buffer
}

func (w *flakyWriter) Write(p []byte) (int, error) {
	if w.failures > 0 {
		w.failures--
		return 0, errors.New("disk full")
	}
	return w.buf.Write(p)
}

func TestCLILogger(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Printf",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewCLILogger()
				log.SetOutput(&buf)

				log.Printf("decoded %d certificate(s)", 2)

				assert.Equal(t, "decoded 2 certificate(s)\n", buf.String(), "expected plain line without timestamp")
			},
		},
		{
			name: "Println",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewCLILogger()
				log.SetOutput(&buf)

				log.Println("test", "message")

				assert.Contains(t, buf.String(), "test message", "expected output to contain 'test message'")
			},
		},
		{
			name: "SetOutput",
			testFunc: func(t *testing.T) {
				var buf1, buf2 bytes.Buffer
				log := logger.NewCLILogger()

				log.SetOutput(&buf1)
				log.Println("first")

				log.SetOutput(&buf2)
				log.Println("second")

				assert.Contains(t, buf1.String(), "first", "expected buf1 to contain 'first'")
				assert.Contains(t, buf2.String(), "second", "expected buf2 to contain 'second'")
				assert.NotContains(t, buf1.String(), "second", "buf1 should not contain 'second'")
			},
		},
		{
			name: "ConcurrentUsage",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewCLILogger()
				log.SetOutput(&buf)

				const numGoroutines = 50
				const messagesPerGoroutine = 10

				var wg sync.WaitGroup
				wg.Add(numGoroutines)

				for i := range numGoroutines {
					go func(id int) {
						defer wg.Done()
						for j := range messagesPerGoroutine {
							log.Printf("goroutine %d message %d", id, j)
						}
					}(i)
				}

				wg.Wait()

				lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
				assert.Len(t, lines, numGoroutines*messagesPerGoroutine)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}

func TestJSONLogger(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Silent",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, true)

				log.Printf("test message: %s", "hello")
				log.Println("another message")

				assert.Equal(t, 0, buf.Len(), "expected no output in silent mode")
			},
		},
		{
			name: "Printf_JSON",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, false)

				log.Printf("ignoring %d trailing byte(s)", 3)

				var entry map[string]any
				require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "failed to parse JSON output")

				assert.Equal(t, "info", entry["level"])
				assert.Equal(t, "ignoring 3 trailing byte(s)", entry["message"])
				assert.True(t, strings.HasSuffix(buf.String(), "\n"), "entries are newline terminated")
			},
		},
		{
			name: "Println_JSON",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, false)

				log.Println("test message")

				var entry map[string]any
				require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "failed to parse JSON output")
				assert.Equal(t, "test message", entry["message"])
			},
		},
		{
			name: "SetOutput_Nil",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, false)

				log.Println("before")

				log.SetOutput(nil)
				log.Println("after")

				output := buf.String()
				assert.Contains(t, output, "before", "expected 'before' in output")
				assert.NotContains(t, output, "after", "should not contain 'after' after setting nil output")
			},
		},
		{
			name: "NilWriter",
			testFunc: func(t *testing.T) {
				log := logger.NewJSONLogger(nil, false)

				assert.NotPanics(t, func() {
					log.Printf("test")
					log.Println("test")
				})
			},
		},
		{
			name: "WriterError",
			testFunc: func(t *testing.T) {
				w := &flakyWriter{failures: 1}
				log := logger.NewJSONLogger(w, false)

				assert.NotPanics(t, func() { log.Println("dropped") })
				log.Println("kept")

				var entry map[string]any
				require.NoError(t, json.Unmarshal(w.buf.Bytes(), &entry), "failed to parse JSON output")
				assert.Equal(t, "kept", entry["message"])
				assert.NotContains(t, w.buf.String(), "dropped", "failed entry must not leak into the next write")
			},
		},
		{
			name: "JSONEscaping_SpecialChars",
			testFunc: func(t *testing.T) {
				inputs := []string{`test"quote`, `test\backslash`, "test\nnewline", "<html>&"}

				for _, input := range inputs {
					var buf bytes.Buffer
					log := logger.NewJSONLogger(&buf, false)
					log.Println(input)

					var entry map[string]any
					require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "input %q", input)
					assert.Equal(t, input, entry["message"])
				}
			},
		},
		{
			name: "ConcurrentUsage",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, false)

				const numGoroutines = 50

				var wg sync.WaitGroup
				wg.Add(numGoroutines)
				for i := range numGoroutines {
					go func(id int) {
						defer wg.Done()
						log.Printf("goroutine %d", id)
					}(i)
				}
				wg.Wait()

				lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
				require.Len(t, lines, numGoroutines)
				for i, line := range lines {
					var entry map[string]any
					assert.NoError(t, json.Unmarshal([]byte(line), &entry), "line %d: failed to parse JSON", i+1)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}
