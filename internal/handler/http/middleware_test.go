// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/voice-dashboard/internal/logger"
)

// ─────────────────────────────────────────────
// withTraceID
// ─────────────────────────────────────────────

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name         string
		header       string
		wantReused   bool
		wantNewUUIDs bool
	}{
		{name: "reuses client trace id", header: "my-custom-trace-id", wantReused: true},
		{name: "generates when missing", header: "", wantNewUUIDs: true},
		{name: "replaces oversized id", header: strings.Repeat("x", maxTraceIDLength+1), wantNewUUIDs: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.FromRequest(r).Info().Msg("inside")
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(traceIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rec, req)

			got := rec.Header().Get(traceIDHeader)
			if tt.wantReused {
				assert.Equal(t, tt.header, got)
			}
			if tt.wantNewUUIDs {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
			assert.Contains(t, buf.String(), `"trace_id":"`+got+`"`)
		})
	}
}

// ─────────────────────────────────────────────
// withLogging
// ─────────────────────────────────────────────

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		status       int
		body         string
		wantLog      []string
		wantNoOutput bool
	}{
		{
			name:    "success",
			path:    "/api/calls?limit=5",
			status:  http.StatusOK,
			body:    `{"ok":1}`,
			wantLog: []string{`"level":"info"`, `"uri":"/api/calls?limit=5"`, `"method":"GET"`, `"status":200`, `"size":8`, `"duration":`},
		},
		{
			name:    "server error logged as error",
			path:    "/api/costs",
			status:  http.StatusInternalServerError,
			wantLog: []string{`"level":"error"`, `"status":500`},
		},
		{
			name:         "probe not logged",
			path:         "/healthz",
			status:       http.StatusOK,
			wantNoOutput: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))
			h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

			if tt.wantNoOutput {
				assert.Empty(t, buf.String())
				return
			}
			for _, want := range tt.wantLog {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWithLogging_NoStatusWrittenLogs200(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))
	h.withLogging(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"status":200`)
}

// ─────────────────────────────────────────────
// responseWriter
// ─────────────────────────────────────────────

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	assert.Equal(t, http.StatusOK, w.statusCode())

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusTeapot)
	n1, _ := w.Write([]byte("abc"))
	n2, _ := w.Write([]byte("de"))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, http.StatusCreated, w.statusCode())
	assert.Equal(t, 5, w.size)
	assert.Equal(t, 5, n1+n2)
	assert.Equal(t, "abcde", rec.Body.String())
	assert.Same(t, rec, w.Unwrap())
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.Write([]byte("x"))

	assert.Equal(t, http.StatusOK, w.status)
	assert.True(t, w.wroteHeader)
}

// ─────────────────────────────────────────────
// withGZip
// ─────────────────────────────────────────────

func gunzip(t *testing.T, data []byte) string {
	t.Helper()
	r, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestWithGZip_Response(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		acceptEncoding string
		wantGzip       bool
	}{
		{name: "gzip accepted", method: http.MethodGet, acceptEncoding: "gzip", wantGzip: true},
		{name: "gzip among others", method: http.MethodGet, acceptEncoding: "deflate, gzip;q=1.0, br", wantGzip: true},
		{name: "not accepted", method: http.MethodGet, acceptEncoding: "", wantGzip: false},
		{name: "head request", method: http.MethodHead, acceptEncoding: "gzip", wantGzip: false},
	}

	payload := strings.Repeat(`{"phone_number":"+919876543210"}`, 50)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				io.WriteString(w, payload)
			})

			req := httptest.NewRequest(tt.method, "/api/calls", nil)
			req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			rec := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			if tt.wantGzip {
				assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
				assert.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))
				assert.Equal(t, payload, gunzip(t, rec.Body.Bytes()))
				assert.Less(t, rec.Body.Len(), len(payload))
			} else {
				assert.Empty(t, rec.Header().Get("Content-Encoding"))
				if tt.method != http.MethodHead {
					assert.Equal(t, payload, rec.Body.String())
				}
			}
		})
	}
}

func TestWithGZip_KeepsStatusCode(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"success":false}`)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, `{"success":false}`, gunzip(t, rec.Body.Bytes()))
}

func TestWithGZip_RequestBody(t *testing.T) {
	var compressed bytes.Buffer
	gz := gzip.NewWriter(&compressed)
	io.WriteString(gz, `{"name":"Asha"}`)
	require.NoError(t, gz.Close())

	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, r.Body.Close())
		got = string(b)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/contacts", &compressed)
	req.Header.Set("Content-Encoding", "gzip")
	withGZip(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, `{"name":"Asha"}`, got)
}

func TestWithGZip_InvalidRequestBody(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodPost, "/api/contacts", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWrappedReadCloser_Close(t *testing.T) {
	closed := false
	rc := &wrappedReadCloser{Reader: strings.NewReader(""), onClose: func() { closed = true }}

	assert.NoError(t, rc.Close())
	assert.True(t, closed)
	assert.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("")}).Close())
}

// ─────────────────────────────────────────────
// rateLimiter
// ─────────────────────────────────────────────

func TestRateLimiter_RefillsOverTime(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	rl := newRateLimiter(1, 1)
	rl.now = func() time.Time { return now }

	ok, _ := rl.allow("a")
	assert.True(t, ok)

	ok, retry := rl.allow("a")
	assert.False(t, ok)
	assert.Equal(t, time.Second, retry)

	now = now.Add(time.Second)
	ok, _ = rl.allow("a")
	assert.True(t, ok)
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	rl := newRateLimiter(1, 1)
	rl.now = func() time.Time { return now }

	rl.allow("a")
	now = now.Add(limiterIdleTTL + time.Minute)
	rl.allow("b")

	assert.NotContains(t, rl.clients, "a")
	assert.Contains(t, rl.clients, "b")
}

func TestClientKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	req.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1", clientKey(req))

	req.RemoteAddr = "[2001:db8::1]:443"
	assert.Equal(t, "2001:db8::1", clientKey(req))

	req.RemoteAddr = "unix"
	assert.Equal(t, "unix", clientKey(req))
}
