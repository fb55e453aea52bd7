// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// responseData is a value snapshot of a completed response, taken so the
// request logger can report on it after the live [responseWriter] is gone.
type responseData struct {
	status int

	// size is the total number of bytes written to the response body.
	size int

	// body holds only the slice of the most recent Write call, not the
	// concatenation of all writes.
	body []byte
}

// responseWriter decorates [http.ResponseWriter] to capture the status code
// and body size for the request log, without buffering the whole response.
// WriteHeader is forwarded to the underlying writer exactly once; later
// calls are ignored, per the [http.ResponseWriter] contract.
type responseWriter struct {
	http.ResponseWriter

	// status recorded on the first WriteHeader call; zero until then.
	status int

	wroteHeader bool

	// size is the running byte total across all Write calls.
	size int

	// body is overwritten on each Write, so it holds only the latest slice.
	body []byte
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write forwards b to the underlying writer, implicitly writing a 200 header
// first when the handler never called WriteHeader, as the standard library
// does.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	w.body = b
	return n, err
}
