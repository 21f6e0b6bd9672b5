package server

import (
	"bytes"
	"net/http"
)

// responseRecorder mirrors writes into a buffer so the audit middleware can
// log the response body after the handler has run.
type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	buffer     bytes.Buffer
}

func newResponseRecorder(w http.ResponseWriter) *responseRecorder {
	return &responseRecorder{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (w *responseRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseRecorder) Write(b []byte) (int, error) {
	w.buffer.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *responseRecorder) StatusCode() int {
	return w.statusCode
}

func (w *responseRecorder) Body() []byte {
	return w.buffer.Bytes()
}
