package handler

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

type textResponse struct {
	status int
	body   string
}

func (t textResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(t.status)
	_, err := io.WriteString(w, t.body)
	return err
}

// Text renders a plain-text body.
func Text(status int, body string) Response {
	return textResponse{status: status, body: body}
}

type attachmentResponse struct {
	contentType string
	filename    string
	write       func(io.Writer) error
}

// Render produces the whole body before writing headers, so a failed write
// still reaches the error handler with an untouched ResponseWriter.
func (a attachmentResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	var buf bytes.Buffer
	if err := a.write(&buf); err != nil {
		return err
	}

	w.Header().Set("Content-Type", a.contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", a.filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, err := buf.WriteTo(w)
	return err
}

// Attachment renders the output of write as a file download.
func Attachment(contentType, filename string, write func(io.Writer) error) Response {
	return attachmentResponse{contentType: contentType, filename: filename, write: write}
}
