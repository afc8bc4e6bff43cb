package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Sagar00752/hrms/pkg/validator"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Success bool                        `json:"success"`
	Message string                      `json:"message"`
	Data    any                         `json:"data,omitempty"`
	Errors  []validator.ValidationError `json:"errors,omitempty"`
}

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSON renders body with status. body is normally an Envelope; endpoints
// with a fixed legacy shape pass their own struct.
func JSON(status int, body any) Response {
	return jsonResponse{status: status, body: body}
}

// OK renders a 200 success envelope.
func OK(message string, data any) Response {
	return JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// Created renders a 201 success envelope.
func Created(message string, data any) Response {
	return JSON(http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

// Fail renders a failure envelope without going through the error handler.
func Fail(status int, message string) Response {
	return JSON(status, Envelope{Success: false, Message: message})
}

type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error hands err to the error handler, which picks the status and logs it.
func Error(err error) Response {
	return errorResponse{err: err}
}
