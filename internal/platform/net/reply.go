package net

import (
	"net/http"

	perr "moodlog/internal/platform/errors"
)

// Wire is the JSON envelope every transport writes
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// Success wraps data under status
func Success(status int, data any, reqID string) Wire {
	return Wire{
		StatusCode: status,
		Status:     http.StatusText(status),
		RequestID:  reqID,
		Data:       data,
	}
}

// Error maps err to its status and the public part of its message
// internal errors keep their cause out of the body
func Error(err error, reqID string) (int, Wire) {
	if err == nil {
		return http.StatusOK, Success(http.StatusOK, nil, reqID)
	}
	p := perr.Describe(err)
	return p.Status, Wire{
		StatusCode: p.Status,
		Status:     http.StatusText(p.Status),
		Code:       p.Code,
		Error:      p.Message,
		Field:      p.Field,
		RequestID:  reqID,
	}
}
