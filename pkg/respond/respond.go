// Package respond holds the JSON response envelope shared by every API
// handler, plus helpers for extracting cursor pagination parameters from a
// request.
package respond

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Envelope is the wire shape of every API response.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// OK writes a 200 success envelope.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// Created writes a 201 success envelope.
func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

// Bad writes a 400 error envelope with a human-readable message.
func Bad(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, Envelope{Success: false, Error: msg})
}

// NotFound writes a 404 error envelope.
func NotFound(c echo.Context, msg string) error {
	if msg == "" {
		msg = "not found"
	}
	return c.JSON(http.StatusNotFound, Envelope{Success: false, Error: msg})
}

// Conflict writes a 409 error envelope.
func Conflict(c echo.Context, msg string) error {
	return c.JSON(http.StatusConflict, Envelope{Success: false, Error: msg})
}

// Internal writes a 500 error envelope. The message should be generic; no
// internal identifiers or stack traces belong on the wire.
func Internal(c echo.Context, msg string) error {
	if msg == "" {
		msg = "internal error"
	}
	return c.JSON(http.StatusInternalServerError, Envelope{Success: false, Error: msg})
}

// ListParams holds cursor pagination parameters extracted from a request.
type ListParams struct {
	Cursor string
	Limit  int
}

// ListParamsFrom extracts cursor and limit query parameters, applying the
// given default page size and clamping to MaxLimit.
func ListParamsFrom(c echo.Context, defaultLimit int) ListParams {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return ListParams{
		Cursor: c.QueryParam("cursor"),
		Limit:  limit,
	}
}
