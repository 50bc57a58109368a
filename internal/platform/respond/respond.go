// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond provides HTTP response helpers for the in-process
// dictionary service.
//
// # Architecture
//
// Success bodies are written bare (the service has no envelope). Errors use
// the service's {status, message} payload, which is what the client's
// transport parses.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/taibuivan/dictionary/internal/platform/constants"
	"github.com/taibuivan/dictionary/pkg/apperr"
)

// ErrorPayload is the JSON body of every error response.
type ErrorPayload struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set(constants.HeaderContentType, constants.MIMEApplicationJSON)
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response.
func OK(writer http.ResponseWriter, data interface{}) {
	JSON(writer, http.StatusOK, data)
}

// Created writes a 201 Created response.
func Created(writer http.ResponseWriter, data interface{}) {
	JSON(writer, http.StatusCreated, data)
}

// NoContent writes a 204 No Content response.
func NoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// Status writes an error payload with an explicit status code.
func Status(writer http.ResponseWriter, statusCode int, message string) {
	JSON(writer, statusCode, ErrorPayload{Status: statusCode, Message: message})
}

// Error writes err as an error payload. [apperr.AppError] values keep their
// HTTP status; anything else becomes a 500.
func Error(writer http.ResponseWriter, err error) {
	var appError *apperr.AppError
	if !errors.As(err, &appError) || appError.HTTPStatus == 0 {
		Status(writer, http.StatusInternalServerError, err.Error())
		return
	}
	Status(writer, appError.HTTPStatus, appError.Message)
}
