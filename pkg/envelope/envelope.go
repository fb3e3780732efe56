// Package envelope shapes every API response into the uniform
// {success, data, error, details, message} JSON wrapper.
package envelope

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the wire form of every API response.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details interface{} `json:"details,omitempty"`
	Message string      `json:"message,omitempty"`
}

// OK writes a 200 response carrying data.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

// Created writes a 201 response carrying the newly persisted entity.
func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, Response{Success: true, Data: data})
}

// Message writes a 200 response with a human-readable message and no data,
// used for delete confirmations.
func Message(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, Response{Success: true, Message: message})
}

// Fail writes a failure response with the given status and error string.
func Fail(c echo.Context, status int, errMsg string) error {
	return c.JSON(status, Response{Success: false, Error: errMsg})
}

// Invalid writes a 400 validation failure carrying the field-level issue list.
func Invalid(c echo.Context, details interface{}) error {
	return c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Error:   "Validation error",
		Details: details,
	})
}
