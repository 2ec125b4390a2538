// Package common holds the response envelope and request helpers shared
// by all route packages.
package common

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Response is the envelope every endpoint returns.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

var validate = validator.New()

// SuccessJSON writes the success envelope.
func SuccessJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorJSON writes the failure envelope.
func ErrorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Response{
		Success: false,
		Message: message,
	})
}

// BindAndValidate parses the request body into T and runs the struct
// validations. On failure it writes a 400 response (requiredMsg for
// validation failures) and returns nil; callers should return the error
// as-is since the response is already written.
func BindAndValidate[T any](c *fiber.Ctx, requiredMsg string) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ErrorJSON(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return nil, ErrorJSON(c, fiber.StatusBadRequest, requiredMsg)
	}
	return &input, nil
}

// ParseIDParam parses the named route parameter as an integer id.
func ParseIDParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := c.ParamsInt(name)
	if err != nil {
		return 0, err
	}
	return int64(id), nil
}
