package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponseStruct is the error envelope every failed request receives.
type ErrorResponseStruct struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Ok        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
	URL       string `json:"url"`
	Type      string `json:"type,omitempty"`
}

// SuccessResponse writes data as JSON with the given status.
func SuccessResponse(c *fiber.Ctx, data interface{}, status int) error {
	return c.Status(status).JSON(data)
}

// CreatedResponse writes a 201 with a Location header for the new resource.
func CreatedResponse(c *fiber.Ctx, location string, data interface{}) error {
	c.Location(location)
	return c.Status(fiber.StatusCreated).JSON(data)
}

// ErrorResponse writes the error envelope.
func ErrorResponse(c *fiber.Ctx, message string, status int, errorType string) error {
	return c.Status(status).JSON(ErrorResponseStruct{
		Status:    status,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		URL:       c.OriginalURL(),
		Type:      errorType,
	})
}

// NotFoundResponse writes a 404 envelope of type "notFound".
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, message, fiber.StatusNotFound, "notFound")
}
