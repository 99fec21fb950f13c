package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ✅ Success Response (default 200)
func JsonOK(c *fiber.Ctx, message string, data interface{}) error {
	return JsonWithCode(c, fiber.StatusOK, message, data)
}

// ✅ Success Response 201
func JsonCreated(c *fiber.Ctx, message string, data interface{}) error {
	return JsonWithCode(c, fiber.StatusCreated, message, data)
}

func JsonWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

// ✅ Error Response sederhana
func JsonError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
	})
}

// ✅ Error Response dengan detail per field
func JsonErrorWithDetails(c *fiber.Ctx, code int, message string, errs interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
		"errors":  errs,
	})
}

// ✅ Khusus error validasi (validator.v10): field -> pesan
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}

	errorsMap := make(map[string]string, len(ve))
	for _, fieldErr := range ve {
		switch fieldErr.Tag() {
		case "required":
			errorsMap[fieldErr.Field()] = "This field is required."
		case "email":
			errorsMap[fieldErr.Field()] = "Enter a valid email address."
		case "min":
			errorsMap[fieldErr.Field()] = "Must be at least " + fieldErr.Param() + " characters."
		case "max":
			errorsMap[fieldErr.Field()] = "Must be at most " + fieldErr.Param() + " characters."
		case "gt", "gte":
			errorsMap[fieldErr.Field()] = "Value is too small."
		default:
			errorsMap[fieldErr.Field()] = "Invalid value."
		}
	}

	return JsonErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errorsMap)
}
