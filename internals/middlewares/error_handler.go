package middlewares

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	helper "quizku_backend/internals/helpers"
)

// ErrorHandler dipakai di fiber.Config; error dari middleware (auth, role) dirender ke envelope JSON.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := err.Error()

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	} else {
		log.Printf("[ERROR] unhandled: %v", err)
	}
	return helper.JsonError(c, code, msg)
}
