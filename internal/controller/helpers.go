package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// currentUserId reads the authenticated user id placed in Locals by the JWT
// middleware.
func currentUserId(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw := ctx.Locals("user_id")
	if raw == nil {
		return uuid.Nil, errors.New("unauthorized")
	}
	str, ok := raw.(string)
	if !ok {
		return uuid.Nil, errors.New("unauthorized")
	}
	id, err := uuid.Parse(str)
	if err != nil {
		return uuid.Nil, errors.New("invalid user id")
	}
	return id, nil
}
