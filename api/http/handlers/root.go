package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumeboost/api/http/presenter"
)

// Root greets API clients.
// @Summary Welcome message
// @Tags    meta
// @Produce json
// @Success 200 {object} presenter.MessageResponse
// @Router  / [get]
func Root(c *fiber.Ctx) error {
	return presenter.Message(c, http.StatusOK, "Welcome to Resume Boost API")
}
