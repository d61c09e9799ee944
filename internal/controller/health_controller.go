package controller

import (
	"islamic-quotes-be/internal/dto"
	"islamic-quotes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
}

type healthController struct {
	quoteService service.IQuoteService
}

func NewHealthController(quoteService service.IQuoteService) IHealthController {
	return &healthController{quoteService: quoteService}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/healthz", c.Health)
}

// Health reports ready only once the dataset can be served.
func (c *healthController) Health(ctx *fiber.Ctx) error {
	stats, err := c.quoteService.Stats(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{Status: "unavailable"})
	}
	return ctx.JSON(dto.HealthResponse{Status: "ok", Quotes: stats.TotalQuotes})
}
