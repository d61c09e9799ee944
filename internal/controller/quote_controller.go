// FILE: internal/controller/quote_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"islamic-quotes-be/internal/dto"
	"islamic-quotes-be/internal/pkg/apperror"
	"islamic-quotes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

var writeMethods = []string{
	fiber.MethodPost,
	fiber.MethodPut,
	fiber.MethodPatch,
	fiber.MethodDelete,
}

type IQuoteController interface {
	RegisterRoutes(r fiber.Router)
	Search(ctx *fiber.Ctx) error
	Random(ctx *fiber.Ctx) error
	Categories(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	RejectWrite(ctx *fiber.Ctx) error
}

type quoteController struct {
	quoteService service.IQuoteService
}

func NewQuoteController(quoteService service.IQuoteService) IQuoteController {
	return &quoteController{
		quoteService: quoteService,
	}
}

func (c *quoteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/quotes")
	// Static segments first so they are not captured by :id.
	h.Get("", c.Search)
	h.Get("/random", c.Random)
	h.Get("/categories", c.Categories)
	h.Get("/:id", c.Show)

	for _, method := range writeMethods {
		h.Add(method, "", c.RejectWrite)
		h.Add(method, "/:id", c.RejectWrite)
	}
}

func (c *quoteController) Search(ctx *fiber.Ctx) error {
	// Query values point into the request buffer; clone what outlives the handler.
	filter := dto.SearchQuoteFilter{
		Category: strings.Clone(ctx.Query("category")),
		Query:    strings.Clone(ctx.Query("query")),
	}

	if raw := ctx.Query("id"); raw != "" {
		id, err := parseQuoteId(raw)
		if errors.Is(err, errQuoteIdOutOfRange) {
			return service.NewQuoteNotFound()
		}
		if err != nil {
			return err
		}
		filter.Id = &id
	}

	res, err := c.quoteService.Search(ctx.UserContext(), &filter)
	if err != nil {
		return err
	}

	return ctx.JSON(res.Payload())
}

func (c *quoteController) Random(ctx *fiber.Ctx) error {
	res, err := c.quoteService.Random(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *quoteController) Categories(ctx *fiber.Ctx) error {
	res, err := c.quoteService.Categories(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *quoteController) Show(ctx *fiber.Ctx) error {
	raw := ctx.Params("id")
	id, err := parseQuoteId(raw)
	if errors.Is(err, errQuoteIdOutOfRange) {
		// A well-formed id beyond int can never be in the catalog.
		stats, err := c.quoteService.Stats(ctx.UserContext())
		if err != nil {
			return err
		}
		return service.NewQuoteIdNotFound(strings.TrimPrefix(raw, "+"), stats.MinId, stats.MaxId)
	}
	if err != nil {
		return err
	}

	res, err := c.quoteService.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *quoteController) RejectWrite(ctx *fiber.Ctx) error {
	return apperror.MethodNotAllowed()
}

var errQuoteIdOutOfRange = errors.New("quote id out of range")

// parseQuoteId accepts decimal integers. Integers that overflow int yield
// errQuoteIdOutOfRange rather than an invalid-argument error.
func parseQuoteId(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) {
		return 0, errQuoteIdOutOfRange
	}
	if err != nil {
		return 0, apperror.InvalidArgument("Invalid ID format. Please provide a valid number.")
	}
	return id, nil
}
