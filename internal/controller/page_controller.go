package controller

import (
	"strings"

	"islamic-quotes-be/internal/dto"
	"islamic-quotes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPageController interface {
	RegisterRoutes(r fiber.Router)
	Home(ctx *fiber.Ctx) error
}

type pageController struct {
	quoteService service.IQuoteService
	baseURL      string
	apiPrefix    string
}

func NewPageController(quoteService service.IQuoteService, baseURL, apiPrefix string) IPageController {
	return &pageController{
		quoteService: quoteService,
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		apiPrefix:    apiPrefix,
	}
}

func (c *pageController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Home)
}

// Home renders the companion page. The explore section is a plain GET form,
// so it reuses the same query parameters as the JSON endpoint.
func (c *pageController) Home(ctx *fiber.Ctx) error {
	reqCtx := ctx.UserContext()

	filter := dto.SearchQuoteFilter{
		Category: strings.Clone(ctx.Query("category")),
		Query:    strings.Clone(ctx.Query("query")),
	}

	random, err := c.quoteService.Random(reqCtx)
	if err != nil {
		return err
	}
	categories, err := c.quoteService.Categories(reqCtx)
	if err != nil {
		return err
	}
	stats, err := c.quoteService.Stats(reqCtx)
	if err != nil {
		return err
	}
	found, err := c.quoteService.Search(reqCtx, &filter)
	if err != nil {
		return err
	}

	return ctx.Render("index", fiber.Map{
		"Random":           random,
		"Quotes":           found.Items,
		"Categories":       categories,
		"Stats":            stats,
		"Query":            filter.Query,
		"SelectedCategory": filter.Category,
		"BaseURL":          c.baseURL,
		"ApiPrefix":        c.apiPrefix,
	})
}
