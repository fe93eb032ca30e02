package controller

import (
	"exec-workspace-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISearchController interface {
	RegisterRoutes(r fiber.Router)
	Search(ctx *fiber.Ctx) error
}

type searchController struct {
	searchService service.ISearchService
}

func NewSearchController(searchService service.ISearchService) ISearchController {
	return &searchController{
		searchService: searchService,
	}
}

func (c *searchController) RegisterRoutes(r fiber.Router) {
	r.Get("/search", c.Search)
}

func (c *searchController) Search(ctx *fiber.Ctx) error {
	res, err := c.searchService.Search(ctx.Context(), ctx.Query("q"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
