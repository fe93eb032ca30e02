package controller

import (
	"exec-workspace-be/internal/dto"
	"exec-workspace-be/internal/pkg/serverutils"
	"exec-workspace-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IActionItemController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type actionItemController struct {
	actionItemService service.IActionItemService
}

func NewActionItemController(actionItemService service.IActionItemService) IActionItemController {
	return &actionItemController{
		actionItemService: actionItemService,
	}
}

func (c *actionItemController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/action-items")
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Patch(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *actionItemController) List(ctx *fiber.Ctx) error {
	res, err := c.actionItemService.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *actionItemController) Show(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.actionItemService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NewNotFound("action item not found")
	}
	return ctx.JSON(res)
}

func (c *actionItemController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateActionItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequest("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.actionItemService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *actionItemController) Update(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateActionItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequest("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.actionItemService.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NewNotFound("action item not found")
	}
	return ctx.JSON(res)
}

func (c *actionItemController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.actionItemService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
