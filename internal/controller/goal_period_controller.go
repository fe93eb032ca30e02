package controller

import (
	"exec-workspace-be/internal/dto"
	"exec-workspace-be/internal/pkg/serverutils"
	"exec-workspace-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IGoalPeriodController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type goalPeriodController struct {
	goalPeriodService service.IGoalPeriodService
}

func NewGoalPeriodController(goalPeriodService service.IGoalPeriodService) IGoalPeriodController {
	return &goalPeriodController{
		goalPeriodService: goalPeriodService,
	}
}

func (c *goalPeriodController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/goal-periods")
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Patch(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *goalPeriodController) List(ctx *fiber.Ctx) error {
	res, err := c.goalPeriodService.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *goalPeriodController) Show(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.goalPeriodService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NewNotFound("goal period not found")
	}
	return ctx.JSON(res)
}

func (c *goalPeriodController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateGoalPeriodRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequest("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.goalPeriodService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *goalPeriodController) Update(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateGoalPeriodRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequest("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.goalPeriodService.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NewNotFound("goal period not found")
	}
	return ctx.JSON(res)
}

func (c *goalPeriodController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.goalPeriodService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
