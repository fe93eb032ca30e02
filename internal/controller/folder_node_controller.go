package controller

import (
	"exec-workspace-be/internal/dto"
	"exec-workspace-be/internal/pkg/serverutils"
	"exec-workspace-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFolderNodeController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type folderNodeController struct {
	folderService service.IFolderNodeService
}

func NewFolderNodeController(folderService service.IFolderNodeService) IFolderNodeController {
	return &folderNodeController{
		folderService: folderService,
	}
}

func (c *folderNodeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/folders")
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Patch(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *folderNodeController) List(ctx *fiber.Ctx) error {
	res, err := c.folderService.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *folderNodeController) Show(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.folderService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NewNotFound("folder not found")
	}
	return ctx.JSON(res)
}

func (c *folderNodeController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateFolderNodeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequest("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.folderService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *folderNodeController) Update(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateFolderNodeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequest("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.folderService.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NewNotFound("folder not found")
	}
	return ctx.JSON(res)
}

func (c *folderNodeController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.folderService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
