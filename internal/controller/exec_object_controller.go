package controller

import (
	"exec-workspace-be/internal/dto"
	"exec-workspace-be/internal/pkg/serverutils"
	"exec-workspace-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IExecObjectController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	ListTags(ctx *fiber.Ctx) error
	AttachTag(ctx *fiber.Ctx) error
	DetachTag(ctx *fiber.Ctx) error
}

type execObjectController struct {
	objectService service.IExecObjectService
}

func NewExecObjectController(objectService service.IExecObjectService) IExecObjectController {
	return &execObjectController{
		objectService: objectService,
	}
}

func (c *execObjectController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/objects")
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Patch(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Get(":id/tags", c.ListTags)
	h.Post(":id/tags", c.AttachTag)
	h.Delete(":id/tags/:tagId", c.DetachTag)
}

func (c *execObjectController) List(ctx *fiber.Ctx) error {
	res, err := c.objectService.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *execObjectController) Show(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.objectService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NewNotFound("object not found")
	}
	return ctx.JSON(res)
}

func (c *execObjectController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateObjectRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequest("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.objectService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *execObjectController) Update(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateObjectRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequest("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.objectService.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NewNotFound("object not found")
	}
	return ctx.JSON(res)
}

func (c *execObjectController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.objectService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *execObjectController) ListTags(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.objectService.ListTags(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NewNotFound("object not found")
	}
	return ctx.JSON(res)
}

func (c *execObjectController) AttachTag(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.AttachTagRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequest("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.objectService.AttachTag(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NewNotFound("object or tag not found")
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *execObjectController) DetachTag(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}
	tagId, err := parseIdParam(ctx, "tagId")
	if err != nil {
		return err
	}

	if err := c.objectService.DetachTag(ctx.Context(), id, tagId); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
