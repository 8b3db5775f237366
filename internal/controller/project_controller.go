package controller

import (
	"smart-tools-be/internal/pkg/serverutils"
	"smart-tools-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IProjectController interface {
	RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler)
}

type projectController struct {
	projectService service.IProjectService
}

func NewProjectController(projectService service.IProjectService) IProjectController {
	return &projectController{projectService: projectService}
}

func (c *projectController) RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler) {
	projects := api.Group("/projects", jwtMiddleware)
	projects.Get("/", c.ListProjects)
	projects.Delete("/", c.ClearAllData)
	projects.Get("/:id", c.GetProject)
	projects.Delete("/:id", c.DeleteProject)
	projects.Get("/:id/export", c.ExportProject)
}

func (c *projectController) ListProjects(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}

	res, err := c.projectService.ListProjects(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Projects retrieved", res))
}

func (c *projectController) GetProject(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}
	projectId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid project id"))
	}

	res, err := c.projectService.GetProject(ctx.Context(), userId, projectId)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Project retrieved", res))
}

func (c *projectController) DeleteProject(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}
	projectId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid project id"))
	}

	if err := c.projectService.DeleteProject(ctx.Context(), userId, projectId); err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Project deleted", nil))
}

func (c *projectController) ClearAllData(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}

	if err := c.projectService.ClearAllData(ctx.Context(), userId); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("All data cleared", nil))
}

// ExportProject streams the rendered file, or returns 403 with the lock
// payload when the plan does not allow the requested format.
func (c *projectController) ExportProject(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}
	projectId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid project id"))
	}

	format := ctx.Query("format", "txt")
	res, err := c.projectService.ExportProject(ctx.Context(), userId, projectId, format)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}

	if !res.Allowed {
		return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponseWith(403, "Export format requires a higher plan", res))
	}

	ctx.Set(fiber.HeaderContentType, res.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+res.FileName+`"`)
	return ctx.Send(res.Content)
}
