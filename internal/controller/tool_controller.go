package controller

import (
	"smart-tools-be/internal/dto"
	"smart-tools-be/internal/pkg/serverutils"
	"smart-tools-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IToolController interface {
	RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler)
}

type toolController struct {
	toolService service.IToolService
}

func NewToolController(toolService service.IToolService) IToolController {
	return &toolController{toolService: toolService}
}

func (c *toolController) RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler) {
	tools := api.Group("/tools", jwtMiddleware)
	tools.Get("/", c.ListTools)
	tools.Post("/:slug/run", c.RunTool)
}

func (c *toolController) ListTools(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}

	tools, err := c.toolService.ListTools(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Tools retrieved", tools))
}

// RunTool meters a completed run. A plan-gated tool maps to 403 and an
// exhausted daily quota to 429; both carry the full run response so the SPA
// can render the paywall or the countdown from one payload.
func (c *toolController) RunTool(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}

	var req dto.RunToolRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	res, err := c.toolService.RunTool(ctx.Context(), userId, ctx.Params("slug"), &req)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}

	switch res.Status {
	case dto.RunStatusLocked:
		return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponseWith(403, "Tool requires a higher plan", res))
	case dto.RunStatusLimitReached:
		return ctx.Status(fiber.StatusTooManyRequests).JSON(serverutils.ErrorResponseWith(429, "Daily run limit reached", res))
	default:
		return ctx.JSON(serverutils.SuccessResponse("Tool run recorded", res))
	}
}
