package controller

import (
	"automart-be/internal/dto"
	"automart-be/internal/pkg/serverutils"
	"automart-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IRoleRequestController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	ListMine(ctx *fiber.Ctx) error
	ListPending(ctx *fiber.Ctx) error
	Review(ctx *fiber.Ctx) error
}

type roleRequestController struct {
	service service.IRoleRequestService
}

func NewRoleRequestController(service service.IRoleRequestService) IRoleRequestController {
	return &roleRequestController{service: service}
}

func (c *roleRequestController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/role-requests")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/", c.Create)
	h.Get("/mine", c.ListMine)

	admin := serverutils.RequireRole("admin")
	h.Get("/pending", admin, c.ListPending)
	h.Post("/:id/review", admin, c.Review)
}

func (c *roleRequestController) Create(ctx *fiber.Ctx) error {
	userID, err := serverutils.UserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	var req dto.CreateRoleRequestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.Create(ctx.Context(), userID, &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"code":    201,
		"message": "Role change requested",
		"data":    res,
	})
}

func (c *roleRequestController) ListMine(ctx *fiber.Ctx) error {
	userID, err := serverutils.UserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	res, err := c.service.ListMine(ctx.Context(), userID)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Role requests fetched", res))
}

func (c *roleRequestController) ListPending(ctx *fiber.Ctx) error {
	res, err := c.service.ListPending(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Pending role requests fetched", res))
}

func (c *roleRequestController) Review(ctx *fiber.Ctx) error {
	adminID, err := serverutils.UserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request id"))
	}

	var req dto.ReviewRoleRequestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.service.Review(ctx.Context(), adminID, id, &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Role request reviewed", res))
}
