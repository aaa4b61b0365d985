package controller

import (
	"automart-be/internal/dto"
	"automart-be/internal/pkg/serverutils"
	"automart-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPromotionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	ListMine(ctx *fiber.Ctx) error
	Webhook(ctx *fiber.Ctx) error
}

type promotionController struct {
	service service.IPromotionService
}

func NewPromotionController(service service.IPromotionService) IPromotionController {
	return &promotionController{service: service}
}

func (c *promotionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/promotions")

	// Gateway callbacks are unauthenticated; the signature check guards them.
	h.Post("/webhook", c.Webhook)

	h.Use(serverutils.JwtMiddleware)
	dealer := serverutils.RequireRole("dealer", "admin")
	h.Post("/", dealer, c.Create)
	h.Get("/", dealer, c.ListMine)
}

func (c *promotionController) Create(ctx *fiber.Ctx) error {
	dealerID, err := serverutils.UserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	var req dto.CreatePromotionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.Create(ctx.Context(), dealerID, &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"code":    201,
		"message": "Promotion order created",
		"data":    res,
	})
}

func (c *promotionController) ListMine(ctx *fiber.Ctx) error {
	dealerID, err := serverutils.UserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	res, err := c.service.ListForDealer(ctx.Context(), dealerID)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Promotion orders fetched", res))
}

func (c *promotionController) Webhook(ctx *fiber.Ctx) error {
	var req dto.MidtransNotification
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	if err := c.service.HandleNotification(ctx.Context(), &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(fiber.Map{"status": "ok"})
}
