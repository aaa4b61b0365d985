package controller

import (
	"errors"

	"automart-be/internal/dto"
	"automart-be/internal/entity"
	"automart-be/internal/pkg/serverutils"
	"automart-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITestDriveController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Accept(ctx *fiber.Ctx) error
	Reject(ctx *fiber.Ctx) error
	Start(ctx *fiber.Ctx) error
	Complete(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
	ListMine(ctx *fiber.Ctx) error
	ListIncoming(ctx *fiber.Ctx) error
}

type testDriveController struct {
	service service.ITestDriveService
}

func NewTestDriveController(service service.ITestDriveService) ITestDriveController {
	return &testDriveController{service: service}
}

func (c *testDriveController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/testdrives")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/", c.Create)
	h.Get("/", c.ListMine)
	h.Post("/:id/cancel", c.Cancel)

	dealer := serverutils.RequireRole("dealer", "admin")
	h.Get("/incoming", dealer, c.ListIncoming)
	h.Post("/:id/accept", dealer, c.Accept)
	h.Post("/:id/reject", dealer, c.Reject)
	h.Post("/:id/start", dealer, c.Start)
	h.Post("/:id/complete", dealer, c.Complete)
}

// transitionStatus maps state machine violations to 409 so clients can
// distinguish them from plain bad requests.
func transitionStatus(err error) int {
	if errors.Is(err, entity.ErrIllegalTransition) {
		return fiber.StatusConflict
	}
	return fiber.StatusBadRequest
}

func (c *testDriveController) Create(ctx *fiber.Ctx) error {
	userID, err := serverutils.UserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	var req dto.CreateTestDriveRequest
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
		"message": "Test drive requested",
		"data":    res,
	})
}

func (c *testDriveController) transition(ctx *fiber.Ctx, action func(uuid.UUID, uuid.UUID) (*dto.TestDriveDTO, error), message string) error {
	userID, err := serverutils.UserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid test drive id"))
	}

	res, err := action(userID, id)
	if err != nil {
		code := transitionStatus(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse(message, res))
}

func (c *testDriveController) Accept(ctx *fiber.Ctx) error {
	return c.transition(ctx, func(userID, id uuid.UUID) (*dto.TestDriveDTO, error) {
		return c.service.Accept(ctx.Context(), userID, id)
	}, "Test drive accepted")
}

func (c *testDriveController) Reject(ctx *fiber.Ctx) error {
	userID, err := serverutils.UserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid test drive id"))
	}

	var req dto.RejectTestDriveRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.Reject(ctx.Context(), userID, id, &req)
	if err != nil {
		code := transitionStatus(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Test drive rejected", res))
}

func (c *testDriveController) Start(ctx *fiber.Ctx) error {
	return c.transition(ctx, func(userID, id uuid.UUID) (*dto.TestDriveDTO, error) {
		return c.service.Start(ctx.Context(), userID, id)
	}, "Test drive started")
}

func (c *testDriveController) Complete(ctx *fiber.Ctx) error {
	return c.transition(ctx, func(userID, id uuid.UUID) (*dto.TestDriveDTO, error) {
		return c.service.Complete(ctx.Context(), userID, id)
	}, "Test drive completed")
}

func (c *testDriveController) Cancel(ctx *fiber.Ctx) error {
	return c.transition(ctx, func(userID, id uuid.UUID) (*dto.TestDriveDTO, error) {
		return c.service.Cancel(ctx.Context(), userID, id)
	}, "Test drive cancelled")
}

func (c *testDriveController) ListMine(ctx *fiber.Ctx) error {
	userID, err := serverutils.UserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	res, err := c.service.ListForBuyer(ctx.Context(), userID)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Test drives fetched", res))
}

func (c *testDriveController) ListIncoming(ctx *fiber.Ctx) error {
	userID, err := serverutils.UserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	res, err := c.service.ListForDealer(ctx.Context(), userID)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Incoming test drives fetched", res))
}
