package controller

import (
	"errors"
	"io"
	"mime/multipart"

	"automart-be/internal/dto"
	"automart-be/internal/pkg/serverutils"
	"automart-be/internal/service"
	"automart-be/pkg/genai"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICarController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	GetById(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Generate(ctx *fiber.Ctx) error
	Similar(ctx *fiber.Ctx) error
}

type carController struct {
	service service.ICarService
}

func NewCarController(service service.ICarService) ICarController {
	return &carController{service: service}
}

func (c *carController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/cars")
	h.Get("/", c.List)
	h.Get("/:id", c.GetById)
	h.Get("/:id/similar", c.Similar)

	h.Use(serverutils.JwtMiddleware)
	dealer := serverutils.RequireRole("dealer", "admin")
	h.Post("/", dealer, c.Create)
	h.Post("/generate", dealer, c.Generate)
	h.Put("/:id", dealer, c.Update)
	h.Delete("/:id", dealer, c.Delete)
}

func (c *carController) List(ctx *fiber.Ctx) error {
	var query dto.ListCarsQuery
	if err := ctx.QueryParser(&query); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	cars, total, err := c.service.List(ctx.Context(), &query)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Cars fetched",
		"data":    cars,
		"total":   total,
	})
}

func (c *carController) GetById(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid car id"))
	}

	res, err := c.service.GetById(ctx.Context(), id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Car fetched", res))
}

func (c *carController) Create(ctx *fiber.Ctx) error {
	dealerID, err := serverutils.UserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	var req dto.CreateCarRequest
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
		"message": "Car created",
		"data":    res,
	})
}

func (c *carController) Update(ctx *fiber.Ctx) error {
	dealerID, err := serverutils.UserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid car id"))
	}

	var req dto.UpdateCarRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), dealerID, id, &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Car updated", res))
}

func (c *carController) Delete(ctx *fiber.Ctx) error {
	dealerID, err := serverutils.UserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid car id"))
	}

	if err := c.service.Delete(ctx.Context(), dealerID, id); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Car deleted", nil))
}

func readUpload(fh *multipart.FileHeader) (genai.Image, error) {
	f, err := fh.Open()
	if err != nil {
		return genai.Image{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return genai.Image{}, err
	}

	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	return genai.Image{MimeType: mimeType, Data: data}, nil
}

// Generate accepts multipart uploads under the "images" field and returns an
// audited listing draft.
func (c *carController) Generate(ctx *fiber.Ctx) error {
	form, err := ctx.MultipartForm()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Expected multipart form with images"))
	}

	files := form.File["images"]
	if len(files) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "At least one image is required"))
	}

	images := make([]genai.Image, 0, len(files))
	for _, fh := range files {
		img, err := readUpload(fh)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		}
		images = append(images, img)
	}

	res, err := c.service.GenerateListing(ctx.Context(), images)
	if err != nil {
		// Bad input is the caller's fault; only upstream failures are 502.
		if errors.Is(err, service.ErrTooManyImages) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		}
		return ctx.Status(fiber.StatusBadGateway).JSON(serverutils.ErrorResponse(502, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Listing draft generated", res))
}

func (c *carController) Similar(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid car id"))
	}

	limit := ctx.QueryInt("limit", 5)

	res, err := c.service.FindSimilar(ctx.Context(), id, limit)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Similar cars fetched", res))
}
