package controller

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"automart-be/internal/service"
	"automart-be/pkg/genai"

	"github.com/gofiber/fiber/v2"
)

func newGenerateApp() *fiber.App {
	// The image-count guard fires before any collaborator is touched, and an
	// unconfigured client makes the pipeline fail as an upstream error.
	svc := service.NewCarService(nil, genai.NewPipeline(genai.NewClient("")), nil, nil, nil)
	ctrl := &carController{service: svc}

	app := fiber.New()
	app.Post("/generate", ctrl.Generate)
	return app
}

func multipartImages(t *testing.T, count int) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for i := 0; i < count; i++ {
		fw, err := w.CreateFormFile("images", fmt.Sprintf("car-%d.jpg", i))
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		fw.Write([]byte("jpegdata"))
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, w.FormDataContentType()
}

func TestGenerateStatusCodes(t *testing.T) {
	app := newGenerateApp()

	tests := []struct {
		name       string
		images     int
		wantStatus int
	}{
		{name: "no images", images: 0, wantStatus: fiber.StatusBadRequest},
		{name: "over the image cap", images: 11, wantStatus: fiber.StatusBadRequest},
		{name: "upstream failure", images: 1, wantStatus: fiber.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, contentType := multipartImages(t, tt.images)
			req := httptest.NewRequest("POST", "/generate", body)
			req.Header.Set("Content-Type", contentType)

			res, err := app.Test(req)
			if err != nil {
				t.Fatal(err)
			}
			if res.StatusCode != tt.wantStatus {
				t.Errorf("status for %d images = %d, want %d", tt.images, res.StatusCode, tt.wantStatus)
			}
		})
	}
}
