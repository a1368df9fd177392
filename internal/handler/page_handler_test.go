package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stellarnotes/internal/db"
	"github.com/stellarnotes/web"
)

func newPageContext(target string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, engine := gin.CreateTestContext(w)
	engine.SetHTMLTemplate(web.Templates())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

func TestShowGalleryRendersPage(t *testing.T) {
	api, _, cleanup := setupTestDB(t)
	defer cleanup()

	c, w := newPageContext("/")
	api.ShowGallery(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "NASA Image Gallery") {
		t.Fatalf("expected gallery title in page: %s", w.Body.String())
	}
}

func TestShowViewerEmbedsSelectedImage(t *testing.T) {
	api, gdb, cleanup := setupTestDB(t)
	defer cleanup()

	image := db.GalleryImage{
		Title:       "Saturn with Rings",
		Description: "Seen by **Cassini**<script>alert(1)</script>",
		ImageURL:    "https://example.com/saturn.jpg",
		Source:      "NASA",
		Category:    "Space",
	}
	if err := gdb.Create(&image).Error; err != nil {
		t.Fatalf("failed to seed image: %v", err)
	}

	c, w := newPageContext("/viewer/?image_id=1")
	api.ShowViewer(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Saturn with Rings") {
		t.Fatalf("expected image title in page: %s", body)
	}
	if !strings.Contains(body, "<strong>Cassini</strong>") {
		t.Fatalf("expected rendered markdown description: %s", body)
	}
	if strings.Contains(body, "<script>") {
		t.Fatalf("expected script to be stripped: %s", body)
	}
}

func TestShowViewerIgnoresUnknownImage(t *testing.T) {
	api, _, cleanup := setupTestDB(t)
	defer cleanup()

	for _, target := range []string{"/viewer/?image_id=99", "/viewer/?image_id=abc", "/viewer/"} {
		c, w := newPageContext(target)
		api.ShowViewer(c)

		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected status 200, got %d", target, w.Code)
		}
		if !strings.Contains(w.Body.String(), `data-image-id=""`) {
			t.Fatalf("%s: expected empty image section: %s", target, w.Body.String())
		}
		if len(c.Errors) != 0 {
			t.Fatalf("%s: expected no recorded errors, got %v", target, c.Errors)
		}
	}
}
