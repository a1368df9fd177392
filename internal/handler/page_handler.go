package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stellarnotes/internal/service"
)

// ShowGallery renders the public gallery page.
func (a *API) ShowGallery(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "gallery.html", gin.H{
		"title": "NASA Image Gallery",
	})
}

// ShowViewer renders the annotation viewer. When image_id names a stored
// image it is handed to the page; any other value is ignored.
func (a *API) ShowViewer(c *gin.Context) {
	payload := gin.H{
		"title": "Image Annotator",
	}

	if raw := strings.TrimSpace(c.Query("image_id")); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			image, err := a.galleries.Get(uint(id))
			switch {
			case err == nil:
				payload["image"] = image
				payload["descriptionHTML"] = renderDescription(image.Description)
			case !errors.Is(err, service.ErrGalleryNotFound):
				c.Error(err)
			}
		}
	}

	a.renderHTML(c, http.StatusOK, "index.html", payload)
}
