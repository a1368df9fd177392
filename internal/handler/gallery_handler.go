package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stellarnotes/internal/service"
)

// ListGalleryImages returns all gallery images.
func (a *API) ListGalleryImages(c *gin.Context) {
	items, err := a.galleries.List()
	if err != nil {
		respondServiceError(c, err, "failed to list gallery images")
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateGalleryImage creates a new gallery image.
func (a *API) CreateGalleryImage(c *gin.Context) {
	var patch service.GalleryPatch
	if !bindPayload(c, &patch) {
		return
	}

	item, err := a.galleries.Create(patch.Apply(service.NewGalleryInput()))
	if err != nil {
		respondServiceError(c, err, "failed to create gallery image")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GetGalleryImage returns one gallery image or 404.
func (a *API) GetGalleryImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	item, err := a.galleries.Get(id)
	if err != nil {
		respondServiceError(c, err, "failed to load gallery image")
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateGalleryImage handles PUT. title and image_url are required; other
// fields left out of the body keep their stored values.
func (a *API) UpdateGalleryImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var patch service.GalleryPatch
	if !bindPayload(c, &patch) {
		return
	}

	item, err := a.galleries.Update(id, patch)
	if err != nil {
		respondServiceError(c, err, "failed to update gallery image")
		return
	}
	c.JSON(http.StatusOK, item)
}

// PatchGalleryImage updates only the fields present in the body.
func (a *API) PatchGalleryImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var patch service.GalleryPatch
	if !bindPayload(c, &patch) {
		return
	}

	item, err := a.galleries.Patch(id, patch)
	if err != nil {
		respondServiceError(c, err, "failed to update gallery image")
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteGalleryImage removes a gallery image.
func (a *API) DeleteGalleryImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := a.galleries.Delete(id); err != nil {
		respondServiceError(c, err, "failed to delete gallery image")
		return
	}
	respondEmpty(c, http.StatusNoContent)
}
