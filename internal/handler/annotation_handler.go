package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stellarnotes/internal/service"
)

// ListAnnotations returns every annotation, newest first.
func (a *API) ListAnnotations(c *gin.Context) {
	items, err := a.annotations.List()
	if err != nil {
		respondServiceError(c, err, "failed to list annotations")
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateAnnotation validates the body and stores a new annotation.
func (a *API) CreateAnnotation(c *gin.Context) {
	var patch service.AnnotationPatch
	if !bindPayload(c, &patch) {
		return
	}

	if err := patch.CheckNulls(); err != nil {
		respondServiceError(c, err, "failed to create annotation")
		return
	}

	item, err := a.annotations.Create(patch.Apply(service.NewAnnotationInput()))
	if err != nil {
		respondServiceError(c, err, "failed to create annotation")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GetAnnotation returns one annotation or 404.
func (a *API) GetAnnotation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	item, err := a.annotations.Get(id)
	if err != nil {
		respondServiceError(c, err, "failed to load annotation")
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateAnnotation handles PUT. coordinates and label are required; other
// fields left out of the body keep their stored values.
func (a *API) UpdateAnnotation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var patch service.AnnotationPatch
	if !bindPayload(c, &patch) {
		return
	}

	item, err := a.annotations.Update(id, patch)
	if err != nil {
		respondServiceError(c, err, "failed to update annotation")
		return
	}
	c.JSON(http.StatusOK, item)
}

// PatchAnnotation updates only the fields present in the body (PATCH).
func (a *API) PatchAnnotation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var patch service.AnnotationPatch
	if !bindPayload(c, &patch) {
		return
	}

	item, err := a.annotations.Patch(id, patch)
	if err != nil {
		respondServiceError(c, err, "failed to update annotation")
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteAnnotation removes an annotation.
func (a *API) DeleteAnnotation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := a.annotations.Delete(id); err != nil {
		respondServiceError(c, err, "failed to delete annotation")
		return
	}
	respondEmpty(c, http.StatusNoContent)
}

// Function-style endpoints kept for older clients. They offer list, create
// and detail only.

// AnnotationList is the function-style list endpoint.
func (a *API) AnnotationList(c *gin.Context) {
	a.ListAnnotations(c)
}

// AnnotationCreate is the function-style create endpoint.
func (a *API) AnnotationCreate(c *gin.Context) {
	a.CreateAnnotation(c)
}

// AnnotationDetail is the function-style detail endpoint.
func (a *API) AnnotationDetail(c *gin.Context) {
	a.GetAnnotation(c)
}
