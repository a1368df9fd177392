package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/stellarnotes/internal/db"
	"github.com/stellarnotes/internal/service"
	"gorm.io/gorm"
)

// GalleryRepository is the persistence surface the gallery handlers need.
type GalleryRepository interface {
	List() ([]db.GalleryImage, error)
	Get(id uint) (*db.GalleryImage, error)
	Create(input service.GalleryInput) (*db.GalleryImage, error)
	Update(id uint, patch service.GalleryPatch) (*db.GalleryImage, error)
	Patch(id uint, patch service.GalleryPatch) (*db.GalleryImage, error)
	Delete(id uint) error
}

// AnnotationRepository is the persistence surface the annotation handlers need.
type AnnotationRepository interface {
	List() ([]db.Annotation, error)
	Get(id uint) (*db.Annotation, error)
	Create(input service.AnnotationInput) (*db.Annotation, error)
	Update(id uint, patch service.AnnotationPatch) (*db.Annotation, error)
	Patch(id uint, patch service.AnnotationPatch) (*db.Annotation, error)
	Delete(id uint) error
}

// API bundles shared dependencies for HTTP handlers.
type API struct {
	galleries   GalleryRepository
	annotations AnnotationRepository
}

// NewAPI constructs a handler set backed by gorm services.
func NewAPI(gdb *gorm.DB) *API {
	return New(service.NewGalleryService(gdb), service.NewAnnotationService(gdb))
}

// New constructs a handler set from explicit repositories.
func New(galleries GalleryRepository, annotations AnnotationRepository) *API {
	return &API{
		galleries:   galleries,
		annotations: annotations,
	}
}

func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	payload := gin.H{
		"siteName": "Stellar Notes",
	}
	for key, value := range data {
		payload[key] = value
	}
	c.HTML(status, template, payload)
}
