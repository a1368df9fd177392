package service

import (
	"errors"
	"strings"

	"github.com/stellarnotes/internal/db"
	"gorm.io/gorm"
)

var ErrGalleryNotFound = errors.New("gallery image not found")

// GalleryService handles gallery CRUD.
type GalleryService struct {
	db *gorm.DB
}

// GalleryInput represents fields accepted when creating or updating a gallery image.
type GalleryInput struct {
	Title        string `json:"title" validate:"required,max=200"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url" validate:"required,max=500,url,web_url"`
	ThumbnailURL string `json:"thumbnail_url" validate:"omitempty,max=500,url,web_url"`
	Source       string `json:"source" validate:"max=100"`
	Category     string `json:"category" validate:"max=50"`
}

// GalleryPatch carries the fields present in a request body; nil means absent.
type GalleryPatch struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	ImageURL     *string `json:"image_url"`
	ThumbnailURL *string `json:"thumbnail_url"`
	Source       *string `json:"source"`
	Category     *string `json:"category"`
}

// NewGalleryInput returns the input a create request starts from.
func NewGalleryInput() GalleryInput {
	return GalleryInput{Source: db.DefaultGallerySource}
}

// GalleryInputFrom copies the client-settable fields of item.
func GalleryInputFrom(item db.GalleryImage) GalleryInput {
	return GalleryInput{
		Title:        item.Title,
		Description:  item.Description,
		ImageURL:     item.ImageURL,
		ThumbnailURL: item.ThumbnailURL,
		Source:       item.Source,
		Category:     item.Category,
	}
}

// Apply overlays the present fields of p onto input.
func (p GalleryPatch) Apply(input GalleryInput) GalleryInput {
	if p.Title != nil {
		input.Title = *p.Title
	}
	if p.Description != nil {
		input.Description = *p.Description
	}
	if p.ImageURL != nil {
		input.ImageURL = *p.ImageURL
	}
	if p.ThumbnailURL != nil {
		input.ThumbnailURL = *p.ThumbnailURL
	}
	if p.Source != nil {
		input.Source = *p.Source
	}
	if p.Category != nil {
		input.Category = *p.Category
	}
	return input
}

func (p GalleryPatch) requireFull() error {
	var err error
	if p.Title == nil {
		err = mergeValidation(err, "title", requiredMessage)
	}
	if p.ImageURL == nil {
		err = mergeValidation(err, "image_url", fieldMessages["image_url.required"])
	}
	return err
}

// NewGalleryService creates a GalleryService instance.
func NewGalleryService(gdb *gorm.DB) *GalleryService {
	return &GalleryService{db: gdb}
}

// List returns all gallery images, newest first.
func (s *GalleryService) List() ([]db.GalleryImage, error) {
	items := make([]db.GalleryImage, 0)
	if err := s.db.Order("created_at desc").Order("id desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches a gallery image by id.
func (s *GalleryService) Get(id uint) (*db.GalleryImage, error) {
	var item db.GalleryImage
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a new gallery image.
func (s *GalleryService) Create(input GalleryInput) (*db.GalleryImage, error) {
	input = normalizeGalleryInput(input)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	item := db.GalleryImage{}
	assignGalleryInput(&item, input)

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update handles a full update: title and image_url must be present in
// patch, optional fields left out keep their stored values.
func (s *GalleryService) Update(id uint, patch GalleryPatch) (*db.GalleryImage, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := patch.requireFull(); err != nil {
		return nil, err
	}
	return s.save(item, patch.Apply(GalleryInputFrom(*item)))
}

// Patch modifies only the fields present in patch.
func (s *GalleryService) Patch(id uint, patch GalleryPatch) (*db.GalleryImage, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return s.save(item, patch.Apply(GalleryInputFrom(*item)))
}

func (s *GalleryService) save(item *db.GalleryImage, input GalleryInput) (*db.GalleryImage, error) {
	input = normalizeGalleryInput(input)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	assignGalleryInput(item, input)
	if err := s.db.Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes a gallery image.
func (s *GalleryService) Delete(id uint) error {
	item, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.db.Delete(item).Error
}

// ExistsByTitle reports whether an image with exactly this title is stored.
func (s *GalleryService) ExistsByTitle(title string) (bool, error) {
	var count int64
	if err := s.db.Model(&db.GalleryImage{}).Where("title = ?", strings.TrimSpace(title)).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count returns the number of stored gallery images.
func (s *GalleryService) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&db.GalleryImage{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func normalizeGalleryInput(input GalleryInput) GalleryInput {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.ImageURL = strings.TrimSpace(input.ImageURL)
	input.ThumbnailURL = strings.TrimSpace(input.ThumbnailURL)
	input.Source = strings.TrimSpace(input.Source)
	if input.Source == "" {
		input.Source = db.DefaultGallerySource
	}
	input.Category = strings.TrimSpace(input.Category)
	return input
}

func assignGalleryInput(item *db.GalleryImage, input GalleryInput) {
	item.Title = input.Title
	item.Description = input.Description
	item.ImageURL = input.ImageURL
	item.ThumbnailURL = input.ThumbnailURL
	item.Source = input.Source
	item.Category = input.Category
}
