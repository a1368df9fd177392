package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/stellarnotes/internal/db"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrAnnotationNotFound = errors.New("annotation not found")

// AnnotationService handles annotation CRUD.
type AnnotationService struct {
	db    *gorm.DB
	users *UserService
}

// AnnotationInput represents fields accepted when creating or updating an annotation.
type AnnotationInput struct {
	ShapeType   string         `json:"shape_type" validate:"shape_type"`
	Coordinates datatypes.JSON `json:"coordinates" validate:"required,json_array"`
	Label       string         `json:"label" validate:"required,max=200"`
	UserID      *uint          `json:"user_id"`
}

// AnnotationPatch carries the fields present in a request body.
// A nil Coordinates means the key was absent.
type AnnotationPatch struct {
	ShapeType   NullableString `json:"shape_type"`
	Coordinates datatypes.JSON `json:"coordinates"`
	Label       *string        `json:"label"`
	UserID      NullableID     `json:"user_id"`
}

// NullableID distinguishes an absent key from an explicit null.
type NullableID struct {
	Set bool
	ID  *uint
}

// NullableString distinguishes an absent key from an explicit null.
type NullableString struct {
	Set   bool
	Value *string
}

// StringValue returns a NullableString holding s.
func StringValue(s string) NullableString {
	return NullableString{Set: true, Value: &s}
}

// UnmarshalJSON only runs when the key is present in the body.
func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if strings.TrimSpace(string(data)) == "null" {
		n.Value = nil
		return nil
	}
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	n.Value = &value
	return nil
}

// UnmarshalJSON only runs when the key is present in the body.
func (n *NullableID) UnmarshalJSON(data []byte) error {
	n.Set = true
	if strings.TrimSpace(string(data)) == "null" {
		n.ID = nil
		return nil
	}
	var id uint
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	n.ID = &id
	return nil
}

// NewAnnotationInput returns the input a create request starts from.
func NewAnnotationInput() AnnotationInput {
	return AnnotationInput{ShapeType: db.ShapeRectangle}
}

// AnnotationInputFrom copies the client-settable fields of item.
func AnnotationInputFrom(item db.Annotation) AnnotationInput {
	return AnnotationInput{
		ShapeType:   item.ShapeType,
		Coordinates: item.Coordinates,
		Label:       item.Label,
		UserID:      item.UserID,
	}
}

// Apply overlays the present fields of p onto input.
func (p AnnotationPatch) Apply(input AnnotationInput) AnnotationInput {
	if p.ShapeType.Value != nil {
		input.ShapeType = *p.ShapeType.Value
	}
	if p.Coordinates != nil {
		input.Coordinates = p.Coordinates
	}
	if p.Label != nil {
		input.Label = *p.Label
	}
	if p.UserID.Set {
		input.UserID = p.UserID.ID
	}
	return input
}

// CheckNulls rejects keys the body set to null where null is not accepted.
func (p AnnotationPatch) CheckNulls() error {
	if p.ShapeType.Set && p.ShapeType.Value == nil {
		return NewValidationError("shape_type", notNullMessage)
	}
	return nil
}

func (p AnnotationPatch) requireFull() error {
	err := p.CheckNulls()
	if p.Coordinates == nil {
		err = mergeValidation(err, "coordinates", requiredMessage)
	}
	if p.Label == nil {
		err = mergeValidation(err, "label", requiredMessage)
	}
	return err
}

// NewAnnotationService creates an AnnotationService instance.
func NewAnnotationService(gdb *gorm.DB) *AnnotationService {
	return &AnnotationService{db: gdb, users: NewUserService(gdb)}
}

// List returns all annotations, most recently created first.
func (s *AnnotationService) List() ([]db.Annotation, error) {
	items := make([]db.Annotation, 0)
	if err := s.db.Order("created_at desc").Order("id desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches an annotation by id.
func (s *AnnotationService) Get(id uint) (*db.Annotation, error) {
	var item db.Annotation
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnnotationNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a new annotation.
func (s *AnnotationService) Create(input AnnotationInput) (*db.Annotation, error) {
	input = normalizeAnnotationInput(input)
	if err := s.validate(input); err != nil {
		return nil, err
	}

	item := db.Annotation{}
	assignAnnotationInput(&item, input)

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update handles a full update: coordinates and label must be present in
// patch, shape_type and user_id left out keep their stored values.
func (s *AnnotationService) Update(id uint, patch AnnotationPatch) (*db.Annotation, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := patch.requireFull(); err != nil {
		return nil, err
	}
	return s.save(item, patch.Apply(AnnotationInputFrom(*item)))
}

// Patch modifies only the fields present in patch.
func (s *AnnotationService) Patch(id uint, patch AnnotationPatch) (*db.Annotation, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := patch.CheckNulls(); err != nil {
		return nil, err
	}
	return s.save(item, patch.Apply(AnnotationInputFrom(*item)))
}

func (s *AnnotationService) save(item *db.Annotation, input AnnotationInput) (*db.Annotation, error) {
	input = normalizeAnnotationInput(input)
	if err := s.validate(input); err != nil {
		return nil, err
	}

	assignAnnotationInput(item, input)
	if err := s.db.Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes an annotation.
func (s *AnnotationService) Delete(id uint) error {
	item, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.db.Delete(item).Error
}

func (s *AnnotationService) validate(input AnnotationInput) error {
	err := validateInput(input)
	var verr *ValidationError
	if err != nil && !errors.As(err, &verr) {
		return err
	}

	if input.UserID != nil {
		exists, qerr := s.users.Exists(*input.UserID)
		if qerr != nil {
			return qerr
		}
		if !exists {
			err = mergeValidation(err, "user_id", fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", *input.UserID))
		}
	}
	return err
}

func normalizeAnnotationInput(input AnnotationInput) AnnotationInput {
	input.ShapeType = strings.TrimSpace(input.ShapeType)
	input.Label = strings.TrimSpace(input.Label)
	return input
}

func assignAnnotationInput(item *db.Annotation, input AnnotationInput) {
	item.ShapeType = input.ShapeType
	item.Coordinates = input.Coordinates
	item.Label = input.Label
	item.UserID = input.UserID
}
