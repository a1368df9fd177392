package db

import (
	"errors"
	"slices"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Shape types accepted for Annotation.ShapeType.
const (
	ShapeRectangle = "rectangle"
	ShapeCircle    = "circle"
	ShapePolygon   = "polygon"
	ShapePoint     = "point"
)

// ErrInvalidShapeType is returned when an annotation is saved with a shape
// outside ShapeTypes.
var ErrInvalidShapeType = errors.New("invalid shape type")

var shapeTypes = []string{ShapeRectangle, ShapeCircle, ShapePolygon, ShapePoint}

// ShapeTypes returns the recognized shape types in display order.
func ShapeTypes() []string {
	return slices.Clone(shapeTypes)
}

// ValidShapeType reports whether shape is one of ShapeTypes.
func ValidShapeType(shape string) bool {
	return slices.Contains(shapeTypes, shape)
}

// Annotation 定义图片上的一个形状标注
type Annotation struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	ShapeType   string         `gorm:"size:20;not null;default:rectangle" json:"shape_type"`
	Coordinates datatypes.JSON `gorm:"not null" json:"coordinates"`
	Label       string         `gorm:"size:200;not null" json:"label"`
	UserID      *uint          `gorm:"index" json:"user_id"`
	User        *User          `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// BeforeSave keeps the stored shape inside the enum no matter which path
// writes the row.
func (a *Annotation) BeforeSave(tx *gorm.DB) error {
	if !ValidShapeType(a.ShapeType) {
		return ErrInvalidShapeType
	}
	return nil
}
