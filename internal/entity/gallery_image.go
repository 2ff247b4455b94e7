package entity

import (
	"time"

	"github.com/google/uuid"
)

type GalleryCategory string

const (
	GalleryCategoryNature        GalleryCategory = "nature"
	GalleryCategoryCulture       GalleryCategory = "culture"
	GalleryCategoryAdventure     GalleryCategory = "adventure"
	GalleryCategoryAccommodation GalleryCategory = "accommodation"
	GalleryCategoryFood          GalleryCategory = "food"
)

func ParseGalleryCategory(value string) (GalleryCategory, bool) {
	switch GalleryCategory(value) {
	case GalleryCategoryNature, GalleryCategoryCulture, GalleryCategoryAdventure,
		GalleryCategoryAccommodation, GalleryCategoryFood:
		return GalleryCategory(value), true
	}
	return "", false
}

// GalleryImage holds media metadata only; upload and CDN delivery are
// handled outside this service.
type GalleryImage struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`

	URL      string          `gorm:"type:text;not null"`
	Title    string          `gorm:"type:varchar(255);not null"`
	AltText  string          `gorm:"type:varchar(255)"`
	Category GalleryCategory `gorm:"type:varchar(30);not null;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
