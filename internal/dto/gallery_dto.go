package dto

import (
	"time"

	"siwatours/internal/entity"
)

type GalleryImageRequest struct {
	URL      string `json:"url" validate:"required,url"`
	Title    string `json:"title" validate:"required"`
	AltText  string `json:"alt_text" validate:"omitempty,max=255"`
	Category string `json:"category" validate:"required"`
}

type GalleryImageResponse struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	AltText   string    `json:"alt_text,omitempty"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func GalleryImageResponseFromEntity(image *entity.GalleryImage) GalleryImageResponse {
	return GalleryImageResponse{
		ID:        image.ID.String(),
		URL:       image.URL,
		Title:     image.Title,
		AltText:   image.AltText,
		Category:  string(image.Category),
		CreatedAt: image.CreatedAt,
		UpdatedAt: image.UpdatedAt,
	}
}

func GalleryImageResponsesFromEntities(images []entity.GalleryImage) []GalleryImageResponse {
	responses := make([]GalleryImageResponse, 0, len(images))
	for i := range images {
		responses = append(responses, GalleryImageResponseFromEntity(&images[i]))
	}
	return responses
}
