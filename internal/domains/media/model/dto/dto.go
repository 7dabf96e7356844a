package dto

import (
	"aperture/internal/domains/media/model"
	"aperture/shared"
	"aperture/shared/instagram"
	gModel "aperture/shared/model"
	"aperture/shared/timezone"

	"github.com/google/uuid"
)

type CreateMediaRequest struct {
	URL          string `json:"url"           validate:"required,url"`
	Type         string `json:"type"          validate:"required,oneof=image video"`
	Category     string `json:"category"      validate:"omitempty,max=100"`
	Title        string `json:"title"         validate:"omitempty,max=200"`
	ThumbnailURL string `json:"thumbnail_url" validate:"omitempty,url"`
}

func (c *CreateMediaRequest) ToModel() model.Media {
	return model.Media{
		ID:           uuid.NewString(),
		URL:          c.URL,
		Type:         c.Type,
		Category:     c.Category,
		Title:        c.Title,
		ThumbnailURL: c.ThumbnailURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

// UpdateMediaRequest patches a record. URL and ThumbnailURL are replace-only:
// empty keeps the stored blob. Category and Title are nil to keep the stored
// value and non-nil to overwrite it, an empty string included.
type UpdateMediaRequest struct {
	URL          string  `db:"url"           json:"url"           validate:"omitempty,url"`
	Category     *string `db:"category"      json:"category"      validate:"omitempty,max=100"`
	Title        *string `db:"title"         json:"title"         validate:"omitempty,max=200"`
	ThumbnailURL string  `db:"thumbnail_url" json:"thumbnail_url" validate:"omitempty,url"`
}

// MediaResponse carries EmbedURL for video records whose URL is an Instagram
// permalink, so clients can render the embed endpoint directly. Uploaded
// videos and images leave it empty.
type MediaResponse struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	EmbedURL     string `json:"embed_url,omitempty"`
	Type         string `json:"type"`
	Category     string `json:"category"`
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnail_url"`
	gModel.Metadata
}

func (r *MediaResponse) FromModel(m model.Media) {
	r.ID = m.ID
	r.URL = m.URL
	r.Type = m.Type
	r.Category = m.Category
	r.Title = m.Title
	r.ThumbnailURL = m.ThumbnailURL
	r.Metadata = m.Metadata

	if m.Type == model.TypeVideo {
		if embed, ok := instagram.EmbedURL(m.URL); ok {
			r.EmbedURL = embed
		}
	}
}

type GetMediaResponse struct {
	Media     []MediaResponse `json:"media"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetMediaResponse) FromModels(models []model.Media, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Media = make([]MediaResponse, len(models))
	for i, m := range models {
		r.Media[i].FromModel(m)
	}
}
