package model

import "aperture/shared/model"

const (
	TableName  = "gallery"
	EntityName = "media"

	FieldID           = "id"
	FieldURL          = "url"
	FieldType         = "type"
	FieldCategory     = "category"
	FieldTitle        = "title"
	FieldThumbnailURL = "thumbnail_url"

	TypeImage = "image"
	TypeVideo = "video"
)

type Media struct {
	ID           string `db:"id"`
	URL          string `db:"url"`
	Type         string `db:"type"`
	Category     string `db:"category"`
	Title        string `db:"title"`
	ThumbnailURL string `db:"thumbnail_url"`
	model.Metadata
}
