package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aperture/internal/domains/media/model"
	"aperture/internal/domains/media/model/dto"
)

func TestMediaResponse_FromModel(t *testing.T) {
	tests := []struct {
		name         string
		media        model.Media
		wantEmbedURL string
	}{
		{
			name: "video with reel permalink derives the embed endpoint",
			media: model.Media{
				ID:   "id-1",
				URL:  "https://www.instagram.com/reel/ABC123/",
				Type: model.TypeVideo,
			},
			wantEmbedURL: "https://www.instagram.com/p/ABC123/embed",
		},
		{
			name: "video with post permalink derives the embed endpoint",
			media: model.Media{
				ID:   "id-2",
				URL:  "https://www.instagram.com/p/XYZ789/",
				Type: model.TypeVideo,
			},
			wantEmbedURL: "https://www.instagram.com/p/XYZ789/embed",
		},
		{
			name: "uploaded video keeps embed url empty",
			media: model.Media{
				ID:   "id-3",
				URL:  "https://cdn.example.com/gallery-videos/1-film.mp4",
				Type: model.TypeVideo,
			},
			wantEmbedURL: "",
		},
		{
			name: "image keeps embed url empty",
			media: model.Media{
				ID:   "id-4",
				URL:  "https://cdn.example.com/gallery-images/1-a.jpg",
				Type: model.TypeImage,
			},
			wantEmbedURL: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var res dto.MediaResponse
			res.FromModel(tt.media)

			assert.Equal(t, tt.media.ID, res.ID)
			assert.Equal(t, tt.media.URL, res.URL)
			assert.Equal(t, tt.wantEmbedURL, res.EmbedURL)
		})
	}
}
