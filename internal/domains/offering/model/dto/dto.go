package dto

import (
	"aperture/internal/domains/offering/model"
	"aperture/shared"
	gModel "aperture/shared/model"
	"aperture/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreatePackageRequest struct {
	Name         string   `json:"name"         validate:"required,min=2,max=100"`
	Duration     string   `json:"duration"     validate:"omitempty,max=100"`
	Deliverables []string `json:"deliverables" validate:"omitempty"`
	Highlights   []string `json:"highlights"   validate:"omitempty"`
	IsPopular    bool     `json:"is_popular"`
}

func (c *CreatePackageRequest) ToModel() model.Package {
	return model.Package{
		ID:           uuid.NewString(),
		Name:         c.Name,
		Duration:     c.Duration,
		Deliverables: pq.StringArray(c.Deliverables),
		Highlights:   pq.StringArray(c.Highlights),
		IsPopular:    c.IsPopular,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

// UpdatePackageRequest patches a package. Duration is nil to keep the stored
// value and non-nil to overwrite it, an empty string included; Deliverables
// and Highlights overwrite whenever the slice is non-nil.
type UpdatePackageRequest struct {
	Name         string         `db:"name"         json:"name"         validate:"omitempty,min=2,max=100"`
	Duration     *string        `db:"duration"     json:"duration"     validate:"omitempty,max=100"`
	Deliverables pq.StringArray `db:"deliverables" json:"deliverables" validate:"omitempty"`
	Highlights   pq.StringArray `db:"highlights"   json:"highlights"   validate:"omitempty"`
	IsPopular    *bool          `db:"is_popular"   json:"is_popular"`
}

type PackageResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Duration     string   `json:"duration"`
	Deliverables []string `json:"deliverables"`
	Highlights   []string `json:"highlights"`
	IsPopular    bool     `json:"is_popular"`
	gModel.Metadata
}

func (r *PackageResponse) FromModel(m model.Package) {
	r.ID = m.ID
	r.Name = m.Name
	r.Duration = m.Duration
	r.Deliverables = []string(m.Deliverables)
	r.Highlights = []string(m.Highlights)
	r.IsPopular = m.IsPopular
	r.Metadata = m.Metadata
}

type GetPackagesResponse struct {
	Packages  []PackageResponse `json:"packages"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPackagesResponse) FromModels(models []model.Package, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Packages = make([]PackageResponse, len(models))
	for i, m := range models {
		r.Packages[i].FromModel(m)
	}
}
