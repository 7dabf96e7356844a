package model

import (
	"aperture/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "packages"
	EntityName = "package"

	FieldID           = "id"
	FieldName         = "name"
	FieldDuration     = "duration"
	FieldDeliverables = "deliverables"
	FieldHighlights   = "highlights"
	FieldIsPopular    = "is_popular"
)

type Package struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Duration     string         `db:"duration"`
	Deliverables pq.StringArray `db:"deliverables"`
	Highlights   pq.StringArray `db:"highlights"`
	IsPopular    bool           `db:"is_popular"`
	model.Metadata
}
