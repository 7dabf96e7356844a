package model

import (
	mediaModel "aperture/internal/domains/media/model"
	"aperture/shared/failure"
)

// Tab identifies one admin content section. Stills and cinema share the
// gallery table and differ only in the stored media type.
type Tab string

const (
	TabStills    Tab = "stills"
	TabCinema    Tab = "cinema"
	TabPackages  Tab = "packages"
	TabInquiries Tab = "inquiries"
)

func ParseTab(raw string) (Tab, error) {
	switch Tab(raw) {
	case TabStills, TabCinema, TabPackages, TabInquiries:
		return Tab(raw), nil
	default:
		return "", failure.Validation("unknown tab: " + raw)
	}
}

func (t Tab) IsMedia() bool {
	return t == TabStills || t == TabCinema
}

// MediaType returns the gallery type stored for records of this tab, or an
// empty string for non-media tabs.
func (t Tab) MediaType() string {
	switch t {
	case TabStills:
		return mediaModel.TypeImage
	case TabCinema:
		return mediaModel.TypeVideo
	default:
		return ""
	}
}
