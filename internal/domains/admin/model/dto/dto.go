package dto

import (
	"mime/multipart"
	"strings"

	offeringDto "aperture/internal/domains/offering/model/dto"
	"aperture/shared"

	"github.com/lib/pq"
)

const checkboxChecked = "on"

// Upload rules enforced on every editor file input before any blob leaves
// the process. Stills, covers and bulk batches carry images; cinema primary
// files are video uploads.
const (
	ImageFileRules = "mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=25"
	VideoFileRules = "mimetypes=video/mp4 video/quicktime video/webm,maxfilesize=512"
)

type FileInput struct {
	File   multipart.File
	Header *multipart.FileHeader
}

// MediaDraft is an editor submission for the stills and cinema tabs. ID set
// means edit; File and Cover are optional replacements; VideoLink carries a
// pasted embed blockquote or a bare link for cinema records.
type MediaDraft struct {
	ID        string
	Title     string
	Category  string
	VideoLink string
	File      *FileInput
	Cover     *FileInput
}

// PackageDraft carries the raw form values of the packages tab. Deliverables
// and Highlights are newline-delimited text, IsPopular is a checkbox value.
type PackageDraft struct {
	ID           string
	Name         string `validate:"required,min=2,max=100"`
	Duration     string
	Deliverables string
	Highlights   string
	IsPopular    string
}

func (d *PackageDraft) Popular() bool {
	value := strings.ToLower(strings.TrimSpace(d.IsPopular))

	return value == checkboxChecked || value == "true"
}

func (d *PackageDraft) ToCreateRequest() offeringDto.CreatePackageRequest {
	return offeringDto.CreatePackageRequest{
		Name:         d.Name,
		Duration:     d.Duration,
		Deliverables: shared.SplitLines(d.Deliverables),
		Highlights:   shared.SplitLines(d.Highlights),
		IsPopular:    d.Popular(),
	}
}

func (d *PackageDraft) ToUpdateRequest() offeringDto.UpdatePackageRequest {
	popular := d.Popular()

	return offeringDto.UpdatePackageRequest{
		Name:         d.Name,
		Duration:     &d.Duration,
		Deliverables: pq.StringArray(shared.SplitLines(d.Deliverables)),
		Highlights:   pq.StringArray(shared.SplitLines(d.Highlights)),
		IsPopular:    &popular,
	}
}

type BulkIngestRequest struct {
	BatchID  string `validate:"required"`
	Category string
	Files    []FileInput
}

type BulkProgressResponse struct {
	BatchID  string `json:"batch_id"`
	Progress int    `json:"progress"`
}

// TitleFromFilename derives a record title from the part of the original
// file name before the first dot.
func TitleFromFilename(name string) string {
	return strings.Split(name, ".")[0]
}
