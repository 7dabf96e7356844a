package dto

import (
	"time"

	"aperture/internal/domains/inquiry/model"
	"aperture/shared"
	"aperture/shared/timezone"

	"github.com/google/uuid"
)

type CreateInquiryRequest struct {
	Name      string `json:"name"       validate:"required,min=2,max=100"`
	Email     string `json:"email"      validate:"required,email"`
	EventDate string `json:"event_date" validate:"omitempty,max=100"`
	Message   string `json:"message"    validate:"omitempty,max=2000"`
}

func (c *CreateInquiryRequest) ToModel() model.Inquiry {
	return model.Inquiry{
		ID:        uuid.NewString(),
		Name:      c.Name,
		Email:     c.Email,
		EventDate: c.EventDate,
		Message:   c.Message,
		CreatedAt: timezone.Now(),
	}
}

type InquiryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	EventDate string    `json:"event_date"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *InquiryResponse) FromModel(m model.Inquiry) {
	r.ID = m.ID
	r.Name = m.Name
	r.Email = m.Email
	r.EventDate = m.EventDate
	r.Message = m.Message
	r.CreatedAt = m.CreatedAt
}

type GetInquiriesResponse struct {
	Inquiries []InquiryResponse `json:"inquiries"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetInquiriesResponse) FromModels(models []model.Inquiry, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Inquiries = make([]InquiryResponse, len(models))
	for i, m := range models {
		r.Inquiries[i].FromModel(m)
	}
}

// InquiryReceivedEvent is the payload published when a new lead arrives.
type InquiryReceivedEvent struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	EventDate string    `json:"event_date"`
	CreatedAt time.Time `json:"created_at"`
}

func (e *InquiryReceivedEvent) FromModel(m model.Inquiry) {
	e.ID = m.ID
	e.Name = m.Name
	e.Email = m.Email
	e.EventDate = m.EventDate
	e.CreatedAt = m.CreatedAt
}
