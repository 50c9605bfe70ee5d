package services

import (
	"context"
	"fmt"

	"boxcars/internal/api"
	"boxcars/internal/domain"
)

// InquiryService posts vehicle inquiries. No deduplication and no idempotency
// key; repeated submits create repeated inquiries server-side.
type InquiryService struct {
	API *api.Client
}

type InquiryForm struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

func (s *InquiryService) Submit(ctx context.Context, vehicle *domain.Vehicle, f InquiryForm) error {
	return s.API.SubmitInquiry(ctx, domain.Inquiry{
		Name:        f.Name,
		Email:       f.Email,
		Phone:       f.Phone,
		Message:     f.Message,
		Subject:     fmt.Sprintf("Inquiry about %s %s", vehicle.Make, vehicle.Model),
		VehicleID:   vehicle.ID,
		InquiryType: "vehicle_inquiry",
	})
}
