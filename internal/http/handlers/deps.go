package handlers

import (
	"boxcars/internal/api"
	"boxcars/internal/services"
)

type Deps struct {
	HomeHandler     *HomeHandler
	ListingsHandler *ListingsHandler
	SearchHandler   *SearchHandler
	VehicleHandler  *VehicleHandler
	InquiryHandler  *InquiryHandler
	InboxHandler    *InboxHandler
}

func NewDeps(client *api.Client, auth *services.AuthService) *Deps {
	listingsSvc := &services.ListingsService{API: client}
	searchSvc := &services.SearchService{API: client}
	inquirySvc := &services.InquiryService{API: client}

	return &Deps{
		HomeHandler:     &HomeHandler{Listings: listingsSvc, Auth: auth},
		ListingsHandler: &ListingsHandler{Listings: listingsSvc, Auth: auth},
		SearchHandler:   &SearchHandler{Search: searchSvc, Auth: auth},
		VehicleHandler:  &VehicleHandler{API: client, Auth: auth},
		InquiryHandler:  &InquiryHandler{Inquiries: inquirySvc, Auth: auth},
		InboxHandler:    &InboxHandler{Auth: auth},
	}
}
