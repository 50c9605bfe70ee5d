package services

import (
	"context"
	"strings"

	"boxcars/internal/api"
	"boxcars/internal/domain"
)

// SearchService runs the hero quick search: a single-shot, non-paginated query.
// It shares no state with the listings paginator.
type SearchService struct {
	API *api.Client
}

type SearchFilter struct {
	Make       string
	Model      string
	PriceRange string // "A-B" bracket or "100000+"
}

// DecodePriceRange splits a bracket string into min/max query values. The
// literal "100000+" has no upper bound; for "A-B" each half is included only
// if non-empty, so open-ended ranges work on either side.
func DecodePriceRange(s string) (minPrice, maxPrice string) {
	if s == "" {
		return "", ""
	}
	if s == "100000+" {
		return "100000", ""
	}
	lo, hi, _ := strings.Cut(s, "-")
	return lo, hi
}

func (s *SearchService) Search(ctx context.Context, f SearchFilter) ([]domain.Vehicle, error) {
	q := api.VehicleQuery{Make: f.Make, Model: f.Model}
	q.MinPrice, q.MaxPrice = DecodePriceRange(f.PriceRange)
	list, err := s.API.ListVehicles(ctx, q)
	if err != nil {
		return nil, err
	}
	return list.Vehicles, nil
}
