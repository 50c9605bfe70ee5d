package services

import (
	"context"

	"boxcars/internal/api"
	"boxcars/internal/domain"
)

const VehiclesPerPage = 5

const (
	TabInStock  = "In Stock"
	TabNewCars  = "New Cars"
	TabUsedCars = "Used Cars"
)

// Tabs in display order for the listings grid.
var Tabs = []string{TabInStock, TabNewCars, TabUsedCars}

func ValidTab(tab string) bool {
	for _, t := range Tabs {
		if t == tab {
			return true
		}
	}
	return false
}

// Paginator holds the listings grid state: active filter tab, 1-based page,
// and the last response's vehicles plus pagination metadata. Transitions go
// through Select/NextPage/PrevPage; Refresh then issues exactly one fetch for
// the resulting (tab, page) tuple.
type Paginator struct {
	ActiveTab   string
	CurrentPage int
	Vehicles    []domain.Vehicle
	Pagination  domain.PaginationState
}

func NewPaginator() *Paginator {
	return &Paginator{ActiveTab: TabInStock, CurrentPage: 1}
}

// Select applies a combined tab+page transition. A tab change always resets
// the page to 1 and wins over the page argument, so a single logical change
// never yields two distinct fetch states.
func (p *Paginator) Select(tab string, page int) {
	if ValidTab(tab) && tab != p.ActiveTab {
		p.ActiveTab = tab
		p.CurrentPage = 1
		return
	}
	if page >= 1 {
		p.CurrentPage = page
	}
}

// NextPage is a no-op when the last response said there is no next page.
func (p *Paginator) NextPage() {
	if p.Pagination.HasNextPage {
		p.CurrentPage++
	}
}

// PrevPage is a no-op on page 1.
func (p *Paginator) PrevPage() {
	if p.Pagination.HasPrevPage && p.CurrentPage > 1 {
		p.CurrentPage--
	}
}

// NextPageNumber is the link target for the next-page arrow; it stays on the
// current page when there is no next page.
func (p *Paginator) NextPageNumber() int {
	if p.Pagination.HasNextPage {
		return p.CurrentPage + 1
	}
	return p.CurrentPage
}

// PrevPageNumber mirrors NextPageNumber for the previous-page arrow.
func (p *Paginator) PrevPageNumber() int {
	if p.Pagination.HasPrevPage && p.CurrentPage > 1 {
		return p.CurrentPage - 1
	}
	return p.CurrentPage
}

// Condition maps the active tab onto the API's condition parameter; "In Stock"
// sends none.
func (p *Paginator) Condition() string {
	switch p.ActiveTab {
	case TabNewCars:
		return "New"
	case TabUsedCars:
		return "Used"
	default:
		return ""
	}
}

// PageNumbers lists 1..totalPages for the direct-jump buttons.
func (p *Paginator) PageNumbers() []int {
	nums := make([]int, 0, p.Pagination.TotalPages)
	for i := 1; i <= p.Pagination.TotalPages; i++ {
		nums = append(nums, i)
	}
	return nums
}

// ListingsService fetches one page of the grid per call.
type ListingsService struct {
	API *api.Client
}

// Refresh replaces the paginator's vehicles and pagination metadata from a
// single listings fetch. On failure the paginator is left untouched.
func (s *ListingsService) Refresh(ctx context.Context, p *Paginator) error {
	list, err := s.API.ListVehicles(ctx, api.VehicleQuery{
		Page:      p.CurrentPage,
		Limit:     VehiclesPerPage,
		Condition: p.Condition(),
	})
	if err != nil {
		return err
	}
	p.Vehicles = list.Vehicles
	p.Pagination = list.Pagination
	return nil
}
