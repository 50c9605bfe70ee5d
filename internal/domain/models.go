package domain

type Dealer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Vehicle struct {
	ID           string   `json:"id"`
	Make         string   `json:"make"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	Price        int      `json:"price"`
	Mileage      int      `json:"mileage"`
	FuelType     string   `json:"fuelType"`     // Petrol | Diesel | Hybrid | Electric
	Transmission string   `json:"transmission"` // Manual | Automatic | CVT
	BodyType     string   `json:"bodyType"`     // SUV | Sedan | Hatchback | Coupe | Convertible
	Engine       string   `json:"engine"`
	Image        string   `json:"image"`
	Features     []string `json:"features"`
	Condition    string   `json:"condition"` // New | Used
	Badge        string   `json:"badge,omitempty"`
	Dealer       Dealer   `json:"dealer"`
}

// PaginationState is taken verbatim from each listings response; it is never
// computed client-side.
type PaginationState struct {
	TotalPages    int  `json:"totalPages"`
	TotalVehicles int  `json:"totalVehicles"`
	HasNextPage   bool `json:"hasNextPage"`
	HasPrevPage   bool `json:"hasPrevPage"`
}

// Inquiry is the write-only contact payload posted for a vehicle.
type Inquiry struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Message     string `json:"message"`
	Subject     string `json:"subject"`
	VehicleID   string `json:"vehicleId"`
	InquiryType string `json:"inquiryType"`
}

// Contact is a received inquiry as the API returns it to a dealer.
type Contact struct {
	ID        string         `json:"_id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	Subject   string         `json:"subject"`
	Message   string         `json:"message"`
	Vehicle   ContactVehicle `json:"vehicleId"`
	DealerID  string         `json:"dealerId"`
	Status    string         `json:"status"`
	IsRead    bool           `json:"isRead"`
	CreatedAt string         `json:"createdAt"`
}

type ContactVehicle struct {
	ID    string `json:"_id"`
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year"`
}

type Brand struct {
	ID           string
	Name         string
	Logo         string
	VehicleCount int
}

type Testimonial struct {
	ID      string
	Name    string
	Role    string
	Content string
	Rating  int
	Avatar  string
}

type BlogPost struct {
	ID       string
	Title    string
	Excerpt  string
	Image    string
	Category string
	Author   string
	Date     string
	ReadTime string
}
