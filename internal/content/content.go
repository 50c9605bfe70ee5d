// Package content is the static marketing data rendered by the presentation
// sections. It contributes no business logic.
package content

import "boxcars/internal/domain"

var Brands = []domain.Brand{
	{ID: "1", Name: "Audi", Logo: "/static/brands/audi.svg", VehicleCount: 150},
	{ID: "2", Name: "BMW", Logo: "/static/brands/bmw.svg", VehicleCount: 120},
	{ID: "3", Name: "Ford", Logo: "/static/brands/ford.svg", VehicleCount: 200},
	{ID: "4", Name: "Mercedes Benz", Logo: "/static/brands/mercedes.svg", VehicleCount: 95},
	{ID: "5", Name: "Peugeot", Logo: "/static/brands/peugeot.svg", VehicleCount: 80},
	{ID: "6", Name: "Volkswagen", Logo: "/static/brands/vw.svg", VehicleCount: 160},
}

var Testimonials = []domain.Testimonial{
	{
		ID:      "1",
		Name:    "Ali Tufan",
		Role:    "Designer",
		Content: "I'd suggest Macklin Motors Nissan Glasgow South to a friend because I had great service from my salesman Patrick and all of the team.",
		Rating:  5,
		Avatar:  "https://images.pexels.com/photos/1040880/pexels-photo-1040880.jpeg?auto=compress&cs=tinysrgb&w=150",
	},
	{
		ID:      "2",
		Name:    "Sarah Johnson",
		Role:    "Marketing Manager",
		Content: "Exceptional service and quality vehicles. The team went above and beyond to help me find the perfect car for my needs.",
		Rating:  5,
		Avatar:  "https://images.pexels.com/photos/1065084/pexels-photo-1065084.jpeg?auto=compress&cs=tinysrgb&w=150",
	},
	{
		ID:      "3",
		Name:    "Mike Chen",
		Role:    "Software Engineer",
		Content: "Professional, transparent, and honest. I've bought two cars from BoxCars and both experiences were outstanding.",
		Rating:  5,
		Avatar:  "https://images.pexels.com/photos/1681010/pexels-photo-1681010.jpeg?auto=compress&cs=tinysrgb&w=150",
	},
}

var BlogPosts = []domain.BlogPost{
	{
		ID:       "1",
		Title:    "2024 BMW A1 PINA XB7 with exclusive details, extraordinary",
		Excerpt:  "Discover the latest BMW model with cutting-edge technology and luxurious features.",
		Image:    "https://images.pexels.com/photos/3802510/pexels-photo-3802510.jpeg?auto=compress&cs=tinysrgb&w=800",
		Category: "Sound",
		Author:   "Admin",
		Date:     "November 22, 2023",
		ReadTime: "5 min read",
	},
	{
		ID:       "2",
		Title:    "BMW X6 M50i is designed to exceed your sportiest.",
		Excerpt:  "Experience the perfect blend of luxury and performance in the new BMW X6 M50i.",
		Image:    "https://images.pexels.com/photos/3764984/pexels-photo-3764984.jpeg?auto=compress&cs=tinysrgb&w=800",
		Category: "Accessories",
		Author:   "Admin",
		Date:     "November 22, 2023",
		ReadTime: "4 min read",
	},
	{
		ID:       "3",
		Title:    "BMW X5 Gold 2024 Sport Review: Light on Sport",
		Excerpt:  "A comprehensive review of the BMW X5 Gold 2024 and its performance capabilities.",
		Image:    "https://images.pexels.com/photos/1719647/pexels-photo-1719647.jpeg?auto=compress&cs=tinysrgb&w=800",
		Category: "Exterior",
		Author:   "Admin",
		Date:     "November 22, 2023",
		ReadTime: "6 min read",
	},
}

// PriceBrackets drive the hero search's price select, in display order.
var PriceBrackets = []struct {
	Value string
	Label string
}{
	{"0-25000", "$0 - $25,000"},
	{"25000-50000", "$25,000 - $50,000"},
	{"50000-100000", "$50,000 - $100,000"},
	{"100000+", "$100,000+"},
}
