package domain

// UserProfile is the snapshot returned by the marketplace API on auth events.
// It is replaced wholesale, never partially mutated.
type UserProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role"` // user | dealer
}

func (u *UserProfile) IsDealer() bool { return u != nil && u.Role == "dealer" }
