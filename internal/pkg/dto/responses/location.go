package responses

import "time"

type Location struct {
	ID        string    `json:"id"`
	DoctorID  string    `json:"doctor_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type LocationInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}
