package responses

import "time"

type Patient struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Phone           string    `json:"phone"`
	Gender          string    `json:"gender,omitempty"`
	DateOfBirth     string    `json:"date_of_birth,omitempty"`
	FavoriteDoctors []string  `json:"favorite_doctors"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
