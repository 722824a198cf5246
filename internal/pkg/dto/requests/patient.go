package requests

type CreatePatient struct {
	Email       string `json:"email" validate:"required"`
	Password    string `json:"password" validate:"required,password"`
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Phone       string `json:"phone" validate:"required,phone_number"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,date_only"`
}

type UpdatePatient struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,phone_number"`
	Gender      *string `json:"gender,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty" validate:"omitempty,date_only"`
}
