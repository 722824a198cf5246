package requests

type CreateDoctor struct {
	Email             string `json:"email" validate:"required,email"`
	Password          string `json:"password" validate:"required,password"`
	FirstName         string `json:"first_name" validate:"required"`
	MiddleName        string `json:"middle_name"`
	LastName          string `json:"last_name" validate:"required"`
	Gender            string `json:"gender" validate:"required"`
	DateOfBirth       string `json:"date_of_birth" validate:"required"`
	Specialty         string `json:"specialty" validate:"required,specialty"`
	CustomSpecialty   string `json:"custom_specialty"`
	Phone             string `json:"phone" validate:"required,phone_number"`
	LicenseNumber     string `json:"license_number" validate:"required"`
	YearsOfExperience string `json:"years_of_experience"`
	Bio               string `json:"bio"`
}

type UpdateDoctorSettings struct {
	FirstName           *string `json:"first_name,omitempty"`
	MiddleName          *string `json:"middle_name,omitempty"`
	LastName            *string `json:"last_name,omitempty"`
	Phone               *string `json:"phone,omitempty" validate:"omitempty,phone_number"`
	Bio                 *string `json:"bio,omitempty"`
	AppointmentInterval *int    `json:"appointment_interval,omitempty" validate:"omitempty,gte=5,lte=240"`
	TimeFormat          *string `json:"time_format,omitempty" validate:"omitempty,oneof=12h 24h"`
	DateFormat          *string `json:"date_format,omitempty" validate:"omitempty,oneof=DD-MM-YYYY MM-DD-YYYY YYYY-MM-DD"`
}

type UpdateDoctorApproval struct {
	Status          string `json:"status" validate:"required,oneof=approved rejected"`
	RejectionReason string `json:"rejection_reason"`
}

type BlockDoctor struct {
	Reason string `json:"block_reason" validate:"required"`
}

type DoctorFilter struct {
	Specialty      string
	ApprovalStatus string
	Pagination
}
