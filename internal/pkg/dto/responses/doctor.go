package responses

import "time"

type Doctor struct {
	ID                  string     `json:"id"`
	Email               string     `json:"email"`
	FirstName           string     `json:"first_name"`
	MiddleName          string     `json:"middle_name,omitempty"`
	LastName            string     `json:"last_name"`
	FullName            string     `json:"full_name"`
	Gender              string     `json:"gender"`
	DateOfBirth         string     `json:"date_of_birth"`
	Specialty           string     `json:"specialty"`
	PendingSpecialty    string     `json:"pending_specialty,omitempty"`
	Phone               string     `json:"phone"`
	LicenseNumber       string     `json:"license_number"`
	YearsOfExperience   int        `json:"years_of_experience"`
	Bio                 string     `json:"bio,omitempty"`
	AppointmentInterval int        `json:"appointment_interval"`
	TimeFormat          string     `json:"time_format"`
	DateFormat          string     `json:"date_format"`
	ApprovalStatus      string     `json:"approval_status"`
	RejectionReason     string     `json:"rejection_reason,omitempty"`
	IsBlocked           bool       `json:"is_blocked"`
	BlockReason         string     `json:"block_reason,omitempty"`
	BlockedAt           *time.Time `json:"blocked_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// RecommendedDoctor is a doctor with the score it was ranked by.
type RecommendedDoctor struct {
	Doctor
	RankingScore  float64 `json:"ranking_score"`
	AverageRating float64 `json:"average_rating"`
	FeedbackCount int     `json:"feedback_count"`
}

type Specialties struct {
	Core  []string `json:"core"`
	Other string   `json:"other"`
}
