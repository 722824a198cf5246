package contracts

import (
	"context"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/dto/responses"
)

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctor *models.Doctor) error
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindByEmail(ctx context.Context, email string) (*models.Doctor, error)
	FindAll(ctx context.Context, filter *requests.DoctorFilter) ([]models.Doctor, int, error)
	FindIDsByApprovalStatus(ctx context.Context, status string) ([]string, error)
	// FindRecommendable returns approved, unblocked doctors whose specialty matches case-insensitively.
	FindRecommendable(ctx context.Context, specialty string) ([]models.Doctor, error)
	UpdateDoctor(ctx context.Context, doctor *models.Doctor) error
}

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error)
	GetDoctorByID(ctx context.Context, doctorID string) (*responses.Doctor, error)
	GetDoctors(ctx context.Context, filter *requests.DoctorFilter) ([]responses.Doctor, int, error)
	UpdateDoctorSettings(ctx context.Context, doctorID string, request *requests.UpdateDoctorSettings) (*responses.Doctor, error)
	UpdateDoctorApproval(ctx context.Context, doctorID string, request *requests.UpdateDoctorApproval) (*responses.Doctor, error)
	GetSpecialties(ctx context.Context) *responses.Specialties
	GetRecommendedDoctors(ctx context.Context, specialty string) ([]responses.RecommendedDoctor, error)
	BlockDoctor(ctx context.Context, doctorID string, request *requests.BlockDoctor) (*responses.Doctor, error)
	UnblockDoctor(ctx context.Context, doctorID string) (*responses.Doctor, error)
}
