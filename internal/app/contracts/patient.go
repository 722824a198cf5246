package contracts

import (
	"context"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/dto/responses"
)

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) error
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindByEmail(ctx context.Context, email string) (*models.Patient, error)
	UpdatePatient(ctx context.Context, patient *models.Patient) error
	// AddFavoriteDoctor reports false when the doctor was already a favorite.
	AddFavoriteDoctor(ctx context.Context, patientID, doctorID string) (bool, error)
	// RemoveFavoriteDoctor reports false when the doctor was not a favorite.
	RemoveFavoriteDoctor(ctx context.Context, patientID, doctorID string) (bool, error)
}

type PatientUsecase interface {
	CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error)
	GetPatientByID(ctx context.Context, patientID string) (*responses.Patient, error)
	UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient) (*responses.Patient, error)
	AddFavoriteDoctor(ctx context.Context, patientID, doctorID string) error
	RemoveFavoriteDoctor(ctx context.Context, patientID, doctorID string) error
	GetFavoriteDoctors(ctx context.Context, patientID string) ([]responses.Doctor, error)
}
