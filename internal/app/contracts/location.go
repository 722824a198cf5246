package contracts

import (
	"context"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/dto/responses"
)

type LocationRepository interface {
	CreateLocation(ctx context.Context, location *models.HospitalLocation) error
	FindByID(ctx context.Context, doctorID, locationID string) (*models.HospitalLocation, error)
	FindByIDs(ctx context.Context, locationIDs []string) ([]models.HospitalLocation, error)
	FindActiveByDoctorID(ctx context.Context, doctorID string) ([]models.HospitalLocation, error)
	UpdateLocation(ctx context.Context, location *models.HospitalLocation) error
}

type LocationUsecase interface {
	CreateLocation(ctx context.Context, doctorID string, request *requests.CreateLocation) (*responses.Location, error)
	GetLocations(ctx context.Context, doctorID string) ([]responses.Location, error)
	UpdateLocation(ctx context.Context, doctorID, locationID string, request *requests.UpdateLocation) (*responses.Location, error)
	DeleteLocation(ctx context.Context, doctorID, locationID string) error
}
