package contracts

import (
	"context"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/dto/responses"
)

type SlotRepository interface {
	CreateSlots(ctx context.Context, slots []models.AppointmentSlot) error
	FindByID(ctx context.Context, doctorID, slotID string) (*models.AppointmentSlot, error)
	FindActiveByDoctorID(ctx context.Context, doctorID string) ([]models.AppointmentSlot, error)
	FindActiveByDoctorAndDay(ctx context.Context, doctorID, dayOfWeek string) ([]models.AppointmentSlot, error)
	CountActiveByLocationID(ctx context.Context, locationID string) (int64, error)
	DeactivateSlot(ctx context.Context, doctorID, slotID string) error
}

// CheckBookableInput describes a requested appointment time.
type CheckBookableInput struct {
	Doctor     *models.Doctor
	Date       string
	Time       string
	Mode       string
	LocationID string
	// ExcludeAppointmentID keeps an appointment from blocking its own reschedule.
	ExcludeAppointmentID string
}

// CheckBookableOutput names the slot that offers the requested time.
type CheckBookableOutput struct {
	Slot models.AppointmentSlot
	Time string
}

type SlotUsecase interface {
	CreateSlot(ctx context.Context, doctorID string, request *requests.CreateSlot) ([]responses.Slot, error)
	GetSlots(ctx context.Context, doctorID string) ([]responses.Slot, error)
	DeleteSlot(ctx context.Context, doctorID, slotID string) error
	GetAvailability(ctx context.Context, query *requests.AvailabilityQuery) (*responses.Availability, error)
	CheckBookable(ctx context.Context, in *CheckBookableInput) (*CheckBookableOutput, error)
	InvalidateAvailability(ctx context.Context, doctorID string) error
	ExportSchedule(ctx context.Context, doctorID string) (*responses.ScheduleExport, error)
}
