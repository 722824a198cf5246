package contracts

import (
	"context"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/dto/responses"
)

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) error
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindAll(ctx context.Context, filter *requests.AppointmentFilter) ([]models.Appointment, int, error)
	// FindBookedTimes lists the HH:MM times held by non-cancelled appointments.
	FindBookedTimes(ctx context.Context, doctorID, date, mode, excludeAppointmentID string) ([]string, error)
	UpdateAppointment(ctx context.Context, appointment *models.Appointment) error
}

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error)
	GetAppointmentByID(ctx context.Context, appointmentID string) (*responses.Appointment, error)
	GetAppointments(ctx context.Context, filter *requests.AppointmentFilter) ([]responses.Appointment, int, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error)
	CancelAppointment(ctx context.Context, appointmentID string, request *requests.CancelAppointment) (*responses.Appointment, error)
	RescheduleAppointment(ctx context.Context, appointmentID string, request *requests.RescheduleAppointment) (*responses.Appointment, error)
}
