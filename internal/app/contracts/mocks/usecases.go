package mocks

import (
	"context"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type DoctorUsecase struct {
	mock.Mock
}

func (m *DoctorUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error) {
	args := m.Called(ctx, request)
	doctor, _ := args.Get(0).(*responses.Doctor)
	return doctor, args.Error(1)
}

func (m *DoctorUsecase) GetDoctorByID(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	args := m.Called(ctx, doctorID)
	doctor, _ := args.Get(0).(*responses.Doctor)
	return doctor, args.Error(1)
}

func (m *DoctorUsecase) GetDoctors(ctx context.Context, filter *requests.DoctorFilter) ([]responses.Doctor, int, error) {
	args := m.Called(ctx, filter)
	doctors, _ := args.Get(0).([]responses.Doctor)
	return doctors, args.Int(1), args.Error(2)
}

func (m *DoctorUsecase) UpdateDoctorSettings(ctx context.Context, doctorID string, request *requests.UpdateDoctorSettings) (*responses.Doctor, error) {
	args := m.Called(ctx, doctorID, request)
	doctor, _ := args.Get(0).(*responses.Doctor)
	return doctor, args.Error(1)
}

func (m *DoctorUsecase) UpdateDoctorApproval(ctx context.Context, doctorID string, request *requests.UpdateDoctorApproval) (*responses.Doctor, error) {
	args := m.Called(ctx, doctorID, request)
	doctor, _ := args.Get(0).(*responses.Doctor)
	return doctor, args.Error(1)
}

func (m *DoctorUsecase) GetSpecialties(ctx context.Context) *responses.Specialties {
	args := m.Called(ctx)
	specialties, _ := args.Get(0).(*responses.Specialties)
	return specialties
}

func (m *DoctorUsecase) GetRecommendedDoctors(ctx context.Context, specialty string) ([]responses.RecommendedDoctor, error) {
	args := m.Called(ctx, specialty)
	doctors, _ := args.Get(0).([]responses.RecommendedDoctor)
	return doctors, args.Error(1)
}

func (m *DoctorUsecase) BlockDoctor(ctx context.Context, doctorID string, request *requests.BlockDoctor) (*responses.Doctor, error) {
	args := m.Called(ctx, doctorID, request)
	doctor, _ := args.Get(0).(*responses.Doctor)
	return doctor, args.Error(1)
}

func (m *DoctorUsecase) UnblockDoctor(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	args := m.Called(ctx, doctorID)
	doctor, _ := args.Get(0).(*responses.Doctor)
	return doctor, args.Error(1)
}

type SlotUsecase struct {
	mock.Mock
}

func (m *SlotUsecase) CreateSlot(ctx context.Context, doctorID string, request *requests.CreateSlot) ([]responses.Slot, error) {
	args := m.Called(ctx, doctorID, request)
	slots, _ := args.Get(0).([]responses.Slot)
	return slots, args.Error(1)
}

func (m *SlotUsecase) GetSlots(ctx context.Context, doctorID string) ([]responses.Slot, error) {
	args := m.Called(ctx, doctorID)
	slots, _ := args.Get(0).([]responses.Slot)
	return slots, args.Error(1)
}

func (m *SlotUsecase) DeleteSlot(ctx context.Context, doctorID, slotID string) error {
	args := m.Called(ctx, doctorID, slotID)
	return args.Error(0)
}

func (m *SlotUsecase) GetAvailability(ctx context.Context, query *requests.AvailabilityQuery) (*responses.Availability, error) {
	args := m.Called(ctx, query)
	availability, _ := args.Get(0).(*responses.Availability)
	return availability, args.Error(1)
}

func (m *SlotUsecase) CheckBookable(ctx context.Context, in *contracts.CheckBookableInput) (*contracts.CheckBookableOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*contracts.CheckBookableOutput)
	return out, args.Error(1)
}

func (m *SlotUsecase) InvalidateAvailability(ctx context.Context, doctorID string) error {
	args := m.Called(ctx, doctorID)
	return args.Error(0)
}

func (m *SlotUsecase) ExportSchedule(ctx context.Context, doctorID string) (*responses.ScheduleExport, error) {
	args := m.Called(ctx, doctorID)
	export, _ := args.Get(0).(*responses.ScheduleExport)
	return export, args.Error(1)
}

type AppointmentUsecase struct {
	mock.Mock
}

func (m *AppointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error) {
	args := m.Called(ctx, request)
	appointment, _ := args.Get(0).(*responses.Appointment)
	return appointment, args.Error(1)
}

func (m *AppointmentUsecase) GetAppointmentByID(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	appointment, _ := args.Get(0).(*responses.Appointment)
	return appointment, args.Error(1)
}

func (m *AppointmentUsecase) GetAppointments(ctx context.Context, filter *requests.AppointmentFilter) ([]responses.Appointment, int, error) {
	args := m.Called(ctx, filter)
	appointments, _ := args.Get(0).([]responses.Appointment)
	return appointments, args.Int(1), args.Error(2)
}

func (m *AppointmentUsecase) UpdateAppointmentStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error) {
	args := m.Called(ctx, appointmentID, request)
	appointment, _ := args.Get(0).(*responses.Appointment)
	return appointment, args.Error(1)
}

func (m *AppointmentUsecase) CancelAppointment(ctx context.Context, appointmentID string, request *requests.CancelAppointment) (*responses.Appointment, error) {
	args := m.Called(ctx, appointmentID, request)
	appointment, _ := args.Get(0).(*responses.Appointment)
	return appointment, args.Error(1)
}

func (m *AppointmentUsecase) RescheduleAppointment(ctx context.Context, appointmentID string, request *requests.RescheduleAppointment) (*responses.Appointment, error) {
	args := m.Called(ctx, appointmentID, request)
	appointment, _ := args.Get(0).(*responses.Appointment)
	return appointment, args.Error(1)
}

type PatientUsecase struct {
	mock.Mock
}

func (m *PatientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error) {
	args := m.Called(ctx, request)
	patient, _ := args.Get(0).(*responses.Patient)
	return patient, args.Error(1)
}

func (m *PatientUsecase) GetPatientByID(ctx context.Context, patientID string) (*responses.Patient, error) {
	args := m.Called(ctx, patientID)
	patient, _ := args.Get(0).(*responses.Patient)
	return patient, args.Error(1)
}

func (m *PatientUsecase) UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient) (*responses.Patient, error) {
	args := m.Called(ctx, patientID, request)
	patient, _ := args.Get(0).(*responses.Patient)
	return patient, args.Error(1)
}

func (m *PatientUsecase) AddFavoriteDoctor(ctx context.Context, patientID, doctorID string) error {
	args := m.Called(ctx, patientID, doctorID)
	return args.Error(0)
}

func (m *PatientUsecase) RemoveFavoriteDoctor(ctx context.Context, patientID, doctorID string) error {
	args := m.Called(ctx, patientID, doctorID)
	return args.Error(0)
}

func (m *PatientUsecase) GetFavoriteDoctors(ctx context.Context, patientID string) ([]responses.Doctor, error) {
	args := m.Called(ctx, patientID)
	doctors, _ := args.Get(0).([]responses.Doctor)
	return doctors, args.Error(1)
}

type LocationUsecase struct {
	mock.Mock
}

func (m *LocationUsecase) CreateLocation(ctx context.Context, doctorID string, request *requests.CreateLocation) (*responses.Location, error) {
	args := m.Called(ctx, doctorID, request)
	location, _ := args.Get(0).(*responses.Location)
	return location, args.Error(1)
}

func (m *LocationUsecase) GetLocations(ctx context.Context, doctorID string) ([]responses.Location, error) {
	args := m.Called(ctx, doctorID)
	locations, _ := args.Get(0).([]responses.Location)
	return locations, args.Error(1)
}

func (m *LocationUsecase) UpdateLocation(ctx context.Context, doctorID, locationID string, request *requests.UpdateLocation) (*responses.Location, error) {
	args := m.Called(ctx, doctorID, locationID, request)
	location, _ := args.Get(0).(*responses.Location)
	return location, args.Error(1)
}

func (m *LocationUsecase) DeleteLocation(ctx context.Context, doctorID, locationID string) error {
	args := m.Called(ctx, doctorID, locationID)
	return args.Error(0)
}

type FeedbackUsecase struct {
	mock.Mock
}

func (m *FeedbackUsecase) CreateFeedback(ctx context.Context, request *requests.CreateFeedback) (*responses.Feedback, error) {
	args := m.Called(ctx, request)
	feedback, _ := args.Get(0).(*responses.Feedback)
	return feedback, args.Error(1)
}

func (m *FeedbackUsecase) GetFeedbackByID(ctx context.Context, feedbackID string) (*responses.Feedback, error) {
	args := m.Called(ctx, feedbackID)
	feedback, _ := args.Get(0).(*responses.Feedback)
	return feedback, args.Error(1)
}

func (m *FeedbackUsecase) GetFeedbackByAppointmentID(ctx context.Context, appointmentID string) (*responses.Feedback, error) {
	args := m.Called(ctx, appointmentID)
	feedback, _ := args.Get(0).(*responses.Feedback)
	return feedback, args.Error(1)
}

func (m *FeedbackUsecase) GetDoctorFeedback(ctx context.Context, doctorID string) (*responses.DoctorFeedback, error) {
	args := m.Called(ctx, doctorID)
	feedback, _ := args.Get(0).(*responses.DoctorFeedback)
	return feedback, args.Error(1)
}

func (m *FeedbackUsecase) ReplyFeedback(ctx context.Context, feedbackID string, request *requests.ReplyFeedback) (*responses.Feedback, error) {
	args := m.Called(ctx, feedbackID, request)
	feedback, _ := args.Get(0).(*responses.Feedback)
	return feedback, args.Error(1)
}
