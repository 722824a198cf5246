package mocks

import (
	"context"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/mock"
)

type DoctorRepository struct {
	mock.Mock
}

func (m *DoctorRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) error {
	args := m.Called(ctx, doctor)
	return args.Error(0)
}

func (m *DoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	doctor, _ := args.Get(0).(*models.Doctor)
	return doctor, args.Error(1)
}

func (m *DoctorRepository) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	args := m.Called(ctx, email)
	doctor, _ := args.Get(0).(*models.Doctor)
	return doctor, args.Error(1)
}

func (m *DoctorRepository) FindAll(ctx context.Context, filter *requests.DoctorFilter) ([]models.Doctor, int, error) {
	args := m.Called(ctx, filter)
	doctors, _ := args.Get(0).([]models.Doctor)
	return doctors, args.Int(1), args.Error(2)
}

func (m *DoctorRepository) FindIDsByApprovalStatus(ctx context.Context, status string) ([]string, error) {
	args := m.Called(ctx, status)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

func (m *DoctorRepository) FindRecommendable(ctx context.Context, specialty string) ([]models.Doctor, error) {
	args := m.Called(ctx, specialty)
	doctors, _ := args.Get(0).([]models.Doctor)
	return doctors, args.Error(1)
}

func (m *DoctorRepository) UpdateDoctor(ctx context.Context, doctor *models.Doctor) error {
	args := m.Called(ctx, doctor)
	return args.Error(0)
}

type PatientRepository struct {
	mock.Mock
}

func (m *PatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *PatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *PatientRepository) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
	args := m.Called(ctx, email)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *PatientRepository) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *PatientRepository) AddFavoriteDoctor(ctx context.Context, patientID, doctorID string) (bool, error) {
	args := m.Called(ctx, patientID, doctorID)
	return args.Bool(0), args.Error(1)
}

func (m *PatientRepository) RemoveFavoriteDoctor(ctx context.Context, patientID, doctorID string) (bool, error) {
	args := m.Called(ctx, patientID, doctorID)
	return args.Bool(0), args.Error(1)
}

type LocationRepository struct {
	mock.Mock
}

func (m *LocationRepository) CreateLocation(ctx context.Context, location *models.HospitalLocation) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func (m *LocationRepository) FindByID(ctx context.Context, doctorID, locationID string) (*models.HospitalLocation, error) {
	args := m.Called(ctx, doctorID, locationID)
	location, _ := args.Get(0).(*models.HospitalLocation)
	return location, args.Error(1)
}

func (m *LocationRepository) FindByIDs(ctx context.Context, locationIDs []string) ([]models.HospitalLocation, error) {
	args := m.Called(ctx, locationIDs)
	locations, _ := args.Get(0).([]models.HospitalLocation)
	return locations, args.Error(1)
}

func (m *LocationRepository) FindActiveByDoctorID(ctx context.Context, doctorID string) ([]models.HospitalLocation, error) {
	args := m.Called(ctx, doctorID)
	locations, _ := args.Get(0).([]models.HospitalLocation)
	return locations, args.Error(1)
}

func (m *LocationRepository) UpdateLocation(ctx context.Context, location *models.HospitalLocation) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

type SlotRepository struct {
	mock.Mock
}

func (m *SlotRepository) CreateSlots(ctx context.Context, slots []models.AppointmentSlot) error {
	args := m.Called(ctx, slots)
	return args.Error(0)
}

func (m *SlotRepository) FindByID(ctx context.Context, doctorID, slotID string) (*models.AppointmentSlot, error) {
	args := m.Called(ctx, doctorID, slotID)
	slot, _ := args.Get(0).(*models.AppointmentSlot)
	return slot, args.Error(1)
}

func (m *SlotRepository) FindActiveByDoctorID(ctx context.Context, doctorID string) ([]models.AppointmentSlot, error) {
	args := m.Called(ctx, doctorID)
	slots, _ := args.Get(0).([]models.AppointmentSlot)
	return slots, args.Error(1)
}

func (m *SlotRepository) FindActiveByDoctorAndDay(ctx context.Context, doctorID, dayOfWeek string) ([]models.AppointmentSlot, error) {
	args := m.Called(ctx, doctorID, dayOfWeek)
	slots, _ := args.Get(0).([]models.AppointmentSlot)
	return slots, args.Error(1)
}

func (m *SlotRepository) CountActiveByLocationID(ctx context.Context, locationID string) (int64, error) {
	args := m.Called(ctx, locationID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *SlotRepository) DeactivateSlot(ctx context.Context, doctorID, slotID string) error {
	args := m.Called(ctx, doctorID, slotID)
	return args.Error(0)
}

type AppointmentRepository struct {
	mock.Mock
}

func (m *AppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *AppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *AppointmentRepository) FindAll(ctx context.Context, filter *requests.AppointmentFilter) ([]models.Appointment, int, error) {
	args := m.Called(ctx, filter)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Int(1), args.Error(2)
}

func (m *AppointmentRepository) FindBookedTimes(ctx context.Context, doctorID, date, mode, excludeAppointmentID string) ([]string, error) {
	args := m.Called(ctx, doctorID, date, mode, excludeAppointmentID)
	times, _ := args.Get(0).([]string)
	return times, args.Error(1)
}

func (m *AppointmentRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

type FeedbackRepository struct {
	mock.Mock
}

func (m *FeedbackRepository) CreateFeedback(ctx context.Context, feedback *models.Feedback) error {
	args := m.Called(ctx, feedback)
	return args.Error(0)
}

func (m *FeedbackRepository) FindByID(ctx context.Context, feedbackID string) (*models.Feedback, error) {
	args := m.Called(ctx, feedbackID)
	feedback, _ := args.Get(0).(*models.Feedback)
	return feedback, args.Error(1)
}

func (m *FeedbackRepository) FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Feedback, error) {
	args := m.Called(ctx, appointmentID)
	feedback, _ := args.Get(0).(*models.Feedback)
	return feedback, args.Error(1)
}

func (m *FeedbackRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Feedback, error) {
	args := m.Called(ctx, doctorID)
	feedback, _ := args.Get(0).([]models.Feedback)
	return feedback, args.Error(1)
}

func (m *FeedbackRepository) UpdateFeedback(ctx context.Context, feedback *models.Feedback) error {
	args := m.Called(ctx, feedback)
	return args.Error(0)
}

func (m *FeedbackRepository) StatsByDoctorIDs(ctx context.Context, doctorIDs []string) (map[string]models.FeedbackStats, error) {
	args := m.Called(ctx, doctorIDs)
	stats, _ := args.Get(0).(map[string]models.FeedbackStats)
	return stats, args.Error(1)
}
