package models

import "telecare-service/internal/pkg/dto/responses"

// AppointmentSlot is a recurring weekly availability window.
type AppointmentSlot struct {
	ID         string `bson:"_id"`
	DoctorID   string `bson:"doctorId"`
	DayOfWeek  string `bson:"dayOfWeek"`
	StartTime  string `bson:"startTime"`
	EndTime    string `bson:"endTime"`
	Mode       string `bson:"mode"`
	LocationID string `bson:"locationId,omitempty"`
	IsActive   bool   `bson:"isActive"`
	TimeModel  `bson:",inline"`
}

func (s *AppointmentSlot) ToResponse(location *HospitalLocation) responses.Slot {
	out := responses.Slot{
		ID:         s.ID,
		DoctorID:   s.DoctorID,
		DayOfWeek:  s.DayOfWeek,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
		Mode:       s.Mode,
		LocationID: s.LocationID,
		IsActive:   s.IsActive,
		CreatedAt:  s.CreatedAt,
	}
	if location != nil {
		out.Location = location.Info()
	}
	return out
}
