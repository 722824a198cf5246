package models

import "telecare-service/internal/pkg/dto/responses"

type HospitalLocation struct {
	ID        string `bson:"_id"`
	DoctorID  string `bson:"doctorId"`
	Name      string `bson:"name"`
	Address   string `bson:"address"`
	Phone     string `bson:"phone,omitempty"`
	IsActive  bool   `bson:"isActive"`
	TimeModel `bson:",inline"`
}

func (l *HospitalLocation) Info() *responses.LocationInfo {
	return &responses.LocationInfo{Name: l.Name, Address: l.Address}
}

func (l *HospitalLocation) ToResponse() responses.Location {
	return responses.Location{
		ID:        l.ID,
		DoctorID:  l.DoctorID,
		Name:      l.Name,
		Address:   l.Address,
		Phone:     l.Phone,
		IsActive:  l.IsActive,
		CreatedAt: l.CreatedAt,
	}
}
