package models

import "telecare-service/internal/pkg/dto/responses"

type Patient struct {
	ID              string   `bson:"_id"`
	Email           string   `bson:"email"`
	Password        string   `bson:"password"`
	FirstName       string   `bson:"firstName"`
	LastName        string   `bson:"lastName"`
	Phone           string   `bson:"phone"`
	Gender          string   `bson:"gender,omitempty"`
	DateOfBirth     string   `bson:"dateOfBirth,omitempty"`
	FavoriteDoctors []string `bson:"favoriteDoctors"`
	TimeModel       `bson:",inline"`
}

func (p *Patient) HasFavorite(doctorID string) bool {
	for _, id := range p.FavoriteDoctors {
		if id == doctorID {
			return true
		}
	}
	return false
}

func (p *Patient) ToResponse() responses.Patient {
	favorites := p.FavoriteDoctors
	if favorites == nil {
		favorites = []string{}
	}
	return responses.Patient{
		ID:              p.ID,
		Email:           p.Email,
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		Phone:           p.Phone,
		Gender:          p.Gender,
		DateOfBirth:     p.DateOfBirth,
		FavoriteDoctors: favorites,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
