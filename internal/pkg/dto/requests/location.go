package requests

type CreateLocation struct {
	Name    string `json:"name" validate:"required,max=120"`
	Address string `json:"address" validate:"required,max=255"`
	Phone   string `json:"phone" validate:"omitempty,phone_number"`
}

type UpdateLocation struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Address *string `json:"address,omitempty" validate:"omitempty,min=1,max=255"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,phone_number"`
}
