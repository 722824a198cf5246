package requests

type CreateFeedback struct {
	AppointmentID string `json:"appointment_id" validate:"required"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment" validate:"max=2000"`
}

type ReplyFeedback struct {
	Author string `json:"author" validate:"required,oneof=doctor patient"`
	Text   string `json:"text"`
}
