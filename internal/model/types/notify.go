package types

type NotifyRequest struct {
	Message string `json:"message" validate:"required"`
}

type UpdateDonationRequestStatusRequest struct {
	Status string `json:"status" validate:"required,caseinsensitiveoneof=pending approved rejected fulfilled"`
}
