package dto

type CreateMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Body    string `json:"body" binding:"required"`
}

type MessageStatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}
