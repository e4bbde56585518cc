package dto

// MessageResponse represents a standard success acknowledgment
type MessageResponse struct {
	Message string `json:"message"`
}
