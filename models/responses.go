package models

// MessageResponse is the body the board API returns for delete operations.
type MessageResponse struct {
	Detail string `json:"detail"`
}
