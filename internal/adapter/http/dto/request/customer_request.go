package request

// CustomerCreateRequest is the payload for customer registration. Phone and
// address are optional.
type CustomerCreateRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}
