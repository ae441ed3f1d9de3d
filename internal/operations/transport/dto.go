package transport

type CreateOperationRequest struct {
	ID      int    `json:"id"`
	Date    *Date  `json:"date" validate:"required"`
	EirCode string `json:"eirCode" validate:"required,max=64"`
}

type OperationResponse struct {
	ID      int    `json:"id"`
	Date    Date   `json:"date"`
	EirCode string `json:"eirCode"`
}
