package request

type CreateOrder struct {
	EventID string `json:"event_id" validate:"required,uuid4"`
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
}

type UpdateOrderStatus struct {
	Status string `json:"status" validate:"required,oneof=pending paid failed challenge cancelled"`
}
