package handler

type createOrderRequest struct {
	Description string `json:"description" validate:"required"`
	ProductID   int64  `json:"productId"   validate:"required,gt=0"`
	Quantity    int    `json:"quantity"    validate:"required,gt=0"`
	CompanyName string `json:"companyName" validate:"required"`
	AgentID     *int64 `json:"agentId"`
}

type createOrderResponse struct {
	OrderID int64  `json:"orderId"`
	Status  string `json:"status"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
