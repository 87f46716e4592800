package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ims-platform/inventory-system/internal/api/metrics"
	"github.com/ims-platform/inventory-system/internal/core/ports"
)

const idempotencyKeyHeader = "Idempotency-Key"

// OrderHandler handles HTTP requests for orders and the product catalog.
type OrderHandler struct {
	orderService ports.OrderService
}

func NewOrderHandler(orderService ports.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List returns all orders, newest first. An optional ?status= filter
// restricts the result to one lifecycle state.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status"  Enums(PENDING, COMPLETED, REJECTED)
// @Success      200     {object}  apiResponse
// @Failure      400     {object}  errorResponse
// @Router       /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	status := c.QueryParam("status")
	if status == "" {
		orders, err := h.orderService.List(c.Request().Context())
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, success("Orders retrieved successfully", orders))
	}

	orders, err := h.orderService.ListByStatus(c.Request().Context(), status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success("Orders retrieved successfully", orders))
}

// Create places a new order. When the request carries an Idempotency-Key
// header already seen within the replay window, the original result is
// returned with 200 instead of creating a duplicate.
//
// @Summary      Create an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string              false  "Replay protection key"
// @Param        body             body      createOrderRequest  true   "Order data"
// @Success      201              {object}  apiResponse{data=createOrderResponse}
// @Success      200              {object}  apiResponse{data=createOrderResponse}
// @Failure      400              {object}  errorResponse
// @Failure      404              {object}  errorResponse
// @Router       /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("Invalid request payload"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("Validation failed", err.Error()))
	}

	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	result, err := h.orderService.Create(c.Request().Context(), ports.CreateOrderInput{
		Description:    req.Description,
		ProductID:      req.ProductID,
		Quantity:       req.Quantity,
		CompanyName:    req.CompanyName,
		AgentID:        req.AgentID,
		CreatedBy:      userID,
		IdempotencyKey: strings.TrimSpace(c.Request().Header.Get(idempotencyKeyHeader)),
	})
	if err != nil {
		return err
	}

	body := createOrderResponse{OrderID: result.OrderID, Status: string(result.Status)}
	if result.AlreadyExisted {
		return c.JSON(http.StatusOK, success("Order already created", body))
	}

	metrics.OrdersCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, success("Order created successfully", body))
}

// UpdateStatus transitions an order to a new lifecycle state.
//
// @Summary      Update an order's status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                       true  "Order ID"
// @Param        body  body      updateOrderStatusRequest  true  "New status"
// @Success      200   {object}  apiResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("Invalid request payload"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("Validation failed", err.Error()))
	}

	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.orderService.UpdateStatus(c.Request().Context(), id, req.Status, userID); err != nil {
		return err
	}

	metrics.OrderStatusUpdatesTotal.WithLabelValues(strings.ToUpper(req.Status)).Inc()
	return c.JSON(http.StatusOK, success("Order status updated successfully", nil))
}

// Delete removes an order permanently.
//
// @Summary      Delete an order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Order ID"
// @Success      200  {object}  apiResponse
// @Failure      404  {object}  errorResponse
// @Router       /orders/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.orderService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success("Order deleted successfully", nil))
}

// Statistics returns aggregate order counts per status.
//
// @Summary      Order statistics
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  apiResponse
// @Router       /orders/statistics [get]
func (h *OrderHandler) Statistics(c echo.Context) error {
	stats, err := h.orderService.Statistics(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success("Statistics retrieved successfully", stats))
}

// ListProducts returns the active product catalog for the order form.
//
// @Summary      List orderable products
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  apiResponse
// @Router       /orders/products [get]
func (h *OrderHandler) ListProducts(c echo.Context) error {
	products, err := h.orderService.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success("Products retrieved successfully", products))
}
