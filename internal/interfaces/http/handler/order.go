package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/streetmarket/backend/internal/application/trade"
	"github.com/streetmarket/backend/internal/domain/shared"
)

// UpdateOrderStatusRequest represents the request body for a status
// overwrite. The value is stored as given.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,max=50"`
}

// OrderHandler handles checkout and order HTTP requests
type OrderHandler struct {
	BaseHandler
	orderService *trade.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *trade.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// Place converts the caller's cart into a pending order
func (h *OrderHandler) Place(c *gin.Context) {
	vendorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	order, err := h.orderService.PlaceOrder(c.Request.Context(), trade.PlaceOrderInput{
		VendorID: vendorID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, order)
}

// ListByVendor returns a vendor's orders with items and product details.
// Vendors may only read their own orders; admins may read any vendor's.
func (h *OrderHandler) ListByVendor(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	callerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	if callerID != vendorID && getRole(c) != "admin" {
		h.Forbidden(c, "Cannot access another vendor's orders")
		return
	}

	orders, err := h.orderService.GetVendorOrders(c.Request.Context(), vendorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, orders)
}

// ListBySupplier returns orders containing the supplier's products, with
// items filtered to that supplier's lines
func (h *OrderHandler) ListBySupplier(c *gin.Context) {
	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID")
		return
	}

	callerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	if callerID != supplierID && getRole(c) != "admin" {
		h.Forbidden(c, "Cannot access another supplier's orders")
		return
	}

	orders, err := h.orderService.GetSupplierOrders(c.Request.Context(), supplierID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, orders)
}

// ListAll returns every order for the admin overview, item details omitted
func (h *OrderHandler) ListAll(c *gin.Context) {
	orders, err := h.orderService.GetAllOrders(c.Request.Context(), shared.Filter{})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, orders)
}

// UpdateStatus overwrites an order's status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	err = h.orderService.UpdateOrderStatus(c.Request.Context(), trade.UpdateOrderStatusInput{
		OrderID: orderID,
		Status:  req.Status,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Order status updated"})
}
