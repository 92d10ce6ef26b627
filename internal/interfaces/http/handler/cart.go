package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/streetmarket/backend/internal/application/trade"
)

// AddToCartRequest represents the request body for adding a product to
// the cart. Re-adding a product overwrites the stored quantity.
type AddToCartRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// UpdateCartItemRequest represents the request body for a quantity overwrite
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// CartHandler handles vendor cart HTTP requests
type CartHandler struct {
	BaseHandler
	cartService *trade.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *trade.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// Get returns a vendor's cart with product details. Vendors may only read
// their own cart; admins may read any.
func (h *CartHandler) Get(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("vendorId"))
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
		h.Forbidden(c, "Cannot access another vendor's cart")
		return
	}

	items, err := h.cartService.GetCart(c.Request.Context(), vendorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, items)
}

// Add puts a product into the caller's cart
func (h *CartHandler) Add(c *gin.Context) {
	vendorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	item, err := h.cartService.AddToCart(c.Request.Context(), trade.AddToCartInput{
		VendorID:  vendorID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, item)
}

// Update overwrites the quantity of one of the caller's cart entries
func (h *CartHandler) Update(c *gin.Context) {
	vendorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	cartItemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid cart item ID")
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	err = h.cartService.UpdateCartItem(c.Request.Context(), trade.UpdateCartItemInput{
		CartItemID: cartItemID,
		VendorID:   vendorID,
		Quantity:   req.Quantity,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Cart item updated"})
}

// Remove deletes one of the caller's cart entries
func (h *CartHandler) Remove(c *gin.Context) {
	vendorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	cartItemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid cart item ID")
		return
	}

	err = h.cartService.RemoveCartItem(c.Request.Context(), trade.RemoveCartItemInput{
		CartItemID: cartItemID,
		VendorID:   vendorID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Cart item removed"})
}
