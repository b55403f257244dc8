package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"heath-crm-backend/models"
	"heath-crm-backend/services"
	"heath-crm-backend/store"
	"heath-crm-backend/utils"
)

// CreateOrderInput defines the expected JSON structure for creating an order
type CreateOrderInput struct {
	Date       string  `json:"date" binding:"required"`
	CustomerID string  `json:"customerId" binding:"required"`
	Product    string  `json:"product" binding:"required"`
	Quantity   int     `json:"quantity" binding:"omitempty,min=1"`
	Amount     float64 `json:"amount" binding:"omitempty,min=0"`
	Paid       bool    `json:"paid"`
	Notes      string  `json:"notes"`
}

// UpdateOrderInput defines the expected JSON structure for updating an order
type UpdateOrderInput struct {
	Date       *string  `json:"date"`
	CustomerID *string  `json:"customerId"`
	Product    *string  `json:"product"`
	Quantity   *int     `json:"quantity" binding:"omitempty,min=1"`
	Amount     *float64 `json:"amount" binding:"omitempty,min=0"`
	Paid       *bool    `json:"paid"`
	Notes      *string  `json:"notes"`
}

type OrderController struct {
	Store    *store.Facade
	Identity *services.IdentityService
}

// GetOrders retrieves all orders for the acting user
func (oc *OrderController) GetOrders(c *gin.Context) {
	owner, err := oc.Identity.Resolve(c)
	if err != nil {
		utils.RespondWithStoreError(c, err)
		return
	}

	orders, err := oc.Store.GetOrders(c.Request.Context(), owner)
	if err != nil {
		utils.RespondWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// CreateOrder creates a new order
func (oc *OrderController) CreateOrder(c *gin.Context) {
	owner, err := oc.Identity.Resolve(c)
	if err != nil {
		utils.RespondWithStoreError(c, err)
		return
	}

	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidateDate(input.Date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	order := models.Order{
		Date:       input.Date,
		CustomerID: input.CustomerID,
		Product:    input.Product,
		Quantity:   input.Quantity,
		Amount:     input.Amount,
		Paid:       input.Paid,
		Notes:      input.Notes,
	}

	created, err := oc.Store.AddOrder(c.Request.Context(), owner, &order)
	if err != nil {
		utils.RespondWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateOrder updates an existing order; omitted fields keep their values
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	owner, err := oc.Identity.Resolve(c)
	if err != nil {
		utils.RespondWithStoreError(c, err)
		return
	}

	var input UpdateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Retrieve existing order
	order, err := oc.Store.GetOrder(c.Request.Context(), owner, c.Param("id"))
	if err != nil {
		utils.RespondWithStoreError(c, err)
		return
	}

	// Update fields if provided
	if input.Date != nil {
		if !utils.ValidateDate(*input.Date) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		order.Date = *input.Date
	}
	if input.CustomerID != nil {
		order.CustomerID = *input.CustomerID
	}
	if input.Product != nil {
		order.Product = *input.Product
	}
	if input.Quantity != nil {
		order.Quantity = *input.Quantity
	}
	if input.Amount != nil {
		order.Amount = *input.Amount
	}
	if input.Paid != nil {
		order.Paid = *input.Paid
	}
	if input.Notes != nil {
		order.Notes = *input.Notes
	}

	updated, err := oc.Store.UpdateOrder(c.Request.Context(), owner, order.ID, order)
	if err != nil {
		utils.RespondWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteOrder removes an order
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	owner, err := oc.Identity.Resolve(c)
	if err != nil {
		utils.RespondWithStoreError(c, err)
		return
	}

	if err := oc.Store.DeleteOrder(c.Request.Context(), owner, c.Param("id")); err != nil {
		utils.RespondWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
