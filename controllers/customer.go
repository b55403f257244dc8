package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"heath-crm-backend/models"
	"heath-crm-backend/services"
	"heath-crm-backend/store"
	"heath-crm-backend/utils"
)

// CreateCustomerInput defines the expected JSON structure for creating a customer
type CreateCustomerInput struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	City         string `json:"city" binding:"required"`
	District     string `json:"district" binding:"required"`
	Village      string `json:"village"`
	Neighborhood string `json:"neighborhood"`
	StreetType   string `json:"streetType"`
	StreetName   string `json:"streetName"`
	Lane         string `json:"lane"`
	Alley        string `json:"alley"`
	Number       string `json:"number"`
	Floor        string `json:"floor"`
	FullAddress  string `json:"fullAddress"`
	HealthStatus string `json:"healthStatus"`
	Medications  string `json:"medications"`
	Supplements  string `json:"supplements"`
	Avatar       string `json:"avatar"`
}

// UpdateCustomerInput defines the expected JSON structure for updating a customer
type UpdateCustomerInput struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	City         *string `json:"city"`
	District     *string `json:"district"`
	Village      *string `json:"village"`
	Neighborhood *string `json:"neighborhood"`
	StreetType   *string `json:"streetType"`
	StreetName   *string `json:"streetName"`
	Lane         *string `json:"lane"`
	Alley        *string `json:"alley"`
	Number       *string `json:"number"`
	Floor        *string `json:"floor"`
	FullAddress  *string `json:"fullAddress"`
	HealthStatus *string `json:"healthStatus"`
	Medications  *string `json:"medications"`
	Supplements  *string `json:"supplements"`
	Avatar       *string `json:"avatar"`
}

type CustomerController struct {
	Store    *store.Facade
	Identity *services.IdentityService
}

// CreateCustomer creates a new customer for the acting user
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	owner, err := cc.Identity.Resolve(c)
	if err != nil {
		utils.RespondWithStoreError(c, err)
		return
	}

	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Validate phone format
	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	customer := models.Customer{
		Name:         input.Name,
		Phone:        input.Phone,
		City:         input.City,
		District:     input.District,
		Village:      input.Village,
		Neighborhood: input.Neighborhood,
		StreetType:   input.StreetType,
		StreetName:   input.StreetName,
		Lane:         input.Lane,
		Alley:        input.Alley,
		Number:       input.Number,
		Floor:        input.Floor,
		FullAddress:  input.FullAddress,
		HealthStatus: input.HealthStatus,
		Medications:  input.Medications,
		Supplements:  input.Supplements,
		Avatar:       input.Avatar,
	}

	created, err := cc.Store.AddCustomer(c.Request.Context(), owner, &customer)
	if err != nil {
		utils.RespondWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetCustomers retrieves all customers for the acting user
func (cc *CustomerController) GetCustomers(c *gin.Context) {
	owner, err := cc.Identity.Resolve(c)
	if err != nil {
		utils.RespondWithStoreError(c, err)
		return
	}

	customers, err := cc.Store.GetCustomers(c.Request.Context(), owner)
	if err != nil {
		utils.RespondWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, customers)
}

// GetCustomer retrieves a specific customer by ID
func (cc *CustomerController) GetCustomer(c *gin.Context) {
	owner, err := cc.Identity.Resolve(c)
	if err != nil {
		utils.RespondWithStoreError(c, err)
		return
	}

	customer, err := cc.Store.GetCustomer(c.Request.Context(), owner, c.Param("id"))
	if err != nil {
		utils.RespondWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer updates an existing customer
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	owner, err := cc.Identity.Resolve(c)
	if err != nil {
		utils.RespondWithStoreError(c, err)
		return
	}

	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Retrieve existing customer
	customer, err := cc.Store.GetCustomer(c.Request.Context(), owner, c.Param("id"))
	if err != nil {
		utils.RespondWithStoreError(c, err)
		return
	}

	// Update fields if provided
	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		customer.Phone = *input.Phone
	}
	if input.City != nil {
		customer.City = *input.City
	}
	if input.District != nil {
		customer.District = *input.District
	}
	if input.Village != nil {
		customer.Village = *input.Village
	}
	if input.Neighborhood != nil {
		customer.Neighborhood = *input.Neighborhood
	}
	if input.StreetType != nil {
		customer.StreetType = *input.StreetType
	}
	if input.StreetName != nil {
		customer.StreetName = *input.StreetName
	}
	if input.Lane != nil {
		customer.Lane = *input.Lane
	}
	if input.Alley != nil {
		customer.Alley = *input.Alley
	}
	if input.Number != nil {
		customer.Number = *input.Number
	}
	if input.Floor != nil {
		customer.Floor = *input.Floor
	}
	if input.FullAddress != nil {
		customer.FullAddress = *input.FullAddress
	}
	if input.HealthStatus != nil {
		customer.HealthStatus = *input.HealthStatus
	}
	if input.Medications != nil {
		customer.Medications = *input.Medications
	}
	if input.Supplements != nil {
		customer.Supplements = *input.Supplements
	}
	if input.Avatar != nil {
		customer.Avatar = *input.Avatar
	}

	updated, err := cc.Store.UpdateCustomer(c.Request.Context(), owner, customer.ID, customer)
	if err != nil {
		utils.RespondWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteCustomer removes a customer permanently
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	owner, err := cc.Identity.Resolve(c)
	if err != nil {
		utils.RespondWithStoreError(c, err)
		return
	}

	if err := cc.Store.DeleteCustomer(c.Request.Context(), owner, c.Param("id")); err != nil {
		utils.RespondWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
