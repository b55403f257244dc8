package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"heath-crm-backend/models"
	"heath-crm-backend/services"
	"heath-crm-backend/store"
	"heath-crm-backend/utils"
)

// CreateScheduleInput defines the expected JSON structure for creating a schedule
type CreateScheduleInput struct {
	Title      string `json:"title" binding:"required"`
	Date       string `json:"date" binding:"required"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Type       string `json:"type" binding:"omitempty,oneof=customer partner other"`
	CustomerID string `json:"customerId"`
	Notes      string `json:"notes"`
}

type ScheduleController struct {
	Store    *store.Facade
	Identity *services.IdentityService
}

// GetSchedules retrieves the acting user's schedules, optionally narrowed to
// one calendar day via ?date=YYYY-MM-DD (or ?date=today)
func (sc *ScheduleController) GetSchedules(c *gin.Context) {
	owner, err := sc.Identity.Resolve(c)
	if err != nil {
		utils.RespondWithStoreError(c, err)
		return
	}

	date := c.Query("date")
	if date == "today" {
		date = utils.Today()
	}
	if date != "" && !utils.ValidateDate(date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	var schedules []models.Schedule
	if date != "" {
		schedules, err = sc.Store.GetSchedulesByDay(c.Request.Context(), owner, date)
	} else {
		schedules, err = sc.Store.GetSchedules(c.Request.Context(), owner)
	}
	if err != nil {
		utils.RespondWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedules)
}

// CreateSchedule creates a new schedule entry
func (sc *ScheduleController) CreateSchedule(c *gin.Context) {
	owner, err := sc.Identity.Resolve(c)
	if err != nil {
		utils.RespondWithStoreError(c, err)
		return
	}

	var input CreateScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidateDate(input.Date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}
	if !utils.ValidateTimeOfDay(input.StartTime) || !utils.ValidateTimeOfDay(input.EndTime) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid time, expected HH:MM")
		return
	}

	schedule := models.Schedule{
		Title:      input.Title,
		Date:       input.Date,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		Type:       input.Type,
		CustomerID: input.CustomerID,
		Notes:      input.Notes,
	}

	created, err := sc.Store.AddSchedule(c.Request.Context(), owner, &schedule)
	if err != nil {
		utils.RespondWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// DeleteSchedule removes a schedule entry
func (sc *ScheduleController) DeleteSchedule(c *gin.Context) {
	owner, err := sc.Identity.Resolve(c)
	if err != nil {
		utils.RespondWithStoreError(c, err)
		return
	}

	if err := sc.Store.DeleteSchedule(c.Request.Context(), owner, c.Param("id")); err != nil {
		utils.RespondWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted successfully"})
}
