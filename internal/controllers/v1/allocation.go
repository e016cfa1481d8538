package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketwise/backend/internal/budget"
	"github.com/pocketwise/backend/internal/httputil"
	"github.com/pocketwise/backend/internal/models"
	"github.com/pocketwise/backend/internal/money"
	"github.com/pocketwise/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AllocationResponse struct {
	Data Allocation `json:"data"`
}

type AllocationListResponse struct {
	Data []Allocation `json:"data"`
}

// Allocation is the API representation of an allocation.
type Allocation struct {
	models.Allocation
	Amount decimal.Decimal `json:"amount" example:"400"`
}

func newAllocation(allocation models.Allocation) Allocation {
	return Allocation{
		Allocation: allocation,
		Amount:     allocation.Amount.Decimal(),
	}
}

// AllocationEditable are the fields of an allocation that can be set on
// create and update.
type AllocationEditable struct {
	CategoryID uuid.UUID       `json:"categoryId" example:"053a99d7-b0f9-47ac-9b26-63100a0f0bc5"`
	Month      types.Month     `json:"month" example:"2026-08-01T00:00:00Z"`
	Amount     decimal.Decimal `json:"amount" example:"400"`
}

func (e AllocationEditable) model() (models.Allocation, error) {
	amount, err := money.FromDecimal(e.Amount)
	if err != nil {
		return models.Allocation{}, err
	}

	return models.Allocation{
		CategoryID: e.CategoryID,
		Month:      e.Month,
		Amount:     amount,
	}, nil
}

// MoveEditable moves money between two categories within a month.
type MoveEditable struct {
	FromCategoryID uuid.UUID       `json:"fromCategoryId" example:"053a99d7-b0f9-47ac-9b26-63100a0f0bc5"`
	ToCategoryID   uuid.UUID       `json:"toCategoryId" example:"a6f2c67d-6c54-4b01-90e6-d701748f0851"`
	Month          types.Month     `json:"month" example:"2026-08-01T00:00:00Z"`
	Amount         decimal.Decimal `json:"amount" example:"50"`
}

// RegisterAllocationRoutes registers the routes for allocations with
// the RouterGroup that is passed.
func RegisterAllocationRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsAllocations)
		r.GET("", GetAllocations)
		r.POST("", CreateAllocation)
	}

	// Moving money between categories
	{
		r.OPTIONS("/move", OptionsAllocationMove)
		r.POST("/move", MoveAllocation)
	}

	// Allocation with ID
	{
		r.OPTIONS("/:id", OptionsAllocationDetail)
		r.GET("/:id", GetAllocation)
		r.PATCH("/:id", UpdateAllocation)
		r.DELETE("/:id", DeleteAllocation)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Router			/v1/allocations [options]
func OptionsAllocations(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Router			/v1/allocations/move [options]
func OptionsAllocationMove(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/allocations/{id} [options]
func OptionsAllocationDetail(c *gin.Context) {
	_, ok := parseID(c)
	if !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create allocation
// @Description	Assigns money to a category for a month
// @Tags			Allocations
// @Produce		json
// @Success		201	{object}	AllocationResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500		{object}	httpError
// @Param			allocation	body		AllocationEditable	true	"Allocation"
// @Router			/v1/allocations [post]
func CreateAllocation(c *gin.Context) {
	var editable AllocationEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	allocation, err := editable.model()
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Create(&allocation).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, AllocationResponse{Data: newAllocation(allocation)})
}

// @Summary		Get allocations
// @Description	Returns a list of allocations
// @Tags			Allocations
// @Produce		json
// @Success		200	{object}	AllocationListResponse
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			month		query	string	false	"Filter by month in YYYY-MM format"
// @Param			category	query	string	false	"Filter by category ID"
// @Router			/v1/allocations [get]
func GetAllocations(c *gin.Context) {
	q := models.DB.Order("month ASC")

	if raw, ok := c.GetQuery("month"); ok {
		month, err := types.ParseMonth(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidMonth.Error()})
			return
		}

		q = q.Where(&models.Allocation{Month: month})
	}

	if raw, ok := c.GetQuery("category"); ok {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
			return
		}

		q = q.Where(&models.Allocation{CategoryID: categoryID})
	}

	var allocations []models.Allocation
	err := q.Find(&allocations).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	// When there are no resources, we want an empty list, not null
	data := make([]Allocation, 0, len(allocations))
	for _, allocation := range allocations {
		data = append(data, newAllocation(allocation))
	}

	c.JSON(http.StatusOK, AllocationListResponse{Data: data})
}

// @Summary		Get allocation
// @Description	Returns a specific allocation
// @Tags			Allocations
// @Produce		json
// @Success		200	{object}	AllocationResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/allocations/{id} [get]
func GetAllocation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var allocation models.Allocation
	err := models.DB.First(&allocation, id).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, AllocationResponse{Data: newAllocation(allocation)})
}

// @Summary		Update allocation
// @Description	Updates an existing allocation. Only values to be updated need to be specified.
// @Tags			Allocations
// @Produce		json
// @Success		200	{object}	AllocationResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id			path		string				true	"ID formatted as string"
// @Param			allocation	body		AllocationEditable	true	"Allocation"
// @Router			/v1/allocations/{id} [patch]
func UpdateAllocation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var allocation models.Allocation
	err := models.DB.First(&allocation, id).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, AllocationEditable{})
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var editable AllocationEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	update, err := editable.model()
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Model(&allocation).Select("", updateFields...).Updates(update).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, AllocationResponse{Data: newAllocation(allocation)})
}

// @Summary		Delete allocation
// @Description	Deletes an allocation
// @Tags			Allocations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/allocations/{id} [delete]
func DeleteAllocation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var allocation models.Allocation
	err := models.DB.First(&allocation, id).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&allocation).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Move money
// @Description	Moves money from one category's allocation to another's within a month. Allocations that do not exist yet are created with the delta as amount.
// @Tags			Allocations
// @Produce		json
// @Success		200	{object}	AllocationListResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			move	body		MoveEditable	true	"Move"
// @Router			/v1/allocations/move [post]
func MoveAllocation(c *gin.Context) {
	var editable MoveEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if editable.Month.IsZero() {
		c.JSON(http.StatusBadRequest, httpError{Error: models.ErrAllocationMonthMissing.Error()})
		return
	}

	amount, err := money.FromDecimal(editable.Amount)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	move, err := budget.MoveMoney(editable.FromCategoryID, editable.ToCategoryID, amount)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var updated []models.Allocation
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		deltas := []struct {
			categoryID uuid.UUID
			delta      money.Cents
		}{
			{editable.FromCategoryID, move.FromDelta},
			{editable.ToCategoryID, move.ToDelta},
		}

		for _, d := range deltas {
			allocation, err := applyAllocationDelta(tx, d.categoryID, editable.Month, d.delta)
			if err != nil {
				return err
			}

			updated = append(updated, allocation)
		}

		return nil
	})
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	data := make([]Allocation, 0, len(updated))
	for _, allocation := range updated {
		data = append(data, newAllocation(allocation))
	}

	c.JSON(http.StatusOK, AllocationListResponse{Data: data})
}

// applyAllocationDelta adds a delta to the allocation of a category for a
// month, creating the allocation if it does not exist yet.
func applyAllocationDelta(tx *gorm.DB, categoryID uuid.UUID, month types.Month, delta money.Cents) (models.Allocation, error) {
	var allocation models.Allocation

	err := tx.
		Where(models.Allocation{
			CategoryID: categoryID,
			Month:      month,
		}).
		FirstOrCreate(&allocation).
		Error
	if err != nil {
		return models.Allocation{}, err
	}

	allocation.Amount += delta

	err = tx.Model(&allocation).Select("Amount").Updates(allocation).Error
	if err != nil {
		return models.Allocation{}, err
	}

	return allocation, nil
}
