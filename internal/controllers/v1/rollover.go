package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketwise/backend/internal/budget"
	"github.com/pocketwise/backend/internal/httputil"
	"github.com/pocketwise/backend/internal/models"
	"github.com/pocketwise/backend/internal/types"
	"github.com/shopspring/decimal"
)

type RolloverListResponse struct {
	Data []Rollover `json:"data"`
}

// Rollover is a persisted carry-forward from one month into the next.
type Rollover struct {
	CategoryID uuid.UUID       `json:"categoryId" example:"053a99d7-b0f9-47ac-9b26-63100a0f0bc5"`
	FromMonth  types.Month     `json:"fromMonth" example:"2026-08-01T00:00:00Z"`
	ToMonth    types.Month     `json:"toMonth" example:"2026-09-01T00:00:00Z"`
	Amount     decimal.Decimal `json:"amount" example:"17.12"`
}

func newRollover(record models.RolloverRecord) Rollover {
	return Rollover{
		CategoryID: record.CategoryID,
		FromMonth:  record.FromMonth,
		ToMonth:    record.ToMonth,
		Amount:     record.Amount.Decimal(),
	}
}

// RegisterRolloverRoutes registers the routes for rollovers with
// the RouterGroup that is passed.
func RegisterRolloverRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsRollovers)
	r.GET("", GetRollovers)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Rollovers
// @Success		204
// @Router			/v1/rollovers [options]
func OptionsRollovers(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months/rollover [options]
func OptionsMonthRollover(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Roll a month over
// @Description	Closes the specified month: computes the closing balance of every category and persists it as the carry-forward into the following month. Rolling the same month over again refreshes the persisted amounts.
// @Tags			Months
// @Produce		json
// @Success		201	{object}	RolloverListResponse
// @Failure		400	{object}	httpError
// @Failure		500		{object}	httpError
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Router			/v1/months/rollover [post]
func RolloverMonth(c *gin.Context) {
	month, err := parseMonthQuery(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	input, err := models.BudgetInput(models.DB, month)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	rollovers := budget.ProcessRollover(budget.Calculate(input))

	err = models.SaveRollovers(models.DB, rollovers)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	records, err := models.RolloversInto(models.DB, month.Next())
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	data := make([]Rollover, 0, len(records))
	for _, record := range records {
		data = append(data, newRollover(record))
	}

	c.JSON(http.StatusCreated, RolloverListResponse{Data: data})
}

// @Summary		Get rollovers
// @Description	Returns the rollovers carrying money into the specified month
// @Tags			Rollovers
// @Produce		json
// @Success		200	{object}	RolloverListResponse
// @Failure		400	{object}	httpError
// @Failure		500		{object}	httpError
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Router			/v1/rollovers [get]
func GetRollovers(c *gin.Context) {
	month, err := parseMonthQuery(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	records, err := models.RolloversInto(models.DB, month)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	data := make([]Rollover, 0, len(records))
	for _, record := range records {
		data = append(data, newRollover(record))
	}

	c.JSON(http.StatusOK, RolloverListResponse{Data: data})
}
