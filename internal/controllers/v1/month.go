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

type MonthResponse struct {
	Data Month `json:"data"`
}

// Month is the computed budget state for one month.
type Month struct {
	Month         types.Month          `json:"month" example:"2026-08-01T00:00:00Z"`
	Income        decimal.Decimal      `json:"income" example:"5000"`
	Allocated     decimal.Decimal      `json:"allocated" example:"4200.50"`
	Activity      decimal.Decimal      `json:"activity" example:"-3310.27"`
	Overspent     decimal.Decimal      `json:"overspent" example:"12.99"`
	ReadyToAssign decimal.Decimal      `json:"readyToAssign" example:"799.50"`
	Groups        []CategoryGroupMonth `json:"groups"`
}

// CategoryGroupMonth sums the month data of a group's categories.
type CategoryGroupMonth struct {
	ID         uuid.UUID       `json:"id" example:"d1b9c51a-1b3f-4f2a-a0c7-9a6d21791b7e"`
	Name       string          `json:"name" example:"Fixed costs"`
	Allocated  decimal.Decimal `json:"allocated" example:"1200"`
	Activity   decimal.Decimal `json:"activity" example:"-1187.32"`
	Available  decimal.Decimal `json:"available" example:"12.68"`
	Categories []CategoryMonth `json:"categories"`
}

// CategoryMonth is the month data of a single category.
type CategoryMonth struct {
	ID             uuid.UUID       `json:"id" example:"053a99d7-b0f9-47ac-9b26-63100a0f0bc5"`
	Name           string          `json:"name" example:"Groceries"`
	Emoji          string          `json:"emoji" example:"🛒"`
	Allocated      decimal.Decimal `json:"allocated" example:"400"`
	Activity       decimal.Decimal `json:"activity" example:"-382.45"`
	CarryForward   decimal.Decimal `json:"carryForward" example:"17.12"`
	Available      decimal.Decimal `json:"available" example:"34.67"`
	TargetProgress *int            `json:"targetProgress" example:"87"`
}

// newMonth converts a computed month state into its API representation.
func newMonth(state budget.MonthState) Month {
	month := Month{
		Month:         state.Month,
		Income:        state.TotalIncome.Decimal(),
		Allocated:     state.TotalAllocated.Decimal(),
		Activity:      state.TotalActivity.Decimal(),
		Overspent:     state.TotalOverspent.Decimal(),
		ReadyToAssign: state.ReadyToAssign.Decimal(),
		Groups:        make([]CategoryGroupMonth, 0, len(state.Groups)),
	}

	for _, group := range state.Groups {
		groupMonth := CategoryGroupMonth{
			ID:         group.ID,
			Name:       group.Name,
			Allocated:  group.Allocated.Decimal(),
			Activity:   group.Activity.Decimal(),
			Available:  group.Available.Decimal(),
			Categories: make([]CategoryMonth, 0, len(group.Categories)),
		}

		for _, category := range group.Categories {
			groupMonth.Categories = append(groupMonth.Categories, CategoryMonth{
				ID:             category.ID,
				Name:           category.Name,
				Emoji:          category.Emoji,
				Allocated:      category.Allocated.Decimal(),
				Activity:       category.Activity.Decimal(),
				CarryForward:   category.CarryForward.Decimal(),
				Available:      category.Available.Decimal(),
				TargetProgress: category.TargetProgress,
			})
		}

		month.Groups = append(month.Groups, groupMonth)
	}

	return month
}

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsMonth)
		r.GET("", GetMonth)
	}

	{
		r.OPTIONS("/rollover", OptionsMonthRollover)
		r.POST("/rollover", RolloverMonth)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func OptionsMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get month
// @Description	Returns the computed budget for the specified month
// @Tags			Months
// @Produce		json
// @Success		200	{object}	MonthResponse
// @Failure		400	{object}	httpError
// @Failure		500		{object}	httpError
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Router			/v1/months [get]
func GetMonth(c *gin.Context) {
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

	c.JSON(http.StatusOK, MonthResponse{Data: newMonth(budget.Calculate(input))})
}
