package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketwise/backend/internal/httputil"
	"github.com/pocketwise/backend/internal/models"
	"github.com/pocketwise/backend/internal/money"
	"github.com/pocketwise/backend/internal/types"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// TransactionType classifies transactions for filtering.
type TransactionType string

const (
	TypeIncome   TransactionType = "income"
	TypeSpend    TransactionType = "spend"
	TypeTransfer TransactionType = "transfer"
)

var errTransactionTypeInvalid = errors.New("the transaction type must be one of income, spend, transfer")

type TransactionResponse struct {
	Data Transaction `json:"data"`
}

type TransactionListResponse struct {
	Data []Transaction `json:"data"`
}

// Transaction is the API representation of a transaction.
type Transaction struct {
	models.Transaction
	Amount decimal.Decimal `json:"amount" example:"-47.12"`
}

func newTransaction(transaction models.Transaction) Transaction {
	return Transaction{
		Transaction: transaction,
		Amount:      transaction.Amount.Decimal(),
	}
}

// TransactionEditable are the fields of a transaction that can be set on
// create and update.
type TransactionEditable struct {
	Date       time.Time       `json:"date" example:"2026-08-12T00:00:00Z"`
	Amount     decimal.Decimal `json:"amount" example:"-47.12"`
	Note       string          `json:"note" example:"Weekly groceries"`
	CategoryID *uuid.UUID      `json:"categoryId" example:"053a99d7-b0f9-47ac-9b26-63100a0f0bc5"`
	Transfer   bool            `json:"transfer" example:"false"`
}

func (e TransactionEditable) model() (models.Transaction, error) {
	amount, err := money.FromDecimal(e.Amount)
	if err != nil {
		return models.Transaction{}, err
	}

	return models.Transaction{
		Date:       e.Date,
		Amount:     amount,
		Note:       e.Note,
		CategoryID: e.CategoryID,
		Transfer:   e.Transfer,
	}, nil
}

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactions)
		r.GET("", GetTransactions)
		r.POST("", CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransaction)
		r.PATCH("/:id", UpdateTransaction)
		r.DELETE("/:id", DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	_, ok := parseID(c)
	if !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create transaction
// @Description	Creates a new transaction
// @Tags			Transactions
// @Produce		json
// @Success		201	{object}	TransactionResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500		{object}	httpError
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions [post]
func CreateTransaction(c *gin.Context) {
	var editable TransactionEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	transaction, err := editable.model()
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Create(&transaction).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Data: newTransaction(transaction)})
}

// @Summary		Get transactions
// @Description	Returns a list of transactions
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			month		query	string	false	"Filter by month in YYYY-MM format"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			type		query	string	false	"Filter by type. One of income, spend, transfer"
// @Param			note		query	string	false	"Filter by note. Supports the wildcard *"
// @Router			/v1/transactions [get]
func GetTransactions(c *gin.Context) {
	q := models.DB.Order("datetime(transactions.date) DESC, datetime(transactions.created_at) DESC")

	if raw, ok := c.GetQuery("month"); ok {
		month, err := types.ParseMonth(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidMonth.Error()})
			return
		}

		q = q.Where("date >= ? AND date < ?", time.Time(month), time.Time(month.Next()))
	}

	if raw, ok := c.GetQuery("category"); ok {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
			return
		}

		q = q.Where("category_id = ?", categoryID)
	}

	if raw, ok := c.GetQuery("type"); ok {
		transactionType := TransactionType(raw)
		if !slices.Contains([]TransactionType{TypeIncome, TypeSpend, TypeTransfer}, transactionType) {
			c.JSON(http.StatusBadRequest, httpError{Error: errTransactionTypeInvalid.Error()})
			return
		}

		switch transactionType {
		case TypeIncome:
			q = q.Where("amount > 0 AND transfer = ?", false)
		case TypeSpend:
			q = q.Where("amount < 0 AND transfer = ?", false)
		case TypeTransfer:
			q = q.Where("transfer = ?", true)
		}
	}

	var transactions []models.Transaction
	err := q.Find(&transactions).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	// The note filter supports globbing, so it is applied here and not
	// in the database query
	noteFilter, filterNote := c.GetQuery("note")

	// When there are no resources, we want an empty list, not null
	data := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		if filterNote && !glob.Glob(noteFilter, transaction.Note) {
			continue
		}

		data = append(data, newTransaction(transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: data})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var transaction models.Transaction
	err := models.DB.First(&transaction, id).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: newTransaction(transaction)})
}

// @Summary		Update transaction
// @Description	Updates an existing transaction. Only values to be updated need to be specified.
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id			path		string				true	"ID formatted as string"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions/{id} [patch]
func UpdateTransaction(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var transaction models.Transaction
	err := models.DB.First(&transaction, id).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, TransactionEditable{})
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var editable TransactionEditable
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

	// The new category must exist. Setting the category to null
	// explicitly moves the transaction to "no category".
	if update.CategoryID != nil {
		err = models.DB.First(&models.Category{}, "id = ?", update.CategoryID).Error
		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}
	}

	err = models.DB.Model(&transaction).Select("", updateFields...).Updates(update).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: newTransaction(transaction)})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var transaction models.Transaction
	err := models.DB.First(&transaction, id).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&transaction).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
