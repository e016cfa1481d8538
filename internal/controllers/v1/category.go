package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketwise/backend/internal/budget"
	"github.com/pocketwise/backend/internal/httputil"
	"github.com/pocketwise/backend/internal/models"
	"github.com/pocketwise/backend/internal/money"
	"github.com/shopspring/decimal"
)

type CategoryResponse struct {
	Data Category `json:"data"`
}

type CategoryListResponse struct {
	Data []Category `json:"data"`
}

// Category is the API representation of a category.
type Category struct {
	models.Category
	TargetAmount decimal.Decimal `json:"targetAmount" example:"1000"`
}

func newCategory(category models.Category) Category {
	return Category{
		Category:     category,
		TargetAmount: category.TargetAmount.Decimal(),
	}
}

// CategoryEditable are the fields of a category that can be set on
// create and update.
type CategoryEditable struct {
	GroupID      uuid.UUID         `json:"groupId" example:"d1b9c51a-1b3f-4f2a-a0c7-9a6d21791b7e"`
	Name         string            `json:"name" example:"Groceries"`
	Emoji        string            `json:"emoji" example:"🛒"`
	TargetAmount decimal.Decimal   `json:"targetAmount" example:"400"`
	TargetType   budget.TargetType `json:"targetType" example:"monthly" enums:",monthly,savings_goal,debt_payment"`
	Archived     bool              `json:"archived" example:"false"`
}

func (e CategoryEditable) model() (models.Category, error) {
	targetAmount, err := money.FromDecimal(e.TargetAmount)
	if err != nil {
		return models.Category{}, err
	}

	return models.Category{
		GroupID:      e.GroupID,
		Name:         e.Name,
		Emoji:        e.Emoji,
		TargetAmount: targetAmount,
		TargetType:   e.TargetType,
		Archived:     e.Archived,
	}, nil
}

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategories)
		r.GET("", GetCategories)
		r.POST("", CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", OptionsCategoryDetail)
		r.GET("/:id", GetCategory)
		r.PATCH("/:id", UpdateCategory)
		r.DELETE("/:id", DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategories(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	_, ok := parseID(c)
	if !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create category
// @Description	Creates a new category in a category group
// @Tags			Categories
// @Produce		json
// @Success		201	{object}	CategoryResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500		{object}	httpError
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func CreateCategory(c *gin.Context) {
	var editable CategoryEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	category, err := editable.model()
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Create(&category).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, CategoryResponse{Data: newCategory(category)})
}

// @Summary		Get categories
// @Description	Returns a list of categories
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			group		query	string	false	"Filter by category group ID"
// @Param			archived	query	bool	false	"Is the category archived?"
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	var filter struct {
		GroupID  string `form:"group"`
		Archived bool   `form:"archived"`
	}

	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidQueryString.Error()})
		return
	}

	q := models.DB.Order("name ASC")

	if filter.GroupID != "" {
		groupID, err := uuid.Parse(filter.GroupID)
		if err != nil {
			c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
			return
		}

		q = q.Where(&models.Category{GroupID: groupID})
	}

	if c.Request.URL.Query().Has("archived") {
		q = q.Where("archived = ?", filter.Archived)
	}

	var categories []models.Category
	err := q.Find(&categories).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	// When there are no resources, we want an empty list, not null
	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		data = append(data, newCategory(category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/categories/{id} [get]
func GetCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var category models.Category
	err := models.DB.First(&category, id).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: newCategory(category)})
}

// @Summary		Update category
// @Description	Updates an existing category. Only values to be updated need to be specified.
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id			path		string				true	"ID formatted as string"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories/{id} [patch]
func UpdateCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var category models.Category
	err := models.DB.First(&category, id).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CategoryEditable{})
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var editable CategoryEditable
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

	err = models.DB.Model(&category).Select("", updateFields...).Updates(update).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: newCategory(category)})
}

// @Summary		Delete category
// @Description	Deletes a category
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var category models.Category
	err := models.DB.First(&category, id).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&category).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
