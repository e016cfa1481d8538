package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketwise/backend/internal/httputil"
	"github.com/pocketwise/backend/internal/models"
)

type CategoryGroupResponse struct {
	Data models.CategoryGroup `json:"data"`
}

type CategoryGroupListResponse struct {
	Data []models.CategoryGroup `json:"data"`
}

// CategoryGroupEditable are the fields of a category group that can be
// set on create and update.
type CategoryGroupEditable struct {
	Name     string `json:"name" example:"Fixed costs"`
	Note     string `json:"note" example:"Rent, insurance, subscriptions"`
	Archived bool   `json:"archived" example:"false"`
}

func (e CategoryGroupEditable) model() models.CategoryGroup {
	return models.CategoryGroup{
		Name:     e.Name,
		Note:     e.Note,
		Archived: e.Archived,
	}
}

// RegisterCategoryGroupRoutes registers the routes for category groups
// with the RouterGroup that is passed.
func RegisterCategoryGroupRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryGroups)
		r.GET("", GetCategoryGroups)
		r.POST("", CreateCategoryGroup)
	}

	// CategoryGroup with ID
	{
		r.OPTIONS("/:id", OptionsCategoryGroupDetail)
		r.GET("/:id", GetCategoryGroup)
		r.PATCH("/:id", UpdateCategoryGroup)
		r.DELETE("/:id", DeleteCategoryGroup)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CategoryGroups
// @Success		204
// @Router			/v1/category-groups [options]
func OptionsCategoryGroups(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CategoryGroups
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/category-groups/{id} [options]
func OptionsCategoryGroupDetail(c *gin.Context) {
	_, ok := parseID(c)
	if !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create category group
// @Description	Creates a new category group
// @Tags			CategoryGroups
// @Produce		json
// @Success		201	{object}	CategoryGroupResponse
// @Failure		400	{object}	httpError
// @Failure		500		{object}	httpError
// @Param			categoryGroup	body		CategoryGroupEditable	true	"CategoryGroup"
// @Router			/v1/category-groups [post]
func CreateCategoryGroup(c *gin.Context) {
	var editable CategoryGroupEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	group := editable.model()

	err = models.DB.Create(&group).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, CategoryGroupResponse{Data: group})
}

// @Summary		Get category groups
// @Description	Returns a list of category groups
// @Tags			CategoryGroups
// @Produce		json
// @Success		200	{object}	CategoryGroupListResponse
// @Failure		500	{object}	httpError
// @Router			/v1/category-groups [get]
func GetCategoryGroups(c *gin.Context) {
	// When there are no resources, we want an empty list, not null
	groups := make([]models.CategoryGroup, 0)

	err := models.DB.Order("name ASC").Find(&groups).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, CategoryGroupListResponse{Data: groups})
}

// @Summary		Get category group
// @Description	Returns a specific category group
// @Tags			CategoryGroups
// @Produce		json
// @Success		200	{object}	CategoryGroupResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/category-groups/{id} [get]
func GetCategoryGroup(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var group models.CategoryGroup
	err := models.DB.First(&group, id).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, CategoryGroupResponse{Data: group})
}

// @Summary		Update category group
// @Description	Updates an existing category group. Only values to be updated need to be specified.
// @Tags			CategoryGroups
// @Produce		json
// @Success		200	{object}	CategoryGroupResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id				path		string					true	"ID formatted as string"
// @Param			categoryGroup	body		CategoryGroupEditable	true	"CategoryGroup"
// @Router			/v1/category-groups/{id} [patch]
func UpdateCategoryGroup(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var group models.CategoryGroup
	err := models.DB.First(&group, id).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CategoryGroupEditable{})
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var editable CategoryGroupEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Model(&group).Select("", updateFields...).Updates(editable.model()).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, CategoryGroupResponse{Data: group})
}

// @Summary		Delete category group
// @Description	Deletes a category group
// @Tags			CategoryGroups
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/category-groups/{id} [delete]
func DeleteCategoryGroup(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var group models.CategoryGroup
	err := models.DB.First(&group, id).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&group).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
