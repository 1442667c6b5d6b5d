package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niravp-mindfire/fitness-tracking-app-sub001/middlewares"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/services"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/store"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/utils"
)

type NutritionController struct {
	Nutrition *services.NutritionService
}

func NewNutritionController(svc *services.NutritionService) *NutritionController {
	return &NutritionController{Nutrition: svc}
}

func (nc *NutritionController) List(c *gin.Context) {
	p, err := store.ParseListParams(c.Request.URL.Query())
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}
	entries, page, err := nc.Nutrition.List(c.Request.Context(), middlewares.CurrentUserID(c), p)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch nutrition entries")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Nutrition entries fetched successfully", listData(page, "nutritionEntries", entries))
}

func (nc *NutritionController) GetByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	entry, err := nc.Nutrition.GetByID(c.Request.Context(), middlewares.CurrentUserID(c), id)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch nutrition entry")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Nutrition entry fetched successfully", entry)
}

func (nc *NutritionController) Create(c *gin.Context) {
	var input services.CreateNutritionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid nutrition payload", err)
		return
	}
	entry, err := nc.Nutrition.Create(c.Request.Context(), middlewares.CurrentUserID(c), input)
	if err != nil {
		respondServiceError(c, err, "Failed to create nutrition entry")
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Nutrition entry created successfully", entry)
}

func (nc *NutritionController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input services.UpdateNutritionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid nutrition payload", err)
		return
	}
	entry, err := nc.Nutrition.Update(c.Request.Context(), middlewares.CurrentUserID(c), id, input)
	if err != nil {
		respondServiceError(c, err, "Failed to update nutrition entry")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Nutrition entry updated successfully", entry)
}

func (nc *NutritionController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := nc.Nutrition.Delete(c.Request.Context(), middlewares.CurrentUserID(c), id); err != nil {
		respondServiceError(c, err, "Failed to delete nutrition entry")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Nutrition entry deleted successfully", nil)
}

// GET /api/nutrition/:id/meals
func (nc *NutritionController) ListMeals(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	meals, err := nc.Nutrition.ListMeals(c.Request.Context(), middlewares.CurrentUserID(c), id)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch meals")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Meals fetched successfully", gin.H{"nutritionMeals": meals})
}

// POST /api/nutrition/:id/meals
func (nc *NutritionController) CreateMeal(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input services.CreateNutritionMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid meal payload", err)
		return
	}
	meal, err := nc.Nutrition.CreateMeal(c.Request.Context(), middlewares.CurrentUserID(c), id, input)
	if err != nil {
		respondServiceError(c, err, "Failed to create meal")
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Meal created successfully", meal)
}

func (nc *NutritionController) GetMeal(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	meal, err := nc.Nutrition.GetMeal(c.Request.Context(), middlewares.CurrentUserID(c), id)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch meal")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Meal fetched successfully", meal)
}

func (nc *NutritionController) UpdateMeal(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input services.UpdateNutritionMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid meal payload", err)
		return
	}
	meal, err := nc.Nutrition.UpdateMeal(c.Request.Context(), middlewares.CurrentUserID(c), id, input)
	if err != nil {
		respondServiceError(c, err, "Failed to update meal")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Meal updated successfully", meal)
}

func (nc *NutritionController) DeleteMeal(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := nc.Nutrition.DeleteMeal(c.Request.Context(), middlewares.CurrentUserID(c), id); err != nil {
		respondServiceError(c, err, "Failed to delete meal")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Meal deleted successfully", nil)
}
