package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niravp-mindfire/fitness-tracking-app-sub001/middlewares"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/services"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/store"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/utils"
)

type MealPlanController struct {
	Plans *services.MealPlanService
}

func NewMealPlanController(svc *services.MealPlanService) *MealPlanController {
	return &MealPlanController{Plans: svc}
}

func (pc *MealPlanController) List(c *gin.Context) {
	p, err := store.ParseListParams(c.Request.URL.Query())
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}
	plans, page, err := pc.Plans.List(c.Request.Context(), middlewares.CurrentUserID(c), p)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch meal plans")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Meal plans fetched successfully", listData(page, "mealPlans", plans))
}

func (pc *MealPlanController) GetByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	plan, err := pc.Plans.GetByID(c.Request.Context(), middlewares.CurrentUserID(c), id)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch meal plan")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Meal plan fetched successfully", plan)
}

func (pc *MealPlanController) Create(c *gin.Context) {
	var input services.CreateMealPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid meal plan payload", err)
		return
	}
	plan, err := pc.Plans.Create(c.Request.Context(), middlewares.CurrentUserID(c), input)
	if err != nil {
		respondServiceError(c, err, "Failed to create meal plan")
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Meal plan created successfully", plan)
}

func (pc *MealPlanController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input services.UpdateMealPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid meal plan payload", err)
		return
	}
	plan, err := pc.Plans.Update(c.Request.Context(), middlewares.CurrentUserID(c), id, input)
	if err != nil {
		respondServiceError(c, err, "Failed to update meal plan")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Meal plan updated successfully", plan)
}

func (pc *MealPlanController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := pc.Plans.Delete(c.Request.Context(), middlewares.CurrentUserID(c), id); err != nil {
		respondServiceError(c, err, "Failed to delete meal plan")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Meal plan deleted successfully", nil)
}
