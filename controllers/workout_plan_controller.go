package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niravp-mindfire/fitness-tracking-app-sub001/middlewares"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/services"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/store"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/utils"
)

type WorkoutPlanController struct {
	Plans *services.WorkoutPlanService
}

func NewWorkoutPlanController(svc *services.WorkoutPlanService) *WorkoutPlanController {
	return &WorkoutPlanController{Plans: svc}
}

func (pc *WorkoutPlanController) List(c *gin.Context) {
	p, err := store.ParseListParams(c.Request.URL.Query())
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}
	plans, page, err := pc.Plans.List(c.Request.Context(), middlewares.CurrentUserID(c), p)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch workout plans")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Workout plans fetched successfully", listData(page, "workoutPlans", plans))
}

func (pc *WorkoutPlanController) GetByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	plan, err := pc.Plans.GetByID(c.Request.Context(), middlewares.CurrentUserID(c), id)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch workout plan")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Workout plan fetched successfully", plan)
}

func (pc *WorkoutPlanController) Create(c *gin.Context) {
	var input services.CreateWorkoutPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid workout plan payload", err)
		return
	}
	plan, err := pc.Plans.Create(c.Request.Context(), middlewares.CurrentUserID(c), input)
	if err != nil {
		respondServiceError(c, err, "Failed to create workout plan")
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Workout plan created successfully", plan)
}

func (pc *WorkoutPlanController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input services.UpdateWorkoutPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid workout plan payload", err)
		return
	}
	plan, err := pc.Plans.Update(c.Request.Context(), middlewares.CurrentUserID(c), id, input)
	if err != nil {
		respondServiceError(c, err, "Failed to update workout plan")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Workout plan updated successfully", plan)
}

func (pc *WorkoutPlanController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := pc.Plans.Delete(c.Request.Context(), middlewares.CurrentUserID(c), id); err != nil {
		respondServiceError(c, err, "Failed to delete workout plan")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Workout plan deleted successfully", nil)
}
