package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niravp-mindfire/fitness-tracking-app-sub001/middlewares"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/services"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/store"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/utils"
)

type WorkoutController struct {
	Workouts *services.WorkoutService
}

func NewWorkoutController(svc *services.WorkoutService) *WorkoutController {
	return &WorkoutController{Workouts: svc}
}

func (wc *WorkoutController) List(c *gin.Context) {
	p, err := store.ParseListParams(c.Request.URL.Query())
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	workouts, page, err := wc.Workouts.List(c.Request.Context(), middlewares.CurrentUserID(c), p)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch workouts")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Workouts fetched successfully", listData(page, "workouts", workouts))
}

func (wc *WorkoutController) GetByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	workout, err := wc.Workouts.GetByID(c.Request.Context(), middlewares.CurrentUserID(c), id)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch workout")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Workout fetched successfully", workout)
}

func (wc *WorkoutController) Create(c *gin.Context) {
	var input services.CreateWorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid workout payload", err)
		return
	}
	workout, err := wc.Workouts.Create(c.Request.Context(), middlewares.CurrentUserID(c), input)
	if err != nil {
		respondServiceError(c, err, "Failed to create workout")
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Workout created successfully", workout)
}

func (wc *WorkoutController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input services.UpdateWorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid workout payload", err)
		return
	}
	workout, err := wc.Workouts.Update(c.Request.Context(), middlewares.CurrentUserID(c), id, input)
	if err != nil {
		respondServiceError(c, err, "Failed to update workout")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Workout updated successfully", workout)
}

func (wc *WorkoutController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := wc.Workouts.Delete(c.Request.Context(), middlewares.CurrentUserID(c), id); err != nil {
		respondServiceError(c, err, "Failed to delete workout")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Workout deleted successfully", nil)
}

// GET /api/workouts/:id/exercises
func (wc *WorkoutController) ListExercises(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	lines, err := wc.Workouts.ListExercises(c.Request.Context(), middlewares.CurrentUserID(c), id)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch workout exercises")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Workout exercises fetched successfully", gin.H{"workoutExercises": lines})
}

func (wc *WorkoutController) AddExercise(c *gin.Context) {
	var input services.WorkoutExerciseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid workout exercise payload", err)
		return
	}
	line, err := wc.Workouts.AddExercise(c.Request.Context(), middlewares.CurrentUserID(c), input)
	if err != nil {
		respondServiceError(c, err, "Failed to add workout exercise")
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Workout exercise created successfully", line)
}

func (wc *WorkoutController) UpdateExercise(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input services.UpdateWorkoutExerciseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid workout exercise payload", err)
		return
	}
	line, err := wc.Workouts.UpdateExercise(c.Request.Context(), middlewares.CurrentUserID(c), id, input)
	if err != nil {
		respondServiceError(c, err, "Failed to update workout exercise")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Workout exercise updated successfully", line)
}

func (wc *WorkoutController) DeleteExercise(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := wc.Workouts.DeleteExercise(c.Request.Context(), middlewares.CurrentUserID(c), id); err != nil {
		respondServiceError(c, err, "Failed to delete workout exercise")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Workout exercise deleted successfully", nil)
}
