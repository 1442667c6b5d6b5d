package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niravp-mindfire/fitness-tracking-app-sub001/services"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/store"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/utils"
)

type ExerciseController struct {
	Exercises *services.ExerciseService
}

func NewExerciseController(svc *services.ExerciseService) *ExerciseController {
	return &ExerciseController{Exercises: svc}
}

func (ec *ExerciseController) List(c *gin.Context) {
	p, err := store.ParseListParams(c.Request.URL.Query())
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}
	exercises, page, err := ec.Exercises.List(c.Request.Context(), p)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch exercises")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Exercises fetched successfully", listData(page, "exercises", exercises))
}

func (ec *ExerciseController) GetByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	exercise, err := ec.Exercises.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch exercise")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Exercise fetched successfully", exercise)
}

func (ec *ExerciseController) Create(c *gin.Context) {
	var input services.CreateExerciseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid exercise payload", err)
		return
	}
	exercise, err := ec.Exercises.Create(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, "Failed to create exercise")
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Exercise created successfully", exercise)
}

func (ec *ExerciseController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input services.UpdateExerciseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid exercise payload", err)
		return
	}
	exercise, err := ec.Exercises.Update(c.Request.Context(), id, input)
	if err != nil {
		respondServiceError(c, err, "Failed to update exercise")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Exercise updated successfully", exercise)
}

func (ec *ExerciseController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := ec.Exercises.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "Failed to delete exercise")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Exercise deleted successfully", nil)
}
