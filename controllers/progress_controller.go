package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niravp-mindfire/fitness-tracking-app-sub001/middlewares"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/services"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/store"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/utils"
)

type ProgressController struct {
	Progress *services.ProgressService
}

func NewProgressController(svc *services.ProgressService) *ProgressController {
	return &ProgressController{Progress: svc}
}

func (pc *ProgressController) List(c *gin.Context) {
	p, err := store.ParseListParams(c.Request.URL.Query())
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}
	entries, page, err := pc.Progress.List(c.Request.Context(), middlewares.CurrentUserID(c), p)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch progress entries")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Progress entries fetched successfully", listData(page, "progressEntries", entries))
}

func (pc *ProgressController) GetByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	entry, err := pc.Progress.GetByID(c.Request.Context(), middlewares.CurrentUserID(c), id)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch progress entry")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Progress entry fetched successfully", entry)
}

func (pc *ProgressController) Create(c *gin.Context) {
	var input services.CreateProgressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid progress payload", err)
		return
	}
	entry, err := pc.Progress.Create(c.Request.Context(), middlewares.CurrentUserID(c), input)
	if err != nil {
		respondServiceError(c, err, "Failed to create progress entry")
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Progress entry created successfully", entry)
}

func (pc *ProgressController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input services.UpdateProgressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid progress payload", err)
		return
	}
	entry, err := pc.Progress.Update(c.Request.Context(), middlewares.CurrentUserID(c), id, input)
	if err != nil {
		respondServiceError(c, err, "Failed to update progress entry")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Progress entry updated successfully", entry)
}

func (pc *ProgressController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := pc.Progress.Delete(c.Request.Context(), middlewares.CurrentUserID(c), id); err != nil {
		respondServiceError(c, err, "Failed to delete progress entry")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Progress entry deleted successfully", nil)
}

// GET /api/progress/track returns the averaged per-day series.
func (pc *ProgressController) Track(c *gin.Context) {
	points, err := pc.Progress.Track(c.Request.Context(), middlewares.CurrentUserID(c))
	if err != nil {
		respondServiceError(c, err, "Failed to compute progress series")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Progress series fetched successfully", gin.H{"progress": points})
}
