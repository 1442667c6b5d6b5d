package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niravp-mindfire/fitness-tracking-app-sub001/middlewares"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/services"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/store"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/utils"
)

type ChallengeController struct {
	Challenges *services.ChallengeService
}

func NewChallengeController(svc *services.ChallengeService) *ChallengeController {
	return &ChallengeController{Challenges: svc}
}

func (cc *ChallengeController) List(c *gin.Context) {
	p, err := store.ParseListParams(c.Request.URL.Query())
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}
	challenges, page, err := cc.Challenges.List(c.Request.Context(), p)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch challenges")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Challenges fetched successfully", listData(page, "challenges", challenges))
}

func (cc *ChallengeController) GetByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	challenge, err := cc.Challenges.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch challenge")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Challenge fetched successfully", challenge)
}

func (cc *ChallengeController) Create(c *gin.Context) {
	var input services.CreateChallengeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid challenge payload", err)
		return
	}
	challenge, err := cc.Challenges.Create(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, "Failed to create challenge")
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Challenge created successfully", challenge)
}

func (cc *ChallengeController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input services.UpdateChallengeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid challenge payload", err)
		return
	}
	challenge, err := cc.Challenges.Update(c.Request.Context(), id, input)
	if err != nil {
		respondServiceError(c, err, "Failed to update challenge")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Challenge updated successfully", challenge)
}

func (cc *ChallengeController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := cc.Challenges.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "Failed to delete challenge")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Challenge deleted successfully", nil)
}

func (cc *ChallengeController) Join(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	challenge, err := cc.Challenges.Join(c.Request.Context(), middlewares.CurrentUserID(c), id)
	if err != nil {
		respondServiceError(c, err, "Failed to join challenge")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Joined challenge successfully", challenge)
}

func (cc *ChallengeController) Leave(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	challenge, err := cc.Challenges.Leave(c.Request.Context(), middlewares.CurrentUserID(c), id)
	if err != nil {
		respondServiceError(c, err, "Failed to leave challenge")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Left challenge successfully", challenge)
}
