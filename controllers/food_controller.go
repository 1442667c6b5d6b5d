package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niravp-mindfire/fitness-tracking-app-sub001/services"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/store"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/utils"
)

type FoodController struct {
	Foods *services.FoodService
}

func NewFoodController(svc *services.FoodService) *FoodController {
	return &FoodController{Foods: svc}
}

func (fc *FoodController) List(c *gin.Context) {
	p, err := store.ParseListParams(c.Request.URL.Query())
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}
	foods, page, err := fc.Foods.List(c.Request.Context(), p)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch food items")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Food items fetched successfully", listData(page, "foodItems", foods))
}

func (fc *FoodController) GetByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	food, err := fc.Foods.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch food item")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Food item fetched successfully", food)
}

func (fc *FoodController) Create(c *gin.Context) {
	var input services.CreateFoodItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid food item payload", err)
		return
	}
	food, err := fc.Foods.Create(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, "Failed to create food item")
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Food item created successfully", food)
}

func (fc *FoodController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input services.UpdateFoodItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid food item payload", err)
		return
	}
	food, err := fc.Foods.Update(c.Request.Context(), id, input)
	if err != nil {
		respondServiceError(c, err, "Failed to update food item")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Food item updated successfully", food)
}

func (fc *FoodController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := fc.Foods.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "Failed to delete food item")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Food item deleted successfully", nil)
}
