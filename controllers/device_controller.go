package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niravp-mindfire/fitness-tracking-app-sub001/middlewares"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/services"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/utils"
)

type DeviceController struct {
	Push *services.PushService
}

func NewDeviceController(ps *services.PushService) *DeviceController {
	return &DeviceController{Push: ps}
}

func (dc *DeviceController) Register(c *gin.Context) {
	if dc.Push == nil {
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "Push delivery not configured", nil)
		return
	}

	var req services.RegisterDeviceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid device payload", err)
		return
	}

	dev, err := dc.Push.RegisterDevice(c.Request.Context(), middlewares.CurrentUserID(c), req.Platform, req.Token)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to register device", err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Device registered successfully", dev)
}

type toggleReq struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

func (dc *DeviceController) Toggle(c *gin.Context) {
	if dc.Push == nil {
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "Push delivery not configured", nil)
		return
	}

	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid body", err)
		return
	}

	if err := dc.Push.ToggleDevices(c.Request.Context(), middlewares.CurrentUserID(c), *req.Enabled); err != nil {
		respondServiceError(c, err, "Failed to update devices")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Notifications updated", gin.H{"enabled": *req.Enabled})
}
