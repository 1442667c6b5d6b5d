package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niravp-mindfire/fitness-tracking-app-sub001/middlewares"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/services"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/store"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/utils"
)

type NotificationController struct {
	Notifications *services.NotificationService
}

func NewNotificationController(svc *services.NotificationService) *NotificationController {
	return &NotificationController{Notifications: svc}
}

func (nc *NotificationController) List(c *gin.Context) {
	p, err := store.ParseListParams(c.Request.URL.Query())
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}
	notifications, page, err := nc.Notifications.List(c.Request.Context(), middlewares.CurrentUserID(c), p)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch notifications")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Notifications fetched successfully", listData(page, "notifications", notifications))
}

func (nc *NotificationController) GetByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	notification, err := nc.Notifications.GetByID(c.Request.Context(), middlewares.CurrentUserID(c), id)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch notification")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Notification fetched successfully", notification)
}

func (nc *NotificationController) Create(c *gin.Context) {
	var input services.CreateNotificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid notification payload", err)
		return
	}
	notification, err := nc.Notifications.Create(c.Request.Context(), middlewares.CurrentUserID(c), input)
	if err != nil {
		respondServiceError(c, err, "Failed to create notification")
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Notification created successfully", notification)
}

func (nc *NotificationController) MarkRead(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	notification, err := nc.Notifications.MarkRead(c.Request.Context(), middlewares.CurrentUserID(c), id)
	if err != nil {
		respondServiceError(c, err, "Failed to mark notification read")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Notification marked read", notification)
}

func (nc *NotificationController) MarkAllRead(c *gin.Context) {
	count, err := nc.Notifications.MarkAllRead(c.Request.Context(), middlewares.CurrentUserID(c))
	if err != nil {
		respondServiceError(c, err, "Failed to mark notifications read")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Notifications marked read", gin.H{"modified": count})
}

func (nc *NotificationController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := nc.Notifications.Delete(c.Request.Context(), middlewares.CurrentUserID(c), id); err != nil {
		respondServiceError(c, err, "Failed to delete notification")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Notification deleted successfully", nil)
}
