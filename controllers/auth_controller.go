package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/niravp-mindfire/fitness-tracking-app-sub001/middlewares"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/models"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/services"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/utils"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type RegisterInput struct {
	Username     string   `json:"username" binding:"required"`
	Email        string   `json:"email" binding:"required,email"`
	Password     string   `json:"password" binding:"required,min=8"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Age          int      `json:"age"`
	Gender       string   `json:"gender"`
	Height       float64  `json:"height"`
	Weight       float64  `json:"weight"`
	DateOfBirth  *string  `json:"dateOfBirth"` // YYYY-MM-DD
	FitnessGoals []string `json:"fitnessGoals"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid registration payload", err)
		return
	}

	profile := models.Profile{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Age:       input.Age,
		Gender:    input.Gender,
		Height:    input.Height,
		Weight:    input.Weight,
	}
	if input.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *input.DateOfBirth)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid dateOfBirth, use YYYY-MM-DD", err)
			return
		}
		profile.DateOfBirth = &dob
	}

	user, tokens, err := ac.Auth.Register(c.Request.Context(), input.Username, input.Email, input.Password, profile, input.FitnessGoals)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		respondServiceError(c, err, "Registration failed")
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Registration successful", gin.H{
		"user":         user,
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
		"role":         tokens.Role,
	})
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid login payload", err)
		return
	}

	user, tokens, err := ac.Auth.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// one message for both unknown email and wrong password
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid email or password", nil)
			return
		}
		respondServiceError(c, err, "Login failed")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", gin.H{
		"user":         user,
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
		"role":         tokens.Role,
	})
}

type RefreshInput struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

func (ac *AuthController) Refresh(c *gin.Context) {
	var input RefreshInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	access, err := ac.Auth.Refresh(c.Request.Context(), input.RefreshToken)
	if err != nil {
		respondServiceError(c, err, "Token refresh failed")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Token refreshed", gin.H{"accessToken": access})
}

func (ac *AuthController) ForgotPassword(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	if err := ac.Auth.ForgotPassword(c.Request.Context(), input.Email); err != nil {
		respondServiceError(c, err, "Failed to process reset request")
		return
	}

	// same answer whether or not the email exists
	utils.SuccessResponse(c, http.StatusOK, "If the email exists, a reset link has been sent", nil)
}

func (ac *AuthController) ResetPassword(c *gin.Context) {
	var input struct {
		NewPassword string `json:"newPassword" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	err := ac.Auth.ResetPassword(c.Request.Context(), c.Param("token"), input.NewPassword)
	if err != nil {
		if errors.Is(err, services.ErrResetTokenInvalid) {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid or expired token", nil)
			return
		}
		respondServiceError(c, err, "Failed to reset password")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password has been reset", nil)
}

func (ac *AuthController) GetProfile(c *gin.Context) {
	user, err := ac.Auth.GetProfile(c.Request.Context(), middlewares.CurrentUserID(c))
	if err != nil {
		respondServiceError(c, err, "Failed to fetch profile")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Profile fetched successfully", user)
}

func (ac *AuthController) UpdateProfile(c *gin.Context) {
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid profile payload", err)
		return
	}

	user, err := ac.Auth.UpdateProfile(c.Request.Context(), middlewares.CurrentUserID(c), input)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		respondServiceError(c, err, "Failed to update profile")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", user)
}
