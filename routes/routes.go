package routes

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/niravp-mindfire/fitness-tracking-app-sub001/config"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/controllers"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/middlewares"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/services"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/utils"
)

// SetupRouter wires services and controllers against the app handles and
// registers the route groups. AWS-backed collaborators (mailer, uploads,
// push) are optional: when they fail to initialize the API still serves,
// minus those side effects.
func SetupRouter(app *config.App) *gin.Engine {
	ctx := context.Background()

	mailer, err := utils.NewMailer(ctx)
	if err != nil {
		log.Printf("mailer disabled: %v", err)
		mailer = nil
	}
	var uploader *utils.Uploader
	if os.Getenv("S3_BUCKET") != "" {
		if uploader, err = utils.NewUploader(ctx); err != nil {
			log.Printf("uploads disabled: %v", err)
			uploader = nil
		}
	}
	var push *services.PushService
	if os.Getenv("SNS_FCM_ARN") != "" {
		if push, err = services.NewPushService(ctx, app.DB); err != nil {
			log.Printf("push disabled: %v", err)
			push = nil
		}
	}

	hub := services.NewRealtimeHub()

	authSvc := services.NewAuthService(app.DB, mailer, uploader)
	authCtl := controllers.NewAuthController(authSvc)
	workoutCtl := controllers.NewWorkoutController(services.NewWorkoutService(app.DB))
	exerciseCtl := controllers.NewExerciseController(services.NewExerciseService(app.DB))
	foodCtl := controllers.NewFoodController(services.NewFoodService(app.DB))
	workoutPlanCtl := controllers.NewWorkoutPlanController(services.NewWorkoutPlanService(app.DB))
	mealPlanCtl := controllers.NewMealPlanController(services.NewMealPlanService(app.DB))
	nutritionCtl := controllers.NewNutritionController(services.NewNutritionService(app.DB))
	challengeCtl := controllers.NewChallengeController(services.NewChallengeService(app.DB))
	progressCtl := controllers.NewProgressController(services.NewProgressService(app.DB))
	notificationCtl := controllers.NewNotificationController(services.NewNotificationService(app.DB, hub, push))
	realtimeCtl := controllers.NewRealtimeController(hub)
	deviceCtl := controllers.NewDeviceController(push)

	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.POST("/refresh-token", authCtl.Refresh)
		auth.POST("/forgot-password", authCtl.ForgotPassword)
		auth.POST("/reset-password/:token", authCtl.ResetPassword)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware(authSvc))
	{
		api.GET("/users/me", authCtl.GetProfile)
		api.PUT("/users/me", authCtl.UpdateProfile)

		api.GET("/workouts", workoutCtl.List)
		api.POST("/workouts", workoutCtl.Create)
		api.GET("/workouts/:id", workoutCtl.GetByID)
		api.PUT("/workouts/:id", workoutCtl.Update)
		api.DELETE("/workouts/:id", workoutCtl.Delete)
		api.GET("/workouts/:id/exercises", workoutCtl.ListExercises)

		api.POST("/workout-exercises", workoutCtl.AddExercise)
		api.PUT("/workout-exercises/:id", workoutCtl.UpdateExercise)
		api.DELETE("/workout-exercises/:id", workoutCtl.DeleteExercise)

		api.GET("/exercises", exerciseCtl.List)
		api.POST("/exercises", exerciseCtl.Create)
		api.GET("/exercises/:id", exerciseCtl.GetByID)
		api.PUT("/exercises/:id", exerciseCtl.Update)
		api.DELETE("/exercises/:id", exerciseCtl.Delete)

		api.GET("/food-items", foodCtl.List)
		api.POST("/food-items", foodCtl.Create)
		api.GET("/food-items/:id", foodCtl.GetByID)
		api.PUT("/food-items/:id", foodCtl.Update)
		api.DELETE("/food-items/:id", foodCtl.Delete)

		api.GET("/workout-plans", workoutPlanCtl.List)
		api.POST("/workout-plans", workoutPlanCtl.Create)
		api.GET("/workout-plans/:id", workoutPlanCtl.GetByID)
		api.PUT("/workout-plans/:id", workoutPlanCtl.Update)
		api.DELETE("/workout-plans/:id", workoutPlanCtl.Delete)

		api.GET("/meal-plans", mealPlanCtl.List)
		api.POST("/meal-plans", mealPlanCtl.Create)
		api.GET("/meal-plans/:id", mealPlanCtl.GetByID)
		api.PUT("/meal-plans/:id", mealPlanCtl.Update)
		api.DELETE("/meal-plans/:id", mealPlanCtl.Delete)

		api.GET("/nutrition", nutritionCtl.List)
		api.POST("/nutrition", nutritionCtl.Create)
		api.GET("/nutrition/:id", nutritionCtl.GetByID)
		api.PUT("/nutrition/:id", nutritionCtl.Update)
		api.DELETE("/nutrition/:id", nutritionCtl.Delete)
		api.GET("/nutrition/:id/meals", nutritionCtl.ListMeals)
		api.POST("/nutrition/:id/meals", nutritionCtl.CreateMeal)

		api.GET("/nutrition-meals/:id", nutritionCtl.GetMeal)
		api.PUT("/nutrition-meals/:id", nutritionCtl.UpdateMeal)
		api.DELETE("/nutrition-meals/:id", nutritionCtl.DeleteMeal)

		api.GET("/challenges", challengeCtl.List)
		api.POST("/challenges", challengeCtl.Create)
		api.GET("/challenges/:id", challengeCtl.GetByID)
		api.PUT("/challenges/:id", challengeCtl.Update)
		api.DELETE("/challenges/:id", challengeCtl.Delete)
		api.POST("/challenges/:id/join", challengeCtl.Join)
		api.POST("/challenges/:id/leave", challengeCtl.Leave)

		api.GET("/progress", progressCtl.List)
		api.POST("/progress", progressCtl.Create)
		api.GET("/progress/track", progressCtl.Track)
		api.GET("/progress/:id", progressCtl.GetByID)
		api.PUT("/progress/:id", progressCtl.Update)
		api.DELETE("/progress/:id", progressCtl.Delete)

		api.GET("/notifications", notificationCtl.List)
		api.POST("/notifications", notificationCtl.Create)
		api.PUT("/notifications/read-all", notificationCtl.MarkAllRead)
		api.GET("/notifications/ws", realtimeCtl.NotificationsWS)
		api.GET("/notifications/:id", notificationCtl.GetByID)
		api.PUT("/notifications/:id/read", notificationCtl.MarkRead)
		api.DELETE("/notifications/:id", notificationCtl.Delete)

		api.POST("/devices", deviceCtl.Register)
		api.POST("/devices/toggle", deviceCtl.Toggle)
	}

	return r
}
