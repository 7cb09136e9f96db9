package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/asrivastava/codecampus/internal/app/controllers"
	"github.com/asrivastava/codecampus/internal/app/models"
	"github.com/asrivastava/codecampus/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	blogController *controllers.BlogController,
	projectController *controllers.ProjectController,
	eventController *controllers.EventController,
	commentController *controllers.CommentController,
	likeController *controllers.LikeController,
	userController *controllers.UserController,
	authMiddleware *middleware.AuthMiddleware,
	rdb *redis.Client,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", middleware.RateLimit(rdb, "register", 5, time.Minute), authController.Register)
		auth.POST("/login", middleware.RateLimit(rdb, "login", 10, time.Minute), authController.Login)
		auth.POST("/refresh", authController.Refresh)
	}

	// --- Public read routes ---
	// Listings are anonymous; detail reads take an optional token so the
	// response can carry viewer-specific reaction state.
	v1.GET("/blogs", blogController.ListApproved)
	v1.GET("/projects", projectController.ListApproved)
	v1.GET("/events", eventController.ListApproved)

	optional := v1.Group("")
	optional.Use(authMiddleware.OptionalAuth())
	{
		optional.GET("/blogs/:id", blogController.Get)
		optional.GET("/projects/:id", projectController.Get)
		optional.GET("/events/:id", eventController.Get)
		optional.GET("/profiles/:username", userController.GetProfile)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		writeLimited := authenticated.Group("")
		writeLimited.Use(middleware.RateLimit(rdb, "write", 30, time.Minute))
		{
			blogs := writeLimited.Group("/blogs")
			{
				blogs.POST("", blogController.Create)
				blogs.PUT("/:id", blogController.Update)
				blogs.DELETE("/:id", blogController.Delete)
				blogs.POST("/:id/comments", commentController.CreateFor(models.TargetBlog))
				blogs.POST("/:id/like", likeController.LikeFor(models.TargetBlog))
				blogs.DELETE("/:id/like", likeController.UnlikeFor(models.TargetBlog))
			}

			projects := writeLimited.Group("/projects")
			{
				projects.POST("", projectController.Create)
				projects.PUT("/:id", projectController.Update)
				projects.DELETE("/:id", projectController.Delete)
				projects.POST("/:id/comments", commentController.CreateFor(models.TargetProject))
				projects.POST("/:id/like", likeController.LikeFor(models.TargetProject))
				projects.DELETE("/:id/like", likeController.UnlikeFor(models.TargetProject))
			}

			events := writeLimited.Group("/events")
			{
				events.POST("", eventController.Create)
				events.PUT("/:id", eventController.Update)
				events.DELETE("/:id", eventController.Delete)
				events.POST("/:id/comments", commentController.CreateFor(models.TargetEvent))
				events.POST("/:id/like", likeController.LikeFor(models.TargetEvent))
				events.DELETE("/:id/like", likeController.UnlikeFor(models.TargetEvent))
				events.POST("/:id/join", eventController.Join)
				events.DELETE("/:id/join", eventController.Leave)
				events.PUT("/:id/winner", eventController.SetWinner)
			}

			comments := writeLimited.Group("/comments")
			{
				comments.DELETE("/:id", commentController.Delete)
				comments.POST("/:id/like", likeController.LikeFor(models.TargetComment))
				comments.DELETE("/:id/like", likeController.UnlikeFor(models.TargetComment))
			}
		}

		users := authenticated.Group("/users")
		{
			users.GET("/me", userController.GetMe)
			users.PUT("/me", userController.UpdateProfile)
			users.PUT("/me/avatar", userController.UploadAvatar)
		}

		// --- Admin routes ---
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.AdminRequired())
		{
			admin.GET("/blogs", blogController.ListAll)
			admin.POST("/blogs/:id/review", blogController.Review)
			admin.GET("/projects", projectController.ListAll)
			admin.POST("/projects/:id/review", projectController.Review)
			admin.GET("/events", eventController.ListAll)
			admin.POST("/events/:id/review", eventController.Review)
			admin.GET("/comments", commentController.ListAll)
			admin.POST("/comments/:id/review", commentController.Review)
			admin.GET("/users", userController.ListAll)
			admin.PUT("/users/:id/role", userController.ChangeRole)
			admin.DELETE("/users/:id", userController.Delete)
		}
	}
}
