package main

import (
	"log"
	"net/http"
	"os"

	"blog-platform/config"
	"blog-platform/handlers"
	"blog-platform/middleware"
	"blog-platform/models"
	"blog-platform/repositories"
	"blog-platform/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize object storage
	s3Settings := config.LoadS3Settings()
	s3Client, err := config.NewS3Client(s3Settings)
	if err != nil {
		log.Fatal("Failed to initialize S3 client:", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	roleRepo := repositories.NewRoleRepository(db)
	blogRepo := repositories.NewBlogRepository(db)
	blogPostRepo := repositories.NewBlogPostRepository(db)

	// Initialize services
	storageService := services.NewStorageService(s3Client, s3Settings)
	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo, roleRepo, storageService)
	blogService := services.NewBlogService(blogRepo, storageService)
	blogPostService := services.NewBlogPostService(blogPostRepo, blogService, storageService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	blogHandler := handlers.NewBlogHandler(blogService)
	blogPostHandler := handlers.NewBlogPostHandler(blogPostService)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes, one per operation
	api := router.Group("/api")
	{
		// Public
		api.POST("/login", authHandler.Login)
		api.POST("/createUser", userHandler.CreateUser)
		api.GET("/getPaginatedBlogsList", blogHandler.GetPaginatedBlogsList)

		// Reads that differ by authenticated vs anonymous caller
		api.GET("/getBlogPostById", middleware.ResolveUser(), blogPostHandler.GetBlogPostByID)
		api.GET("/getPostsByBlogId", middleware.ResolveUser(), blogPostHandler.GetPostsByBlogID)

		// Profile
		api.POST("/updateUserProfile", middleware.RequireRole(models.RoleWriter, models.RoleModerator), userHandler.UpdateUserProfile)
		api.POST("/deleteUserProfile", middleware.RequireRole(models.RoleWriter, models.RoleModerator), userHandler.DeleteUserProfile)

		// Writer operations
		api.POST("/createBlog", middleware.RequireRole(models.RoleWriter), blogHandler.CreateBlog)
		api.POST("/patchBlog", middleware.RequireRole(models.RoleWriter), blogHandler.PatchBlog)
		api.POST("/deleteBlogById", middleware.RequireRole(models.RoleWriter), blogHandler.DeleteBlogByID)
		api.POST("/createBlogPost", middleware.RequireRole(models.RoleWriter), blogPostHandler.CreateBlogPost)
		api.POST("/updateBlogPost", middleware.RequireRole(models.RoleWriter), blogPostHandler.UpdateBlogPost)
		api.POST("/updateBlogPostAvatar", middleware.RequireRole(models.RoleWriter), blogPostHandler.UpdateBlogPostAvatar)
		api.POST("/deleteBlogPost", middleware.RequireRole(models.RoleWriter), blogPostHandler.DeleteBlogPost)

		// Moderator operations
		api.POST("/createModeratorUser", middleware.RequireRole(models.RoleModerator), userHandler.CreateModeratorUser)
		api.POST("/handleModeratorDecision", middleware.RequireRole(models.RoleModerator), blogPostHandler.HandleModeratorDecision)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
