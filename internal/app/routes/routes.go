package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studyconnect/backend/internal/app/controllers"
	"github.com/studyconnect/backend/internal/app/models"
	"github.com/studyconnect/backend/internal/app/models/dto"
	"github.com/studyconnect/backend/internal/middleware"
)

// SetupRouter configures all application routes.
func SetupRouter(
	router *gin.Engine,
	noteController *controllers.NoteController,
	vendorController *controllers.VendorController,
	accommodationController *controllers.AccommodationController,
	tutorController *controllers.TutorController,
	advertisementController *controllers.AdvertisementController,
	analyticsController *controllers.AnalyticsController,
	userController *controllers.UserController,
	authMiddleware *middleware.AuthMiddleware,
	uploadDir string,
) {
	v1 := router.Group("/api/v1")

	// --- Public listing and detail routes ---
	notes := v1.Group("/notes")
	{
		notes.GET("", noteController.ListNotes)
		notes.GET("/:id", noteController.GetNote)
		notes.GET("/:id/ratings", noteController.ListRatings)
		notes.GET("/:id/comments", noteController.ListComments)
		notes.POST("/:id/view", noteController.RecordView)
		notes.POST("/:id/download", noteController.RecordDownload)
	}

	vendors := v1.Group("/vendors")
	{
		vendors.GET("", vendorController.ListVendors)
		vendors.GET("/:id", vendorController.GetVendor)
		vendors.GET("/:id/ratings", vendorController.ListRatings)
	}

	accommodations := v1.Group("/accommodations")
	{
		accommodations.GET("", accommodationController.ListAccommodations)
		accommodations.GET("/:id", accommodationController.GetAccommodation)
	}

	tutors := v1.Group("/tutors")
	{
		tutors.GET("", tutorController.ListTutors)
		tutors.GET("/:id", tutorController.GetTutor)
		tutors.GET("/:id/ratings", tutorController.ListRatings)
	}

	v1.GET("/advertisements", advertisementController.ListActive)

	analytics := v1.Group("/analytics")
	{
		analytics.GET("/trending", analyticsController.Trending)
		analytics.GET("/top-notes", analyticsController.TopNotes)
		analytics.GET("/recent", analyticsController.RecentNotes)
		analytics.GET("/subjects", analyticsController.Subjects)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		me := authenticated.Group("/me")
		{
			me.GET("", userController.GetProfile)
			me.PUT("", userController.UpdateProfile)
			me.GET("/saved-notes", noteController.ListSavedNotes)
			me.GET("/saved-accommodations", accommodationController.ListSavedAccommodations)
			me.GET("/saved-tutors", tutorController.ListSavedTutors)
			me.GET("/sessions", tutorController.ListMySessions)
		}

		notesProtected := authenticated.Group("/notes")
		{
			notesProtected.POST("", noteController.CreateNote)
			notesProtected.PUT("/:id", noteController.UpdateNote)
			notesProtected.DELETE("/:id", noteController.DeleteNote)
			notesProtected.POST("/:id/ratings", noteController.RateNote)
			notesProtected.POST("/:id/comments", noteController.AddComment)
			notesProtected.DELETE("/:id/comments/:commentId", noteController.DeleteComment)
			notesProtected.GET("/:id/save", noteController.GetSaved)
			notesProtected.POST("/:id/save", noteController.SaveNote)
			notesProtected.DELETE("/:id/save", noteController.UnsaveNote)
		}

		vendorsProtected := authenticated.Group("/vendors")
		{
			vendorsProtected.POST("", vendorController.CreateVendor)
			vendorsProtected.PUT("/:id", vendorController.UpdateVendor)
			vendorsProtected.DELETE("/:id", vendorController.DeleteVendor)
			vendorsProtected.POST("/:id/ratings", vendorController.RateVendor)
		}

		accommodationsProtected := authenticated.Group("/accommodations")
		{
			accommodationsProtected.POST("", accommodationController.CreateAccommodation)
			accommodationsProtected.PUT("/:id", accommodationController.UpdateAccommodation)
			accommodationsProtected.DELETE("/:id", accommodationController.DeleteAccommodation)
			accommodationsProtected.GET("/:id/save", accommodationController.GetSaved)
			accommodationsProtected.POST("/:id/save", accommodationController.SaveAccommodation)
			accommodationsProtected.DELETE("/:id/save", accommodationController.UnsaveAccommodation)
			accommodationsProtected.POST("/:id/visits", accommodationController.ScheduleVisit)
			accommodationsProtected.POST("/:id/bookings", accommodationController.CreateBooking)
		}

		tutorsProtected := authenticated.Group("/tutors")
		{
			tutorsProtected.POST("", tutorController.CreateTutor)
			tutorsProtected.PUT("/:id", tutorController.UpdateTutor)
			tutorsProtected.DELETE("/:id", tutorController.DeleteTutor)
			tutorsProtected.POST("/:id/ratings", tutorController.RateTutor)
			tutorsProtected.GET("/:id/save", tutorController.GetSaved)
			tutorsProtected.POST("/:id/save", tutorController.SaveTutor)
			tutorsProtected.DELETE("/:id/save", tutorController.UnsaveTutor)
			tutorsProtected.POST("/:id/availability", tutorController.AddSlot)
			tutorsProtected.DELETE("/:id/availability/:slotId", tutorController.DeleteSlot)
		}

		sessions := authenticated.Group("/tutor-sessions")
		{
			sessions.POST("", tutorController.BookSession)
			sessions.POST("/:id/cancel", tutorController.CancelSession)
		}

		// Admin routes
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			admin.GET("/advertisements", advertisementController.ListAll)
			admin.GET("/advertisements/:id", advertisementController.Get)
			admin.POST("/advertisements", advertisementController.Create)
			admin.PUT("/advertisements/:id", advertisementController.Update)
			admin.DELETE("/advertisements/:id", advertisementController.Delete)
			admin.PUT("/users/:id/role", userController.UpdateRole)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Uploaded files are served directly from disk
	router.Static("/uploads", uploadDir)
}
