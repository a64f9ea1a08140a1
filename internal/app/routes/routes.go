package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/selim/groupdesk/docs" // This is required for swagger docs
	"github.com/selim/groupdesk/internal/app/controllers"
	"github.com/selim/groupdesk/internal/app/models"
	"github.com/selim/groupdesk/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	groupController *controllers.GroupController,
	flightController *controllers.FlightController,
	transferController *controllers.TransferController,
	centreController *controllers.CentreController,
	participantController *controllers.ParticipantController,
	staffController *controllers.StaffController,
	agencyController *controllers.AgencyController,
	programmeController *controllers.ProgrammeController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.POST("/login", authController.Login)

	api := router.Group("/api")
	api.Use(authMiddleware.JWTAuth())
	{
		groups := api.Group("/groups")
		{
			groups.GET("", groupController.GetGroups)
			groups.POST("", groupController.CreateGroup)
			groups.GET("/sales-grid-groups", groupController.GetSalesGrid)
			groups.GET("/flight-date-mismatches", groupController.GetFlightDateMismatches)
			groups.POST("/import", groupController.ImportGroups)
			groups.GET("/:id", groupController.GetGroup)
			groups.PUT("/:id", groupController.UpdateGroup)
			groups.DELETE("/:id", groupController.DeleteGroup)
			groups.GET("/:id/flights", groupController.GetGroupFlights)
			groups.POST("/:id/flights", groupController.LinkFlight)
			groups.DELETE("/:id/flights/:flightId", groupController.UnlinkFlight)
			groups.GET("/:id/transfers", groupController.GetGroupTransfers)
			groups.POST("/:id/transfers", groupController.AssignTransfer)
			groups.PUT("/:id/transfers/:assignmentId", groupController.UpdateTransferAssignment)
			groups.DELETE("/:id/transfers/:assignmentId", groupController.RemoveTransferAssignment)
			groups.GET("/:id/participants", groupController.GetGroupParticipants)
			groups.GET("/:id/programme-slots", groupController.GetGroupProgramme)
		}

		flights := api.Group("/flights")
		{
			flights.GET("", flightController.GetFlights)
			flights.POST("", flightController.CreateFlight)
			flights.GET("/:id", flightController.GetFlight)
			flights.PUT("/:id", flightController.UpdateFlight)
			flights.GET("/:id/groups", flightController.GetFlightGroups)
		}

		transfers := api.Group("/transfers")
		{
			transfers.GET("", transferController.GetTransfers)
			transfers.POST("", transferController.CreateTransfer)
			transfers.GET("/transport-transfers", transferController.GetTransportTransfers)
			transfers.GET("/:id", transferController.GetTransfer)
			transfers.PUT("/:id", transferController.UpdateTransfer)
			transfers.DELETE("/:id", transferController.DeleteTransfer)
		}

		centres := api.Group("/centres")
		{
			centres.GET("", centreController.GetCentres)
			centres.GET("/occupancy", centreController.GetOccupancy)
			centres.GET("/:id", centreController.GetCentre)
			centres.GET("/:id/programme-slots", centreController.GetCentreProgramme)

			// Centre writes are restricted to admins
			centresAdmin := centres.Group("")
			centresAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				centresAdmin.POST("", centreController.CreateCentre)
				centresAdmin.PUT("/:id", centreController.UpdateCentre)
				centresAdmin.DELETE("/:id", centreController.DeleteCentre)
			}
		}

		participants := api.Group("/participants")
		{
			participants.GET("", participantController.GetParticipants)
			participants.POST("", participantController.CreateParticipant)
			participants.GET("/:id", participantController.GetParticipant)
			participants.PUT("/:id", participantController.UpdateParticipant)
			participants.DELETE("/:id", participantController.DeleteParticipant)
		}

		staff := api.Group("/staff")
		{
			staff.GET("", staffController.GetStaff)
			staff.POST("", staffController.CreateStaffMember)
			staff.GET("/:id", staffController.GetStaffMember)
			staff.PUT("/:id", staffController.UpdateStaffMember)
			staff.DELETE("/:id", staffController.DeleteStaffMember)
			staff.GET("/:id/work-assignments", staffController.GetWorkAssignments)
			staff.POST("/:id/work-assignments", staffController.AddWorkAssignment)
			staff.DELETE("/:id/work-assignments/:assignmentId", staffController.RemoveWorkAssignment)
			staff.GET("/:id/accommodations", staffController.GetAccommodations)
			staff.POST("/:id/accommodations", staffController.AddAccommodation)
			staff.DELETE("/:id/accommodations/:accommodationId", staffController.RemoveAccommodation)
			staff.GET("/:id/documents", staffController.GetDocuments)
			staff.POST("/:id/documents", staffController.UploadDocument)
			staff.DELETE("/:id/documents/:documentId", staffController.RemoveDocument)
		}

		api.GET("/agencies", agencyController.GetAgencies)

		programme := api.Group("/programme-slots")
		{
			programme.POST("", programmeController.CreateSlot)
			programme.DELETE("/:id", programmeController.DeleteSlot)
		}
	}
}
