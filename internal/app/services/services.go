package services

import (
	"github.com/selim/groupdesk/internal/app/repositories"
	"github.com/selim/groupdesk/internal/pkg/auth"
	"github.com/selim/groupdesk/internal/pkg/filestorage"
)

// Services holds all the service instances
type Services struct {
	AuthService        AuthService
	GroupService       GroupService
	FlightService      FlightService
	TransferService    TransferService
	CentreService      CentreService
	ParticipantService ParticipantService
	StaffService       StaffService
	AgencyService      AgencyService
	ProgrammeService   ProgrammeService
}

// NewServices initializes all services
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, storage filestorage.Storage) *Services {
	return &Services{
		AuthService:        NewAuthService(repos.UserRepository, jwtService),
		GroupService:       NewGroupService(repos.GroupRepository, repos.GroupFlightRepository),
		FlightService:      NewFlightService(repos.FlightRepository, repos.GroupFlightRepository),
		TransferService:    NewTransferService(repos.TransferRepository, repos.GroupTransferRepository, repos.GroupRepository),
		CentreService:      NewCentreService(repos.CentreRepository, repos.GroupRepository),
		ParticipantService: NewParticipantService(repos.ParticipantRepository, repos.GroupRepository),
		StaffService:       NewStaffService(repos.StaffRepository, storage),
		AgencyService:      NewAgencyService(repos.AgencyRepository),
		ProgrammeService:   NewProgrammeService(repos.ProgrammeRepository, repos.GroupRepository, repos.CentreRepository),
	}
}
