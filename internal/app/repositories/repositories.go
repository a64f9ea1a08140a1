package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository          *UserRepository
	AgencyRepository        *AgencyRepository
	CentreRepository        *CentreRepository
	GroupRepository         *GroupRepository
	GroupFlightRepository   *GroupFlightRepository
	GroupTransferRepository *GroupTransferRepository
	FlightRepository        *FlightRepository
	TransferRepository      *TransferRepository
	ParticipantRepository   *ParticipantRepository
	StaffRepository         *StaffRepository
	ProgrammeRepository     *ProgrammeRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:          NewUserRepository(db),
		AgencyRepository:        NewAgencyRepository(db),
		CentreRepository:        NewCentreRepository(db),
		GroupRepository:         NewGroupRepository(db),
		GroupFlightRepository:   NewGroupFlightRepository(db),
		GroupTransferRepository: NewGroupTransferRepository(db),
		FlightRepository:        NewFlightRepository(db),
		TransferRepository:      NewTransferRepository(db),
		ParticipantRepository:   NewParticipantRepository(db),
		StaffRepository:         NewStaffRepository(db),
		ProgrammeRepository:     NewProgrammeRepository(db),
	}
}
