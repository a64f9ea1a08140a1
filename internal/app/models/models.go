package models

// RoleType defines the back-office user role
type RoleType string

const (
	RoleAdmin    RoleType = "ADMIN"
	RoleOperator RoleType = "OPERATOR"
)

// FlightDirection distinguishes arrival and departure legs.
// Transfers share the same direction vocabulary.
type FlightDirection string

const (
	DirectionArrival   FlightDirection = "arrival"
	DirectionDeparture FlightDirection = "departure"
)

// ParticipantType distinguishes students from group leaders
type ParticipantType string

const (
	ParticipantStudent ParticipantType = "student"
	ParticipantLeader  ParticipantType = "leader"
)

// ProgrammeSlotTime is the period of day a programme slot occupies
type ProgrammeSlotTime string

const (
	SlotMorning   ProgrammeSlotTime = "morning"
	SlotAfternoon ProgrammeSlotTime = "afternoon"
	SlotEvening   ProgrammeSlotTime = "evening"
)
