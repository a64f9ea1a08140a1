package models

import "time"

// Staff represents an employed staff member (teachers, activity leaders,
// centre managers).
type Staff struct {
	ID            int64      `json:"id"`
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Role          string     `json:"role"`
	ContractStart *time.Time `json:"-"`
	ContractEnd   *time.Time `json:"-"`
}

// StaffWorkAssignment places a staff member at a centre for a date range.
type StaffWorkAssignment struct {
	ID        int64     `json:"id"`
	StaffID   int64     `json:"staffId"`
	CentreID  int64     `json:"centreId"`
	StartDate time.Time `json:"-"`
	EndDate   time.Time `json:"-"`
}

// StaffAccommodation records where a staff member lodges while working.
type StaffAccommodation struct {
	ID        int64     `json:"id"`
	StaffID   int64     `json:"staffId"`
	CentreID  int64     `json:"centreId"`
	StartDate time.Time `json:"-"`
	EndDate   time.Time `json:"-"`
	Lodging   string    `json:"lodging"`
}

// StaffDocument is an uploaded file attached to a staff member.
type StaffDocument struct {
	ID          int64     `json:"id"`
	StaffID     int64     `json:"staffId"`
	FileName    string    `json:"fileName"`
	FileURL     string    `json:"fileUrl"`
	FileSize    int64     `json:"fileSize"`
	ContentType string    `json:"contentType"`
	UploadedAt  time.Time `json:"uploadedAt"`
}
