package services

import (
	"strings"

	"github.com/selim/groupdesk/internal/app/models"
	"github.com/selim/groupdesk/internal/app/models/dto"
	"github.com/selim/groupdesk/internal/pkg/helpers"
)

// validateImportBatch validates every record of a batch. It returns the
// group models worth inserting, the request-row index each of them came
// from, and the per-row errors for the rest.
func validateImportBatch(records []dto.ImportGroupRecord) (valid []*models.Group, validRows []int, rowErrors []dto.ImportRowError) {
	rowErrors = []dto.ImportRowError{}
	for i, record := range records {
		group, msg := validateImportRecord(record)
		if msg != "" {
			rowErrors = append(rowErrors, dto.ImportRowError{Row: i, Name: record.Name, Message: msg})
			continue
		}
		valid = append(valid, group)
		validRows = append(validRows, i)
	}
	return valid, validRows, rowErrors
}

// mapDuplicateRows translates duplicate positions reported against the
// valid slice back into request-row conflict errors. validRows is the
// mapping produced by validateImportBatch.
func mapDuplicateRows(records []dto.ImportGroupRecord, validRows, duplicates []int) []dto.ImportRowError {
	conflicts := make([]dto.ImportRowError, 0, len(duplicates))
	for _, idx := range duplicates {
		row := validRows[idx]
		conflicts = append(conflicts, dto.ImportRowError{
			Row:     row,
			Name:    records[row].Name,
			Message: "a group with this name already exists",
		})
	}
	return conflicts
}

// validateImportRecord turns one raw import row into a group model.
// A non-empty message means the row is invalid and must be skipped;
// valid rows get their numeric fields coerced integer-or-null.
func validateImportRecord(record dto.ImportGroupRecord) (*models.Group, string) {
	name := strings.TrimSpace(record.Name)
	if name == "" {
		return nil, "name is required"
	}
	if strings.TrimSpace(record.ArrivalDate) == "" {
		return nil, "arrivalDate is required"
	}
	if strings.TrimSpace(record.DepartureDate) == "" {
		return nil, "departureDate is required"
	}

	arrival, err := helpers.ParseDate(strings.TrimSpace(record.ArrivalDate))
	if err != nil {
		return nil, "arrivalDate must be a valid YYYY-MM-DD date"
	}
	departure, err := helpers.ParseDate(strings.TrimSpace(record.DepartureDate))
	if err != nil {
		return nil, "departureDate must be a valid YYYY-MM-DD date"
	}
	if departure.Before(arrival) {
		return nil, "departureDate is before arrivalDate"
	}

	return &models.Group{
		Name:              name,
		AgencyName:        strings.TrimSpace(record.AgencyName),
		CentreName:        strings.TrimSpace(record.CentreName),
		ArrivalDate:       arrival,
		DepartureDate:     departure,
		StudentsAllocated: helpers.IntOrNull(record.StudentsAllocated),
		LeadersAllocated:  helpers.IntOrNull(record.LeadersAllocated),
		StudentsBooked:    helpers.IntOrNull(record.StudentsBooked),
		LeadersBooked:     helpers.IntOrNull(record.LeadersBooked),
	}, ""
}
