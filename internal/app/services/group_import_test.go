package services

import (
	"testing"

	"github.com/selim/groupdesk/internal/app/models/dto"
)

func validRecord() dto.ImportGroupRecord {
	return dto.ImportGroupRecord{
		Name:          "Milan Summer A",
		AgencyName:    "Linguaviaggi",
		CentreName:    "Oxford",
		ArrivalDate:   "2024-07-01",
		DepartureDate: "2024-07-14",
	}
}

func TestValidateImportRecord_Valid(t *testing.T) {
	record := validRecord()
	record.StudentsAllocated = "25"
	record.LeadersAllocated = "2"

	group, msg := validateImportRecord(record)
	if msg != "" {
		t.Fatalf("expected valid record, got message %q", msg)
	}
	if group.Name != "Milan Summer A" {
		t.Errorf("unexpected name %q", group.Name)
	}
	if group.StudentsAllocated == nil || *group.StudentsAllocated != 25 {
		t.Errorf("expected studentsAllocated 25, got %v", group.StudentsAllocated)
	}
	if group.ArrivalDate.Format("2006-01-02") != "2024-07-01" {
		t.Errorf("unexpected arrival date %v", group.ArrivalDate)
	}
}

func TestValidateImportRecord_TrimsFields(t *testing.T) {
	record := validRecord()
	record.Name = "  Milan Summer A  "
	record.AgencyName = " Linguaviaggi "

	group, msg := validateImportRecord(record)
	if msg != "" {
		t.Fatalf("expected valid record, got message %q", msg)
	}
	if group.Name != "Milan Summer A" || group.AgencyName != "Linguaviaggi" {
		t.Errorf("fields not trimmed: %q / %q", group.Name, group.AgencyName)
	}
}

func TestValidateImportRecord_MissingRequiredFields(t *testing.T) {
	cases := []struct {
		label  string
		mutate func(*dto.ImportGroupRecord)
	}{
		{"missing name", func(r *dto.ImportGroupRecord) { r.Name = "  " }},
		{"missing arrival", func(r *dto.ImportGroupRecord) { r.ArrivalDate = "" }},
		{"missing departure", func(r *dto.ImportGroupRecord) { r.DepartureDate = "" }},
	}

	for _, tc := range cases {
		record := validRecord()
		tc.mutate(&record)
		group, msg := validateImportRecord(record)
		if msg == "" {
			t.Errorf("%s: expected a validation message", tc.label)
		}
		if group != nil {
			t.Errorf("%s: expected nil group", tc.label)
		}
	}
}

func TestValidateImportRecord_MalformedDates(t *testing.T) {
	record := validRecord()
	record.ArrivalDate = "01/07/2024"
	if _, msg := validateImportRecord(record); msg == "" {
		t.Error("expected a message for a non-ISO arrival date")
	}

	record = validRecord()
	record.DepartureDate = "2024-13-40"
	if _, msg := validateImportRecord(record); msg == "" {
		t.Error("expected a message for an impossible departure date")
	}
}

func TestValidateImportRecord_DepartureBeforeArrival(t *testing.T) {
	record := validRecord()
	record.ArrivalDate = "2024-07-14"
	record.DepartureDate = "2024-07-01"

	group, msg := validateImportRecord(record)
	if msg == "" {
		t.Error("expected a message for inverted stay dates")
	}
	if group != nil {
		t.Error("expected nil group for inverted stay dates")
	}
}

func TestValidateImportRecord_SameDayStayIsValid(t *testing.T) {
	record := validRecord()
	record.ArrivalDate = "2024-07-01"
	record.DepartureDate = "2024-07-01"

	if _, msg := validateImportRecord(record); msg != "" {
		t.Errorf("same-day stay must be valid, got %q", msg)
	}
}

func namedRecord(name string) dto.ImportGroupRecord {
	record := validRecord()
	record.Name = name
	return record
}

func TestValidateImportBatch_SplitsValidAndInvalidRows(t *testing.T) {
	badDates := namedRecord("Bad Dates")
	badDates.ArrivalDate = "2024-07-14"
	badDates.DepartureDate = "2024-07-01"

	records := []dto.ImportGroupRecord{
		namedRecord("Alpha"),
		{Name: "No Arrival", DepartureDate: "2024-07-14"},
		namedRecord("Beta"),
		badDates,
		namedRecord("Gamma"),
	}

	valid, validRows, rowErrors := validateImportBatch(records)

	if len(valid) != 3 {
		t.Fatalf("expected 3 valid groups, got %d", len(valid))
	}
	wantRows := []int{0, 2, 4}
	for i, row := range validRows {
		if row != wantRows[i] {
			t.Errorf("validRows[%d]: got %d, want %d", i, row, wantRows[i])
		}
	}
	if valid[1].Name != "Beta" {
		t.Errorf("valid slice out of order: %q", valid[1].Name)
	}

	if len(rowErrors) != 2 {
		t.Fatalf("expected 2 row errors, got %d", len(rowErrors))
	}
	if rowErrors[0].Row != 1 || rowErrors[0].Name != "No Arrival" {
		t.Errorf("first row error misattributed: %+v", rowErrors[0])
	}
	if rowErrors[1].Row != 3 || rowErrors[1].Name != "Bad Dates" {
		t.Errorf("second row error misattributed: %+v", rowErrors[1])
	}
}

func TestMapDuplicateRows_ReportsRequestRowIndices(t *testing.T) {
	records := []dto.ImportGroupRecord{
		namedRecord("Alpha"),
		{Name: "Invalid"},
		namedRecord("Beta"),
		{Name: "Also Invalid"},
		namedRecord("Gamma"),
	}

	_, validRows, _ := validateImportBatch(records)

	// The storage layer reports duplicates against the valid slice:
	// positions 1 and 2 are Beta and Gamma, request rows 2 and 4.
	conflicts := mapDuplicateRows(records, validRows, []int{1, 2})

	if len(conflicts) != 2 {
		t.Fatalf("expected 2 conflicts, got %d", len(conflicts))
	}
	if conflicts[0].Row != 2 || conflicts[0].Name != "Beta" {
		t.Errorf("first conflict misattributed: %+v", conflicts[0])
	}
	if conflicts[1].Row != 4 || conflicts[1].Name != "Gamma" {
		t.Errorf("second conflict misattributed: %+v", conflicts[1])
	}
	for _, c := range conflicts {
		if c.Message != "a group with this name already exists" {
			t.Errorf("unexpected conflict message %q", c.Message)
		}
	}
}

func TestMapDuplicateRows_NoDuplicates(t *testing.T) {
	records := []dto.ImportGroupRecord{namedRecord("Alpha")}
	_, validRows, _ := validateImportBatch(records)

	conflicts := mapDuplicateRows(records, validRows, nil)
	if len(conflicts) != 0 {
		t.Errorf("expected no conflicts, got %v", conflicts)
	}
}

func TestValidateImportRecord_NumericCoercion(t *testing.T) {
	record := validRecord()
	record.StudentsAllocated = "10"
	record.LeadersAllocated = "x"
	record.StudentsBooked = ""
	record.LeadersBooked = "0"

	group, msg := validateImportRecord(record)
	if msg != "" {
		t.Fatalf("expected valid record, got message %q", msg)
	}
	if group.StudentsAllocated == nil || *group.StudentsAllocated != 10 {
		t.Errorf("expected studentsAllocated 10, got %v", group.StudentsAllocated)
	}
	if group.LeadersAllocated != nil {
		t.Errorf("malformed count must coerce to nil, got %v", group.LeadersAllocated)
	}
	if group.StudentsBooked != nil {
		t.Errorf("blank count must coerce to nil, got %v", group.StudentsBooked)
	}
	if group.LeadersBooked == nil || *group.LeadersBooked != 0 {
		t.Errorf("zero is a real value, got %v", group.LeadersBooked)
	}
}
