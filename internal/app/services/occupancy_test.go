package services

import (
	"testing"
	"time"

	"github.com/selim/groupdesk/internal/app/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int {
	return &v
}

func TestAggregateOccupancy_CountsEveryStayDay(t *testing.T) {
	rows := []models.CentreOccupancyRow{
		{
			CentreName:        "Oxford",
			ArrivalDate:       date(2024, 7, 1),
			DepartureDate:     date(2024, 7, 3),
			StudentsAllocated: intPtr(10),
			LeadersAllocated:  intPtr(2),
		},
	}

	result := AggregateOccupancy(rows, date(2024, 7, 10), DefaultOccupancyWindowDays)

	days, ok := result["Oxford"]
	if !ok {
		t.Fatal("expected an Oxford entry")
	}
	if len(days) != 3 {
		t.Fatalf("expected 3 occupied days, got %d", len(days))
	}
	for _, key := range []string{"2024-07-01", "2024-07-02", "2024-07-03"} {
		tally, ok := days[key]
		if !ok {
			t.Fatalf("missing day %s", key)
		}
		if tally.Students != 10 || tally.Leaders != 2 {
			t.Errorf("day %s: expected 10/2, got %d/%d", key, tally.Students, tally.Leaders)
		}
	}
}

func TestAggregateOccupancy_OverlappingGroupsSum(t *testing.T) {
	rows := []models.CentreOccupancyRow{
		{CentreName: "Oxford", ArrivalDate: date(2024, 7, 1), DepartureDate: date(2024, 7, 3), StudentsAllocated: intPtr(10), LeadersAllocated: intPtr(2)},
		{CentreName: "Oxford", ArrivalDate: date(2024, 7, 2), DepartureDate: date(2024, 7, 4), StudentsAllocated: intPtr(5), LeadersAllocated: intPtr(1)},
	}

	result := AggregateOccupancy(rows, date(2024, 7, 10), DefaultOccupancyWindowDays)

	tally := result["Oxford"]["2024-07-02"]
	if tally.Students != 15 || tally.Leaders != 3 {
		t.Errorf("overlap day: expected 15/3, got %d/%d", tally.Students, tally.Leaders)
	}
	tally = result["Oxford"]["2024-07-04"]
	if tally.Students != 5 || tally.Leaders != 1 {
		t.Errorf("tail day: expected 5/1, got %d/%d", tally.Students, tally.Leaders)
	}
}

func TestAggregateOccupancy_DropsGroupsOutsideWindow(t *testing.T) {
	rows := []models.CentreOccupancyRow{
		{CentreName: "Oxford", ArrivalDate: date(2024, 5, 1), DepartureDate: date(2024, 5, 10), StudentsAllocated: intPtr(10)},
	}

	result := AggregateOccupancy(rows, date(2024, 7, 10), 30)

	if len(result) != 0 {
		t.Errorf("departed before cutoff, expected empty result, got %v", result)
	}
}

func TestAggregateOccupancy_KeepsGroupDepartedOnCutoff(t *testing.T) {
	rows := []models.CentreOccupancyRow{
		{CentreName: "Oxford", ArrivalDate: date(2024, 6, 9), DepartureDate: date(2024, 6, 10), StudentsAllocated: intPtr(4)},
	}

	// Cutoff for today=2024-07-10 and a 30 day window is 2024-06-10.
	result := AggregateOccupancy(rows, date(2024, 7, 10), 30)

	if _, ok := result["Oxford"]; !ok {
		t.Error("group departing exactly on the cutoff day must be kept")
	}
}

func TestAggregateOccupancy_SingleDayStay(t *testing.T) {
	rows := []models.CentreOccupancyRow{
		{CentreName: "Dublin", ArrivalDate: date(2024, 7, 5), DepartureDate: date(2024, 7, 5), StudentsAllocated: intPtr(8), LeadersAllocated: intPtr(1)},
	}

	result := AggregateOccupancy(rows, date(2024, 7, 10), 30)

	if len(result["Dublin"]) != 1 {
		t.Fatalf("expected exactly one occupied day, got %d", len(result["Dublin"]))
	}
	if result["Dublin"]["2024-07-05"].Students != 8 {
		t.Errorf("expected 8 students on the single day")
	}
}

func TestAggregateOccupancy_InvertedRangeYieldsNoDays(t *testing.T) {
	rows := []models.CentreOccupancyRow{
		{CentreName: "Oxford", ArrivalDate: date(2024, 7, 8), DepartureDate: date(2024, 7, 5), StudentsAllocated: intPtr(10)},
	}

	result := AggregateOccupancy(rows, date(2024, 7, 10), 30)

	if len(result["Oxford"]) != 0 {
		t.Errorf("inverted range must contribute no days, got %v", result["Oxford"])
	}
}

func TestAggregateOccupancy_NilCountsStillMarkDays(t *testing.T) {
	rows := []models.CentreOccupancyRow{
		{CentreName: "Oxford", ArrivalDate: date(2024, 7, 1), DepartureDate: date(2024, 7, 1)},
	}

	result := AggregateOccupancy(rows, date(2024, 7, 10), 30)

	tally, ok := result["Oxford"]["2024-07-01"]
	if !ok {
		t.Fatal("day with nil allocations must still appear")
	}
	if tally.Students != 0 || tally.Leaders != 0 {
		t.Errorf("nil allocations count as zero, got %d/%d", tally.Students, tally.Leaders)
	}
}

func TestAggregateOccupancy_IgnoresTimeOfDay(t *testing.T) {
	rows := []models.CentreOccupancyRow{
		{
			CentreName:        "Oxford",
			ArrivalDate:       time.Date(2024, 7, 1, 23, 30, 0, 0, time.UTC),
			DepartureDate:     time.Date(2024, 7, 2, 1, 15, 0, 0, time.UTC),
			StudentsAllocated: intPtr(3),
		},
	}

	result := AggregateOccupancy(rows, date(2024, 7, 10), 30)

	if len(result["Oxford"]) != 2 {
		t.Errorf("expected 2 calendar days regardless of time of day, got %d", len(result["Oxford"]))
	}
}
