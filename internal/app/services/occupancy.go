package services

import (
	"time"

	"github.com/selim/groupdesk/internal/app/models"
	"github.com/selim/groupdesk/internal/app/models/dto"
	"github.com/selim/groupdesk/internal/pkg/helpers"
)

// DefaultOccupancyWindowDays is the trailing window for the occupancy view:
// groups that departed more than this many days before today are dropped.
const DefaultOccupancyWindowDays = 30

// AggregateOccupancy folds per-group stay ranges into a per-centre,
// per-day headcount. Every day from arrival to departure inclusive counts
// as occupied. Nil allocation counts add zero but still mark the day.
// An inverted range contributes no days.
func AggregateOccupancy(rows []models.CentreOccupancyRow, today time.Time, windowDays int) map[string]map[string]dto.OccupancyTally {
	cutoff := helpers.TruncateToDay(today).AddDate(0, 0, -windowDays)

	occupancy := make(map[string]map[string]dto.OccupancyTally)
	for _, row := range rows {
		departure := helpers.TruncateToDay(row.DepartureDate)
		if departure.Before(cutoff) {
			continue
		}

		days, ok := occupancy[row.CentreName]
		if !ok {
			days = make(map[string]dto.OccupancyTally)
			occupancy[row.CentreName] = days
		}

		students := helpers.IntValue(row.StudentsAllocated)
		leaders := helpers.IntValue(row.LeadersAllocated)

		for d := helpers.TruncateToDay(row.ArrivalDate); !d.After(departure); d = d.AddDate(0, 0, 1) {
			key := helpers.FormatDate(d)
			tally := days[key]
			tally.Students += students
			tally.Leaders += leaders
			days[key] = tally
		}
	}

	return occupancy
}
