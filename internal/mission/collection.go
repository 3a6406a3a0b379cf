package mission

import (
	"time"

	"ecoaliados/pkg/models"
)

// ReportToCollection locates a mission by id and applies a report to it.
//
// On failure the original collection is returned unchanged alongside the
// failure result. On success the returned collection is a new slice in which
// exactly the matched element is replaced; every other element is the same
// value as in the input, so consumers can detect change cheaply.
func ReportToCollection(missions []models.Mission, missionID string, added float64, note string, ref time.Time) (models.ReportResult, []models.Mission) {
	if missions == nil {
		return models.Failure(models.ErrCodeInvalidCollection,
			"Mission collection is not valid."), missions
	}

	idx := -1
	for i := range missions {
		if missions[i].ID == missionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Failure(models.ErrCodeMissionNotFound,
			"Mission not found."), missions
	}

	result := ApplyReport(missions[idx], added, note, ref)
	if !result.Success {
		return result, missions
	}

	updated := make([]models.Mission, len(missions))
	copy(updated, missions)
	updated[idx] = *result.Mission
	return result, updated
}

// FindByID returns the mission with the given id, or nil.
func FindByID(missions []models.Mission, missionID string) *models.Mission {
	for i := range missions {
		if missions[i].ID == missionID {
			return &missions[i]
		}
	}
	return nil
}
