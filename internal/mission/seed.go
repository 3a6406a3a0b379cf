package mission

import (
	"time"

	"ecoaliados/pkg/models"
	"ecoaliados/pkg/utils"
)

// Seed returns the built-in starter collection used when no durable record
// exists yet (or the stored one is unreadable).
func Seed() []models.Mission {
	now := time.Now().UTC()

	return []models.Mission{
		{
			ID:           utils.GenerateMissionID(),
			Type:         models.MissionTypeCount,
			Title:        "Recycle 10 PET bottles",
			Description:  "Collect and drop off plastic bottles at any green point.",
			TargetCount:  10,
			CurrentCount: 0,
			Active:       true,
			CreatedAt:    now,
			Reward: &models.Reward{
				ID:    utils.GenerateRewardID(),
				Type:  models.RewardTypeBadge,
				Title: "Eco Starter",
			},
			Metadata: &models.MissionMetadata{
				Icon:       "🧴",
				Unit:       "bottles",
				DailyLimit: floatPtr(5),
				Priority:   intPtr(1),
			},
		},
		{
			ID:           utils.GenerateMissionID(),
			Type:         models.MissionTypeCount,
			Title:        "Collect 20 bottle caps",
			Description:  "Metal caps are melted down for wheelchairs programs.",
			TargetCount:  20,
			CurrentCount: 0,
			Active:       true,
			CreatedAt:    now,
			Reward: &models.Reward{
				ID:    utils.GenerateRewardID(),
				Type:  models.RewardTypePoints,
				Title: "50 eco points",
				Value: 50,
			},
			Metadata: &models.MissionMetadata{
				Icon:     "🔩",
				Unit:     "caps",
				Priority: intPtr(2),
			},
		},
		{
			ID:           utils.GenerateMissionID(),
			Type:         models.MissionTypeCount,
			Title:        "Recycle 15 aluminum cans",
			Description:  "Rinse them first; crushed cans take less space.",
			TargetCount:  15,
			CurrentCount: 0,
			Active:       true,
			CreatedAt:    now,
			Reward: &models.Reward{
				ID:    utils.GenerateRewardID(),
				Type:  models.RewardTypeDiscount,
				Title: "10% off at the eco store",
				Value: 10,
			},
			Metadata: &models.MissionMetadata{
				Icon:       "🥫",
				Unit:       "cans",
				DailyLimit: floatPtr(10),
				Priority:   intPtr(3),
			},
		},
		{
			ID:           utils.GenerateMissionID(),
			Type:         models.MissionTypeCount,
			Title:        "Drop off 5 used batteries",
			Description:  "Batteries never go in the regular bin.",
			TargetCount:  5,
			CurrentCount: 0,
			Active:       true,
			CreatedAt:    now,
			Reward: &models.Reward{
				ID:    utils.GenerateRewardID(),
				Type:  models.RewardTypeItem,
				Title: "Reusable tote bag",
			},
			Metadata: &models.MissionMetadata{
				Icon:     "🔋",
				Unit:     "batteries",
				Priority: intPtr(4),
			},
		},
		{
			// Visit-based missions are modeled but only count-based
			// progress logic exists today.
			ID:           utils.GenerateMissionID(),
			Type:         models.MissionTypeVisit,
			Title:        "Visit the recycling point 3 times",
			Description:  "Any green point in your neighborhood counts.",
			TargetCount:  3,
			CurrentCount: 0,
			Active:       true,
			CreatedAt:    now,
			Metadata: &models.MissionMetadata{
				Icon:     "📍",
				Unit:     "visits",
				Priority: intPtr(5),
			},
		},
	}
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
