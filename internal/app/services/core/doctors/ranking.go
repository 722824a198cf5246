package doctors

import (
	"math"
	"sort"
	"strings"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/dto/responses"
)

const (
	rankingWeightRating         = 0.40
	rankingWeightExperience     = 0.30
	rankingWeightFeedbackCount  = 0.20
	rankingWeightSpecialtyMatch = 0.10

	neutralRatingScore = 50.0
	maxRating          = 5.0
	experienceCapYears = 20.0
	feedbackCountCap   = 50.0
)

// rankingScore is a 0..100 composite rounded to two decimals. A doctor without
// feedback gets the neutral rating score.
func rankingScore(doctor *models.Doctor, stats models.FeedbackStats, specialty string) float64 {
	rating := neutralRatingScore
	if stats.Count > 0 {
		rating = stats.AverageRating / maxRating * 100
	}
	experience := math.Min(float64(max(doctor.YearsOfExperience, 0))/experienceCapYears*100, 100)
	feedbackCount := math.Min(float64(stats.Count)/feedbackCountCap*100, 100)

	specialtyMatch := 0.0
	if specialty != "" && strings.EqualFold(doctor.Specialty, specialty) {
		specialtyMatch = 100
	}

	total := rating*rankingWeightRating +
		experience*rankingWeightExperience +
		feedbackCount*rankingWeightFeedbackCount +
		specialtyMatch*rankingWeightSpecialtyMatch
	return math.Round(total*100) / 100
}

// rankDoctors orders doctors by score, highest first. Equal scores fall back to
// name order so the list is stable between calls.
func rankDoctors(doctors []models.Doctor, stats map[string]models.FeedbackStats, specialty string) []responses.RecommendedDoctor {
	ranked := make([]responses.RecommendedDoctor, 0, len(doctors))
	for i := range doctors {
		doctorStats := stats[doctors[i].ID]
		ranked = append(ranked, responses.RecommendedDoctor{
			Doctor:        doctors[i].ToResponse(),
			RankingScore:  rankingScore(&doctors[i], doctorStats, specialty),
			AverageRating: math.Round(doctorStats.AverageRating*10) / 10,
			FeedbackCount: doctorStats.Count,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].RankingScore != ranked[j].RankingScore {
			return ranked[i].RankingScore > ranked[j].RankingScore
		}
		if ranked[i].FullName != ranked[j].FullName {
			return ranked[i].FullName < ranked[j].FullName
		}
		return ranked[i].ID < ranked[j].ID
	})
	return ranked
}
