package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mdjurovic/liftcoach/internal/coach/model"
	"github.com/mdjurovic/liftcoach/internal/coach/recovery"
	"github.com/mdjurovic/liftcoach/internal/coach/sfr"
)

// composeInsights turns the merged analyzer output into ranked insights.
func composeInsights(weeklyReport *WeeklyAdaptationReport, now time.Time) []model.CoachInsight {
	var insights []model.CoachInsight
	add := func(insightType model.InsightType, priority model.InsightPriority, title, body string, confidence float64) {
		insights = append(insights, model.NewInsight(insightType, priority, title, body, confidence, now))
	}

	if weeklyReport.Recovery.StressLevel == recovery.StressLevelExtreme {
		add(model.InsightTypeStress, model.InsightPriorityHigh,
			"Training stress is extreme",
			fmt.Sprintf(
				"stress score is %d/100: cut volume this week and protect sleep before anything else",
				weeklyReport.Recovery.StressScore,
			),
			0.9)
	}

	switch weeklyReport.Recovery.Status {
	case recovery.StatusOvertrained:
		add(model.InsightTypeRecovery, model.InsightPriorityHigh,
			"Signs of overtraining",
			fmt.Sprintf(
				"average RPE %.1f with readiness at %d: take %d full rest days",
				weeklyReport.Recovery.AvgRPE,
				weeklyReport.Recovery.ReadinessScore,
				weeklyReport.Recovery.SuggestedRestDays,
			),
			0.85)
	case recovery.StatusFatigued:
		add(model.InsightTypeRecovery, model.InsightPriorityMedium,
			"Fatigue is accumulating",
			"back off the intensity for a session or two and prioritize recovery",
			0.7)
	}

	for _, metric := range weeklyReport.Volume {
		switch metric.Status {
		case model.VolumeStatusUnderMEV:
			add(model.InsightTypeVolume, model.InsightPriorityMedium,
				fmt.Sprintf("Not enough %s volume", metric.MuscleGroup),
				fmt.Sprintf(
					"%d sets this week, below the %d-set minimum effective volume: add %d+ sets",
					metric.WeeklySets, metric.MEV, metric.MEV-metric.WeeklySets,
				),
				0.75)
		case model.VolumeStatusAboveMRV, model.VolumeStatusMaxed:
			add(model.InsightTypeVolume, model.InsightPriorityMedium,
				fmt.Sprintf("Too much %s volume", metric.MuscleGroup),
				fmt.Sprintf(
					"%d sets this week against a maximum recoverable volume of %d: trim the accessories",
					metric.WeeklySets, metric.MRV,
				),
				0.75)
		}
	}

	for _, result := range weeklyReport.Plateaus {
		if !result.IsOnPlateau {
			continue
		}
		priority := model.InsightPriorityMedium
		if result.WeeksSinceLastRecord >= 8 {
			priority = model.InsightPriorityHigh
		}
		add(model.InsightTypePlateau, priority,
			fmt.Sprintf("%s has plateaued", result.ExerciseName),
			result.Message,
			0.7)
	}

	for _, assessment := range weeklyReport.Exercises {
		switch assessment.Status {
		case sfr.StatusBlacklisted:
			add(model.InsightTypeExercise, model.InsightPriorityHigh,
				fmt.Sprintf("Drop %s for now", assessment.ExerciseName),
				fmt.Sprintf(
					"%d pain reports across %d sets: swap it for a joint-friendlier variation",
					assessment.Feedback.PainReports, assessment.Feedback.TotalSets,
				),
				0.8)
		case sfr.StatusProven:
			if assessment.SFR.Score >= 4 {
				add(model.InsightTypeExercise, model.InsightPriorityLow,
					fmt.Sprintf("%s is working well for you", assessment.ExerciseName),
					assessment.SFR.Reasoning,
					assessment.SFR.Confidence)
			}
		}
	}

	if !weeklyReport.Recovery.HasReadinessData {
		add(model.InsightTypeReadiness, model.InsightPriorityLow,
			"No readiness surveys this week",
			"fill the morning survey to sharpen recovery and stress tracking",
			0.6)
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Priority.Rank() < insights[j].Priority.Rank()
	})
	return insights
}

// composePriorityActions ranks the most urgent calls to action:
// extreme stress beats overtraining beats under-volume beats the daily
// verdict.
func composePriorityActions(weeklyReport *WeeklyAdaptationReport) []string {
	var actions []string

	if weeklyReport.Recovery.StressLevel == recovery.StressLevelExtreme {
		actions = append(actions, "Reduce overall training stress: this week scored extreme")
	}
	if weeklyReport.Recovery.Status == recovery.StatusOvertrained {
		actions = append(actions, fmt.Sprintf(
			"Take %d rest days before the next hard session",
			weeklyReport.Recovery.SuggestedRestDays,
		))
	}
	for _, metric := range weeklyReport.Volume {
		if metric.Status == model.VolumeStatusUnderMEV {
			actions = append(actions, fmt.Sprintf(
				"Bring %s up to at least %d weekly sets", metric.MuscleGroup, metric.MEV,
			))
		}
	}
	actions = append(actions, weeklyReport.TrainToday.Message)

	return actions
}

func composeSummary(weeklyReport *WeeklyAdaptationReport) string {
	var parts []string

	parts = append(parts, fmt.Sprintf(
		"%d sessions and %d working sets this week",
		weeklyReport.WeekSummary.Sessions, weeklyReport.WeekSummary.CompletedSets,
	))

	var under, over []string
	for _, metric := range weeklyReport.Volume {
		switch metric.Status {
		case model.VolumeStatusUnderMEV:
			under = append(under, metric.MuscleGroup)
		case model.VolumeStatusAboveMRV, model.VolumeStatusMaxed:
			over = append(over, metric.MuscleGroup)
		}
	}
	if len(under) > 0 {
		parts = append(parts, "undertrained: "+strings.Join(under, ", "))
	}
	if len(over) > 0 {
		parts = append(parts, "overreaching: "+strings.Join(over, ", "))
	}

	parts = append(parts, fmt.Sprintf(
		"recovery %s, stress %s", weeklyReport.Recovery.Status, weeklyReport.Recovery.StressLevel,
	))

	if prCount := len(weeklyReport.WeekSummary.NewRecords); prCount > 0 {
		parts = append(parts, fmt.Sprintf("%d new personal records", prCount))
	}

	return strings.Join(parts, "; ")
}

func composeTrainTodayVerdict(analysis recovery.Analysis) TrainTodayVerdict {
	switch analysis.Status {
	case recovery.StatusOvertrained:
		return TrainTodayVerdict{
			CanTrain: false,
			Message: fmt.Sprintf(
				"Rest today: recovery says %d days off", analysis.SuggestedRestDays,
			),
		}
	case recovery.StatusFatigued:
		return TrainTodayVerdict{
			CanTrain: true,
			Message:  "Train light today: keep RPE at 7 or below",
		}
	default:
		return TrainTodayVerdict{
			CanTrain: true,
			Message:  "Good to train today",
		}
	}
}
