package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"buildtrack/models"
)

const dateLayout = "2006-01-02"

// InitializeTimeline lays out the standard SA build phases sequentially from
// startDate: each phase spans durationDays (inclusive of its start), and the
// next phase starts the following day, so phases are back-to-back with no
// gaps or overlaps. The dependency graph is a linear chain: every phase
// after the first depends on its predecessor only.
func InitializeTimeline(projectID, startDate string) (*models.TimelineData, error) {
	return GenerateTimeline(projectID, startDate, SABuildPhasesTemplate)
}

// GenerateTimeline builds a timeline from an explicit ordered phase
// template. Dates are never re-propagated after creation; later edits to one
// phase leave its neighbours untouched.
func GenerateTimeline(projectID, startDate string, template []PhaseTemplate) (*models.TimelineData, error) {
	current, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}

	phases := make([]models.BuildPhase, 0, len(template))
	for i, tpl := range template {
		phaseStart := current
		phaseEnd := current.AddDate(0, 0, tpl.DurationDays-1)
		current = phaseEnd.AddDate(0, 0, 1)

		start := phaseStart.Format(dateLayout)
		end := phaseEnd.Format(dateLayout)
		phases = append(phases, models.BuildPhase{
			ID:              uuid.NewString(),
			Name:            tpl.Name,
			Description:     tpl.Description,
			Order:           i + 1,
			Status:          models.PhaseNotStarted,
			StartDate:       &start,
			EndDate:         &end,
			PercentComplete: 0,
			DependsOn:       []string{},
			Color:           tpl.Color,
		})
	}

	for i := 1; i < len(phases); i++ {
		phases[i].DependsOn = []string{phases[i-1].ID}
	}

	return &models.TimelineData{
		ProjectID:   projectID,
		Phases:      phases,
		Milestones:  []models.Milestone{},
		LastUpdated: nowISO(),
	}, nil
}

// PhaseUpdate is a partial update to one phase; nil fields are unchanged.
// Dates and percentages are merged as given: there is no clamping and no
// recomputation of dependent phases.
type PhaseUpdate struct {
	Name            *string             `json:"name"`
	Description     *string             `json:"description"`
	Status          *models.PhaseStatus `json:"status"`
	StartDate       *string             `json:"startDate"`
	EndDate         *string             `json:"endDate"`
	ActualStartDate *string             `json:"actualStartDate"`
	ActualEndDate   *string             `json:"actualEndDate"`
	PercentComplete *float64            `json:"percentComplete"`
	Color           *string             `json:"color"`
}

// UpdatePhase merges the update into the identified phase and stamps the
// timeline. It reports whether the phase was found.
func UpdatePhase(timeline *models.TimelineData, phaseID string, update PhaseUpdate) bool {
	for i := range timeline.Phases {
		if timeline.Phases[i].ID != phaseID {
			continue
		}
		phase := &timeline.Phases[i]
		if update.Name != nil {
			phase.Name = *update.Name
		}
		if update.Description != nil {
			phase.Description = *update.Description
		}
		if update.Status != nil {
			phase.Status = *update.Status
		}
		if update.StartDate != nil {
			phase.StartDate = update.StartDate
		}
		if update.EndDate != nil {
			phase.EndDate = update.EndDate
		}
		if update.ActualStartDate != nil {
			phase.ActualStartDate = update.ActualStartDate
		}
		if update.ActualEndDate != nil {
			phase.ActualEndDate = update.ActualEndDate
		}
		if update.PercentComplete != nil {
			phase.PercentComplete = *update.PercentComplete
		}
		if update.Color != nil {
			phase.Color = *update.Color
		}
		timeline.LastUpdated = nowISO()
		return true
	}
	return false
}

// NewMilestoneInput carries the fields for a new milestone.
type NewMilestoneInput struct {
	PhaseID     string `json:"phaseId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TargetDate  string `json:"targetDate"`
}

// AddMilestone appends a milestone and stamps the timeline.
func AddMilestone(timeline *models.TimelineData, input NewMilestoneInput) *models.Milestone {
	milestone := models.Milestone{
		ID:          uuid.NewString(),
		PhaseID:     input.PhaseID,
		Name:        input.Name,
		Description: input.Description,
		TargetDate:  input.TargetDate,
	}
	timeline.Milestones = append(timeline.Milestones, milestone)
	timeline.LastUpdated = nowISO()
	return &timeline.Milestones[len(timeline.Milestones)-1]
}

// CompleteMilestone marks a milestone done as of completedDate. It reports
// whether the milestone was found.
func CompleteMilestone(timeline *models.TimelineData, milestoneID, completedDate string) bool {
	for i := range timeline.Milestones {
		if timeline.Milestones[i].ID == milestoneID {
			timeline.Milestones[i].IsCompleted = true
			timeline.Milestones[i].CompletedDate = &completedDate
			timeline.LastUpdated = nowISO()
			return true
		}
	}
	return false
}
