package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"buildtrack/services"
	"buildtrack/store"
)

// HandleTimelineGet returns a project's timeline, or 404 if it has not been
// generated yet.
func HandleTimelineGet(repos *store.Repos) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		timeline, err := repos.Timeline.Get(projectIDFrom(e))
		if err != nil {
			log.Printf("timeline_get: %v", err)
			return serverError(e, "Could not read timeline")
		}
		if timeline == nil {
			return notFound(e, "Timeline not initialized for this project")
		}
		return e.JSON(http.StatusOK, timeline)
	}
}

// HandleTimelineInitialize generates the phase schedule from a start date.
// Re-initializing replaces any existing schedule.
func HandleTimelineInitialize(repos *store.Repos) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := projectIDFrom(e)

		project, err := repos.Projects.Get(projectID)
		if err != nil {
			log.Printf("timeline_initialize: %v", err)
			return serverError(e, "Could not read project")
		}
		if project == nil {
			return notFound(e, "Project not found")
		}

		var body struct {
			StartDate string `json:"startDate"`
		}
		if err := e.BindBody(&body); err != nil {
			return badRequest(e, "Invalid request body")
		}
		if body.StartDate == "" && project.StartDate != nil {
			body.StartDate = *project.StartDate
		}
		if body.StartDate == "" {
			return badRequest(e, "Start date is required")
		}

		timeline, err := services.InitializeTimeline(projectID, body.StartDate)
		if err != nil {
			return badRequest(e, err.Error())
		}

		if err := repos.Timeline.Save(timeline); err != nil {
			log.Printf("timeline_initialize: %v", err)
			return serverError(e, "Could not save timeline")
		}

		return e.JSON(http.StatusOK, timeline)
	}
}

// HandlePhaseUpdate applies a partial update to one build phase. Dates of
// other phases are never recomputed.
func HandlePhaseUpdate(repos *store.Repos) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := projectIDFrom(e)
		timeline, err := repos.Timeline.Get(projectID)
		if err != nil {
			log.Printf("phase_update: %v", err)
			return serverError(e, "Could not read timeline")
		}
		if timeline == nil {
			return notFound(e, "Timeline not initialized for this project")
		}

		var update services.PhaseUpdate
		if err := e.BindBody(&update); err != nil {
			return badRequest(e, "Invalid request body")
		}

		if !services.UpdatePhase(timeline, e.Request.PathValue("phaseId"), update) {
			return notFound(e, "Phase not found")
		}

		if err := repos.Timeline.Save(timeline); err != nil {
			log.Printf("phase_update: %v", err)
			return serverError(e, "Could not save timeline")
		}

		return e.JSON(http.StatusOK, timeline)
	}
}

// HandleMilestoneAdd appends a milestone to the timeline.
func HandleMilestoneAdd(repos *store.Repos) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := projectIDFrom(e)
		timeline, err := repos.Timeline.Get(projectID)
		if err != nil {
			log.Printf("milestone_add: %v", err)
			return serverError(e, "Could not read timeline")
		}
		if timeline == nil {
			return notFound(e, "Timeline not initialized for this project")
		}

		var input services.NewMilestoneInput
		if err := e.BindBody(&input); err != nil {
			return badRequest(e, "Invalid request body")
		}
		if input.Name == "" {
			return badRequest(e, "Milestone name is required")
		}

		milestone := services.AddMilestone(timeline, input)

		if err := repos.Timeline.Save(timeline); err != nil {
			log.Printf("milestone_add: %v", err)
			return serverError(e, "Could not save timeline")
		}

		return e.JSON(http.StatusCreated, milestone)
	}
}

// HandleMilestoneComplete marks a milestone achieved on the given date.
func HandleMilestoneComplete(repos *store.Repos) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := projectIDFrom(e)
		timeline, err := repos.Timeline.Get(projectID)
		if err != nil {
			log.Printf("milestone_complete: %v", err)
			return serverError(e, "Could not read timeline")
		}
		if timeline == nil {
			return notFound(e, "Timeline not initialized for this project")
		}

		var body struct {
			CompletedDate string `json:"completedDate"`
		}
		if err := e.BindBody(&body); err != nil {
			return badRequest(e, "Invalid request body")
		}

		if !services.CompleteMilestone(timeline, e.Request.PathValue("milestoneId"), body.CompletedDate) {
			return notFound(e, "Milestone not found")
		}

		if err := repos.Timeline.Save(timeline); err != nil {
			log.Printf("milestone_complete: %v", err)
			return serverError(e, "Could not save timeline")
		}

		return e.JSON(http.StatusOK, timeline)
	}
}
