package models

// PhaseStatus is the progress state of a build phase.
type PhaseStatus string

const (
	PhaseNotStarted PhaseStatus = "not_started"
	PhaseInProgress PhaseStatus = "in_progress"
	PhaseCompleted  PhaseStatus = "completed"
	PhaseDelayed    PhaseStatus = "delayed"
	PhaseOnHold     PhaseStatus = "on_hold"
)

// PhaseStatusLabels maps phase statuses to display names.
var PhaseStatusLabels = map[PhaseStatus]string{
	PhaseNotStarted: "Not Started",
	PhaseInProgress: "In Progress",
	PhaseCompleted:  "Completed",
	PhaseDelayed:    "Delayed",
	PhaseOnHold:     "On Hold",
}

// BuildPhase is one phase of the construction programme. At creation time
// phases are laid out back-to-back and DependsOn links each phase to its
// predecessor; later edits do not re-propagate dates to neighbours.
type BuildPhase struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Description     string      `json:"description"`
	Order           int         `json:"order"`
	Status          PhaseStatus `json:"status"`
	StartDate       *string     `json:"startDate"`
	EndDate         *string     `json:"endDate"`
	ActualStartDate *string     `json:"actualStartDate"`
	ActualEndDate   *string     `json:"actualEndDate"`
	PercentComplete float64     `json:"percentComplete"`
	DependsOn       []string    `json:"dependsOn"`
	Color           string      `json:"color"`
}

// Milestone marks a dated checkpoint within a phase.
type Milestone struct {
	ID            string  `json:"id"`
	PhaseID       string  `json:"phaseId"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	TargetDate    string  `json:"targetDate"`
	CompletedDate *string `json:"completedDate"`
	IsCompleted   bool    `json:"isCompleted"`
}

// TimelineData is the construction timeline for one project.
type TimelineData struct {
	ProjectID   string       `json:"projectId"`
	Phases      []BuildPhase `json:"phases"`
	Milestones  []Milestone  `json:"milestones"`
	LastUpdated string       `json:"lastUpdated"`
}
