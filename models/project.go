// Package models defines the persisted data shapes for construction
// projects: the project aggregate, bill of materials, supplier quotations,
// build timeline, drawings register and application settings. JSON tags
// match the on-disk per-project file format.
package models

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "planning"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectOnHold     ProjectStatus = "on_hold"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectCancelled  ProjectStatus = "cancelled"
)

// ProjectStatusLabels maps project statuses to display names.
var ProjectStatusLabels = map[ProjectStatus]string{
	ProjectPlanning:   "Planning",
	ProjectInProgress: "In Progress",
	ProjectOnHold:     "On Hold",
	ProjectCompleted:  "Completed",
	ProjectCancelled:  "Cancelled",
}

// Project is the aggregate root. Each project owns a data directory holding
// its BOM, quotations, timeline and drawings as separate JSON files.
type Project struct {
	ID                       string        `json:"id"`
	Name                     string        `json:"name"`
	Description              string        `json:"description"`
	Address                  string        `json:"address"`
	ErfNumber                string        `json:"erfNumber"`
	LocalAuthority           string        `json:"localAuthority"`
	ProjectStatus            ProjectStatus `json:"projectStatus"`
	StartDate                *string       `json:"startDate"`
	EstimatedCompletionDate  *string       `json:"estimatedCompletionDate"`
	ActualCompletionDate     *string       `json:"actualCompletionDate"`
	TotalBudget              float64       `json:"totalBudget"`
	ContingencyPercent       float64       `json:"contingencyPercent"`
	NHBRCEnrolmentNumber     *string       `json:"nhbrcEnrolmentNumber"`
	BuildingPlanApprovalDate *string       `json:"buildingPlanApprovalDate"`
	StandSize                *float64      `json:"standSize"`
	BuildingSize             *float64      `json:"buildingSize"`
	Floors                   int           `json:"floors"`
	Notes                    string        `json:"notes"`
	CreatedAt                string        `json:"createdAt"`
	UpdatedAt                string        `json:"updatedAt"`
}

// CreateProjectInput carries the fields accepted when creating a project.
type CreateProjectInput struct {
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	Address              string   `json:"address"`
	ErfNumber            string   `json:"erfNumber"`
	LocalAuthority       string   `json:"localAuthority"`
	TotalBudget          float64  `json:"totalBudget"`
	ContingencyPercent   *float64 `json:"contingencyPercent"`
	NHBRCEnrolmentNumber *string  `json:"nhbrcEnrolmentNumber"`
	StandSize            *float64 `json:"standSize"`
	BuildingSize         *float64 `json:"buildingSize"`
	Floors               int      `json:"floors"`
}
