package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"buildtrack/models"
)

// NewProject builds a project record from creation input. Contingency
// defaults to 10% and floors to 1 when not supplied.
func NewProject(input models.CreateProjectInput) (*models.Project, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("project name is required")
	}

	contingency := 10.0
	if input.ContingencyPercent != nil {
		contingency = *input.ContingencyPercent
	}
	floors := input.Floors
	if floors == 0 {
		floors = 1
	}

	now := nowISO()
	return &models.Project{
		ID:                   uuid.NewString(),
		Name:                 strings.TrimSpace(input.Name),
		Description:          input.Description,
		Address:              input.Address,
		ErfNumber:            input.ErfNumber,
		LocalAuthority:       input.LocalAuthority,
		ProjectStatus:        models.ProjectPlanning,
		TotalBudget:          input.TotalBudget,
		ContingencyPercent:   contingency,
		NHBRCEnrolmentNumber: input.NHBRCEnrolmentNumber,
		StandSize:            input.StandSize,
		BuildingSize:         input.BuildingSize,
		Floors:               floors,
		CreatedAt:            now,
		UpdatedAt:            now,
	}, nil
}

// ProjectUpdate is a partial update to a project; nil fields are unchanged.
type ProjectUpdate struct {
	Name                     *string               `json:"name"`
	Description              *string               `json:"description"`
	Address                  *string               `json:"address"`
	ErfNumber                *string               `json:"erfNumber"`
	LocalAuthority           *string               `json:"localAuthority"`
	ProjectStatus            *models.ProjectStatus `json:"projectStatus"`
	StartDate                *string               `json:"startDate"`
	EstimatedCompletionDate  *string               `json:"estimatedCompletionDate"`
	ActualCompletionDate     *string               `json:"actualCompletionDate"`
	TotalBudget              *float64              `json:"totalBudget"`
	ContingencyPercent       *float64              `json:"contingencyPercent"`
	NHBRCEnrolmentNumber     *string               `json:"nhbrcEnrolmentNumber"`
	BuildingPlanApprovalDate *string               `json:"buildingPlanApprovalDate"`
	StandSize                *float64              `json:"standSize"`
	BuildingSize             *float64              `json:"buildingSize"`
	Floors                   *int                  `json:"floors"`
	Notes                    *string               `json:"notes"`
}

// ApplyProjectUpdate merges the update into the project and stamps
// UpdatedAt. ID and CreatedAt are never touched.
func ApplyProjectUpdate(project *models.Project, update ProjectUpdate) {
	if update.Name != nil {
		project.Name = *update.Name
	}
	if update.Description != nil {
		project.Description = *update.Description
	}
	if update.Address != nil {
		project.Address = *update.Address
	}
	if update.ErfNumber != nil {
		project.ErfNumber = *update.ErfNumber
	}
	if update.LocalAuthority != nil {
		project.LocalAuthority = *update.LocalAuthority
	}
	if update.ProjectStatus != nil {
		project.ProjectStatus = *update.ProjectStatus
	}
	if update.StartDate != nil {
		project.StartDate = update.StartDate
	}
	if update.EstimatedCompletionDate != nil {
		project.EstimatedCompletionDate = update.EstimatedCompletionDate
	}
	if update.ActualCompletionDate != nil {
		project.ActualCompletionDate = update.ActualCompletionDate
	}
	if update.TotalBudget != nil {
		project.TotalBudget = *update.TotalBudget
	}
	if update.ContingencyPercent != nil {
		project.ContingencyPercent = *update.ContingencyPercent
	}
	if update.NHBRCEnrolmentNumber != nil {
		project.NHBRCEnrolmentNumber = update.NHBRCEnrolmentNumber
	}
	if update.BuildingPlanApprovalDate != nil {
		project.BuildingPlanApprovalDate = update.BuildingPlanApprovalDate
	}
	if update.StandSize != nil {
		project.StandSize = update.StandSize
	}
	if update.BuildingSize != nil {
		project.BuildingSize = update.BuildingSize
	}
	if update.Floors != nil {
		project.Floors = *update.Floors
	}
	if update.Notes != nil {
		project.Notes = *update.Notes
	}
	project.UpdatedAt = nowISO()
}
