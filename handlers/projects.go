package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"buildtrack/models"
	"buildtrack/services"
	"buildtrack/store"
)

// HandleProjectList returns all projects, newest first.
func HandleProjectList(repos *store.Repos) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projects, err := repos.Projects.List()
		if err != nil {
			log.Printf("project_list: %v", err)
			return serverError(e, "Could not list projects")
		}
		return e.JSON(http.StatusOK, projects)
	}
}

// HandleProjectCreate creates a project and seeds its data directory.
func HandleProjectCreate(repos *store.Repos) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var input models.CreateProjectInput
		if err := e.BindBody(&input); err != nil {
			return badRequest(e, "Invalid request body")
		}

		project, err := services.NewProject(input)
		if err != nil {
			return badRequest(e, err.Error())
		}

		if err := repos.Projects.Create(project); err != nil {
			log.Printf("project_create: %v", err)
			return serverError(e, "Could not save project")
		}

		return e.JSON(http.StatusCreated, project)
	}
}

// HandleProjectGet returns a single project by ID.
func HandleProjectGet(repos *store.Repos) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		project, err := repos.Projects.Get(projectIDFrom(e))
		if err != nil {
			log.Printf("project_get: %v", err)
			return serverError(e, "Could not read project")
		}
		if project == nil {
			return notFound(e, "Project not found")
		}
		return e.JSON(http.StatusOK, project)
	}
}

// HandleProjectUpdate applies a partial update to a project.
func HandleProjectUpdate(repos *store.Repos) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		project, err := repos.Projects.Get(projectIDFrom(e))
		if err != nil {
			log.Printf("project_update: %v", err)
			return serverError(e, "Could not read project")
		}
		if project == nil {
			return notFound(e, "Project not found")
		}

		var update services.ProjectUpdate
		if err := e.BindBody(&update); err != nil {
			return badRequest(e, "Invalid request body")
		}

		services.ApplyProjectUpdate(project, update)

		if err := repos.Projects.Save(project); err != nil {
			log.Printf("project_update: %v", err)
			return serverError(e, "Could not save project")
		}

		return e.JSON(http.StatusOK, project)
	}
}

// HandleProjectDelete removes a project and its entire data directory,
// including uploads.
func HandleProjectDelete(repos *store.Repos) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		project, err := repos.Projects.Get(projectIDFrom(e))
		if err != nil {
			log.Printf("project_delete: %v", err)
			return serverError(e, "Could not read project")
		}
		if project == nil {
			return notFound(e, "Project not found")
		}

		if err := repos.Projects.Delete(project.ID); err != nil {
			log.Printf("project_delete: %v", err)
			return serverError(e, "Could not delete project")
		}

		return e.JSON(http.StatusOK, okResponse{OK: true})
	}
}
