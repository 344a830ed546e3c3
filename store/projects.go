package store

import (
	"sort"

	"buildtrack/models"
)

// ProjectRepository loads and saves Project aggregates.
type ProjectRepository interface {
	List() ([]models.Project, error)
	Get(id string) (*models.Project, error)
	Create(p *models.Project) error
	Save(p *models.Project) error
	Delete(id string) error
}

type fileProjectRepository struct {
	store *Store
}

// NewProjectRepository returns a file-backed ProjectRepository.
func NewProjectRepository(s *Store) ProjectRepository {
	return &fileProjectRepository{store: s}
}

// List returns all projects, most recently updated first. Directories whose
// project.json is missing or unreadable are skipped.
func (r *fileProjectRepository) List() ([]models.Project, error) {
	ids := r.store.ListDirectories("projects")
	projects := make([]models.Project, 0, len(ids))
	for _, id := range ids {
		p, err := r.Get(id)
		if err != nil || p == nil {
			continue
		}
		projects = append(projects, *p)
	}
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].UpdatedAt > projects[j].UpdatedAt
	})
	return projects, nil
}

func (r *fileProjectRepository) Get(id string) (*models.Project, error) {
	return ReadJSON[models.Project](r.store, ProjectFilePath(id, "project.json"))
}

// Create sets up the project directory tree and writes the project record.
func (r *fileProjectRepository) Create(p *models.Project) error {
	if err := r.store.EnsureProjectDir(p.ID); err != nil {
		return err
	}
	return r.Save(p)
}

func (r *fileProjectRepository) Save(p *models.Project) error {
	return r.store.WriteJSON(ProjectFilePath(p.ID, "project.json"), p)
}

// Delete removes the project directory and everything it owns.
func (r *fileProjectRepository) Delete(id string) error {
	return r.store.RemoveProjectDir(id)
}
