package store

import "buildtrack/models"

// BOMRepository loads and saves the per-project bill of materials.
type BOMRepository interface {
	Get(projectID string) (*models.BOMData, error)
	Save(bom *models.BOMData) error
}

// QuotationRepository loads and saves the per-project quotation list. The
// whole list is one file; callers mutate in memory and save it back.
type QuotationRepository interface {
	List(projectID string) ([]models.Quotation, error)
	SaveAll(projectID string, quotations []models.Quotation) error
}

// TimelineRepository loads and saves the per-project timeline.
type TimelineRepository interface {
	Get(projectID string) (*models.TimelineData, error)
	Save(timeline *models.TimelineData) error
}

// DrawingRepository loads and saves the per-project drawings register.
type DrawingRepository interface {
	List(projectID string) ([]models.Drawing, error)
	SaveAll(projectID string, drawings []models.Drawing) error
}

// SettingsRepository loads and saves the global application settings.
type SettingsRepository interface {
	Get() (*models.AppSettings, error)
	Save(settings *models.AppSettings) error
}

type fileBOMRepository struct{ store *Store }

// NewBOMRepository returns a file-backed BOMRepository.
func NewBOMRepository(s *Store) BOMRepository {
	return &fileBOMRepository{store: s}
}

func (r *fileBOMRepository) Get(projectID string) (*models.BOMData, error) {
	return ReadJSON[models.BOMData](r.store, ProjectFilePath(projectID, "bom.json"))
}

func (r *fileBOMRepository) Save(bom *models.BOMData) error {
	return r.store.WriteJSON(ProjectFilePath(bom.ProjectID, "bom.json"), bom)
}

type fileQuotationRepository struct{ store *Store }

// NewQuotationRepository returns a file-backed QuotationRepository.
func NewQuotationRepository(s *Store) QuotationRepository {
	return &fileQuotationRepository{store: s}
}

func (r *fileQuotationRepository) List(projectID string) ([]models.Quotation, error) {
	quotations, err := ReadJSON[[]models.Quotation](r.store, ProjectFilePath(projectID, "quotations.json"))
	if err != nil {
		return nil, err
	}
	if quotations == nil {
		return []models.Quotation{}, nil
	}
	return *quotations, nil
}

func (r *fileQuotationRepository) SaveAll(projectID string, quotations []models.Quotation) error {
	return r.store.WriteJSON(ProjectFilePath(projectID, "quotations.json"), quotations)
}

type fileTimelineRepository struct{ store *Store }

// NewTimelineRepository returns a file-backed TimelineRepository.
func NewTimelineRepository(s *Store) TimelineRepository {
	return &fileTimelineRepository{store: s}
}

func (r *fileTimelineRepository) Get(projectID string) (*models.TimelineData, error) {
	return ReadJSON[models.TimelineData](r.store, ProjectFilePath(projectID, "timeline.json"))
}

func (r *fileTimelineRepository) Save(timeline *models.TimelineData) error {
	return r.store.WriteJSON(ProjectFilePath(timeline.ProjectID, "timeline.json"), timeline)
}

type fileDrawingRepository struct{ store *Store }

// NewDrawingRepository returns a file-backed DrawingRepository.
func NewDrawingRepository(s *Store) DrawingRepository {
	return &fileDrawingRepository{store: s}
}

func (r *fileDrawingRepository) List(projectID string) ([]models.Drawing, error) {
	drawings, err := ReadJSON[[]models.Drawing](r.store, ProjectFilePath(projectID, "drawings.json"))
	if err != nil {
		return nil, err
	}
	if drawings == nil {
		return []models.Drawing{}, nil
	}
	return *drawings, nil
}

func (r *fileDrawingRepository) SaveAll(projectID string, drawings []models.Drawing) error {
	return r.store.WriteJSON(ProjectFilePath(projectID, "drawings.json"), drawings)
}

type fileSettingsRepository struct{ store *Store }

// NewSettingsRepository returns a file-backed SettingsRepository.
func NewSettingsRepository(s *Store) SettingsRepository {
	return &fileSettingsRepository{store: s}
}

// Get returns the stored settings, or an empty record when none exist yet.
func (r *fileSettingsRepository) Get() (*models.AppSettings, error) {
	settings, err := ReadJSON[models.AppSettings](r.store, "settings.json")
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return &models.AppSettings{}, nil
	}
	return settings, nil
}

func (r *fileSettingsRepository) Save(settings *models.AppSettings) error {
	return r.store.WriteJSON("settings.json", settings)
}

// Repos bundles every repository plus the raw store for upload handling.
type Repos struct {
	Store      *Store
	Projects   ProjectRepository
	BOM        BOMRepository
	Quotations QuotationRepository
	Timeline   TimelineRepository
	Drawings   DrawingRepository
	Settings   SettingsRepository
}

// NewRepos wires file-backed repositories over one store.
func NewRepos(s *Store) *Repos {
	return &Repos{
		Store:      s,
		Projects:   NewProjectRepository(s),
		BOM:        NewBOMRepository(s),
		Quotations: NewQuotationRepository(s),
		Timeline:   NewTimelineRepository(s),
		Drawings:   NewDrawingRepository(s),
		Settings:   NewSettingsRepository(s),
	}
}
