package repositories

import (
	"errors"
	"fmt"

	"cargo-logbook-backend/db/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrLoadNotFound is returned when an update or delete targets an id that
// no longer exists for the owner. Delete callers treat it as success.
var ErrLoadNotFound = errors.New("load not found")

type LoadRepository interface {
	ListByOwner(ownerID uuid.UUID) ([]models.Load, error)
	GetLoadByID(ownerID uuid.UUID, id string) (*models.Load, error)
	CreateLoad(load *models.Load) (*models.Load, error)
	UpdateLoad(ownerID uuid.UUID, id string, fields *models.Load) (*models.Load, error)
	DeleteLoad(ownerID uuid.UUID, id string) error
}

// Implementations
type loadRepository struct {
	db *gorm.DB
}

func NewLoadRepository(db *gorm.DB) LoadRepository {
	return &loadRepository{db: db}
}

// ListByOwner returns every load the owner has, newest shipment date first
// and load number descending as the tie-breaker. Filtering happens in
// memory on top of this list, never in SQL.
func (r *loadRepository) ListByOwner(ownerID uuid.UUID) ([]models.Load, error) {
	var loads []models.Load
	err := r.db.
		Where("owner_id = ?", ownerID).
		Order("date desc, load_number desc").
		Find(&loads).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list loads: %w", err)
	}
	return loads, nil
}

func (r *loadRepository) GetLoadByID(ownerID uuid.UUID, id string) (*models.Load, error) {
	var load models.Load
	err := r.db.First(&load, "id = ? AND owner_id = ?", id, ownerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLoadNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch load: %w", err)
	}
	return &load, nil
}

func (r *loadRepository) CreateLoad(load *models.Load) (*models.Load, error) {
	load.ID = uuid.New()
	if load.Status == "" {
		load.Status = models.LoadStatusOK
	}

	if err := r.db.Create(load).Error; err != nil {
		return nil, fmt.Errorf("failed to create load in database: %w", err)
	}
	return load, nil
}

// UpdateLoad replaces the editable fields of an existing load. CreatedAt is
// never touched; GORM refreshes UpdatedAt on save.
func (r *loadRepository) UpdateLoad(ownerID uuid.UUID, id string, fields *models.Load) (*models.Load, error) {
	existing, err := r.GetLoadByID(ownerID, id)
	if err != nil {
		return nil, err
	}

	existing.LoadNumber = fields.LoadNumber
	existing.Date = fields.Date
	existing.Carrier = fields.Carrier
	existing.Route = fields.Route
	existing.Volumes = fields.Volumes
	existing.Orders = fields.Orders
	existing.Loader = fields.Loader
	existing.Status = fields.Status
	if existing.Status == "" {
		existing.Status = models.LoadStatusOK
	}
	existing.Notes = fields.Notes

	if err := r.db.Save(existing).Error; err != nil {
		return nil, fmt.Errorf("failed to update load in database: %w", err)
	}
	return existing, nil
}

func (r *loadRepository) DeleteLoad(ownerID uuid.UUID, id string) error {
	result := r.db.Delete(&models.Load{}, "id = ? AND owner_id = ?", id, ownerID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete load: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrLoadNotFound
	}
	return nil
}
