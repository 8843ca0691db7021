package service

import (
	"errors"

	"farmdesk/entities"
)

// ErrNotFound is surfaced as-is by the UI's error state.
var ErrNotFound = errors.New("Farm not found")

// FarmService is the farm_c mapper. GetAll swallows fetch failures and
// returns an empty list; single reads and writes report theirs.
type FarmService interface {
	GetAll() []entities.Farm
	GetByID(id string) (*entities.Farm, error)
	Create(in entities.FarmInput) (*entities.Farm, error)
	Update(id string, in entities.FarmInput) (*entities.Farm, error)
	Delete(id string) (bool, error)
}
