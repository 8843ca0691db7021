package service

import (
	"errors"

	"farmdesk/entities"
)

var ErrNotFound = errors.New("Income not found")

// IncomeService accepts batches on the write paths; failed entries are
// logged and the successful subset returned, no partial-success
// reconciliation beyond that.
type IncomeService interface {
	GetAll() []entities.Income
	GetByFarmID(farmID string) []entities.Income
	GetByID(id string) (*entities.Income, error)
	Create(items []entities.Income) []entities.Income
	Update(items []entities.Income) []entities.Income
	Delete(ids []string) bool
}
