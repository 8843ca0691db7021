package service

import (
	"errors"

	"farmdesk/entities"
)

var ErrNotFound = errors.New("Equipment not found")

type EquipmentService interface {
	GetAll() []entities.Equipment
	GetByFarmID(farmID string) []entities.Equipment
	// GetTotalValue sums purchase prices, optionally per farm.
	GetTotalValue(farmID string) float64
	GetByID(id string) (*entities.Equipment, error)
	Create(in entities.EquipmentInput) (*entities.Equipment, error)
	Update(id string, in entities.EquipmentInput) (*entities.Equipment, error)
	Delete(id string) (bool, error)
}
