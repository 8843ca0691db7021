package service

import (
	"errors"

	"farmdesk/entities"
)

var ErrNotFound = errors.New("Crop not found")

type CropService interface {
	GetAll() []entities.Crop
	GetByFarmID(farmID string) []entities.Crop
	GetByID(id string) (*entities.Crop, error)
	Create(in entities.CropInput) (*entities.Crop, error)
	Update(id string, in entities.CropInput) (*entities.Crop, error)
	Delete(id string) (bool, error)
}
