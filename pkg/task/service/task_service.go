package service

import (
	"errors"

	"farmdesk/entities"
)

var ErrNotFound = errors.New("Task not found")

type TaskService interface {
	GetAll() []entities.Task
	GetByFarmID(farmID string) []entities.Task
	// GetUpcoming returns the soonest-due open tasks with a due date on
	// or after today.
	GetUpcoming(limit int) []entities.Task
	GetByID(id string) (*entities.Task, error)
	Create(in entities.TaskInput) (*entities.Task, error)
	Update(id string, in entities.TaskInput) (*entities.Task, error)
	// ToggleComplete is a read-modify-write; concurrent toggles from two
	// clients race (last write wins from a possibly stale read).
	ToggleComplete(id string) (*entities.Task, error)
	Delete(id string) (bool, error)
}
