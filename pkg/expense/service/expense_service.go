package service

import (
	"errors"

	"farmdesk/entities"
)

var ErrNotFound = errors.New("Expense not found")

type ExpenseService interface {
	GetAll() []entities.Expense
	GetByFarmID(farmID string) []entities.Expense
	// GetMonthlyTotal sums amounts over [first day, last day] of the
	// given month, current month when zero, optionally per farm
	// (farmID empty means all farms). Fetch failures total to 0.
	GetMonthlyTotal(farmID string, month, year int) float64
	GetByID(id string) (*entities.Expense, error)
	Create(in entities.ExpenseInput) (*entities.Expense, error)
	Update(id string, in entities.ExpenseInput) (*entities.Expense, error)
	Delete(id string) (bool, error)
}
