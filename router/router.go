package router

import (
	"github.com/labstack/echo/v4"
)

type crudCtrl interface {
	List(echo.Context) error
	Get(echo.Context) error
	Create(echo.Context) error
	Update(echo.Context) error
	Delete(echo.Context) error
}

func New(
	e *echo.Echo,
	farmCtrl crudCtrl,
	cropCtrl crudCtrl,
	taskCtrl interface {
		crudCtrl
		Upcoming(echo.Context) error
		Toggle(echo.Context) error
	},
	expenseCtrl interface {
		crudCtrl
		MonthlyTotal(echo.Context) error
	},
	equipmentCtrl interface {
		crudCtrl
		TotalValue(echo.Context) error
	},
	incomeCtrl interface {
		List(echo.Context) error
		Get(echo.Context) error
		Create(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
	},
	weatherCtrl interface {
		Current(echo.Context) error
		Forecast(echo.Context) error
		Alerts(echo.Context) error
		All(echo.Context) error
	},
	notesGenerate func(echo.Context) error,
	healthCtrl interface{ Health(echo.Context) error },

) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	api := e.Group("/api")

	api.GET("/farms", farmCtrl.List)
	api.GET("/farms/:id", farmCtrl.Get)
	api.POST("/farms", farmCtrl.Create)
	api.PUT("/farms/:id", farmCtrl.Update)
	api.DELETE("/farms/:id", farmCtrl.Delete)

	// crops accept ?farmId= on the list route
	api.GET("/crops", cropCtrl.List)
	api.GET("/crops/:id", cropCtrl.Get)
	api.POST("/crops", cropCtrl.Create)
	api.PUT("/crops/:id", cropCtrl.Update)
	api.DELETE("/crops/:id", cropCtrl.Delete)

	api.GET("/tasks", taskCtrl.List)
	api.GET("/tasks/upcoming", taskCtrl.Upcoming)
	api.GET("/tasks/:id", taskCtrl.Get)
	api.POST("/tasks", taskCtrl.Create)
	api.PUT("/tasks/:id", taskCtrl.Update)
	api.PATCH("/tasks/:id/toggle", taskCtrl.Toggle)
	api.DELETE("/tasks/:id", taskCtrl.Delete)

	api.GET("/expenses", expenseCtrl.List)
	api.GET("/expenses/monthly-total", expenseCtrl.MonthlyTotal)
	api.GET("/expenses/:id", expenseCtrl.Get)
	api.POST("/expenses", expenseCtrl.Create)
	api.PUT("/expenses/:id", expenseCtrl.Update)
	api.DELETE("/expenses/:id", expenseCtrl.Delete)

	api.GET("/equipment", equipmentCtrl.List)
	api.GET("/equipment/total-value", equipmentCtrl.TotalValue)
	api.GET("/equipment/:id", equipmentCtrl.Get)
	api.POST("/equipment", equipmentCtrl.Create)
	api.PUT("/equipment/:id", equipmentCtrl.Update)
	api.DELETE("/equipment/:id", equipmentCtrl.Delete)

	// income create/update take a single object or an array; delete takes {ids:[...]}
	api.GET("/income", incomeCtrl.List)
	api.GET("/income/:id", incomeCtrl.Get)
	api.POST("/income", incomeCtrl.Create)
	api.PUT("/income", incomeCtrl.Update)
	api.DELETE("/income", incomeCtrl.Delete)

	api.GET("/weather", weatherCtrl.All)
	api.GET("/weather/current", weatherCtrl.Current)
	api.GET("/weather/forecast", weatherCtrl.Forecast)
	api.GET("/weather/alerts", weatherCtrl.Alerts)

	// Any so non-POST methods get the handler's 405 envelope
	e.Any("/crop-notes", notesGenerate)

	return e
}
