package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"farmdesk/config"
	"farmdesk/database"
	"farmdesk/router"

	"farmdesk/pkg/record"

	cropCtrlImp "farmdesk/pkg/crop/controllerImp"
	cropSvcImp "farmdesk/pkg/crop/serviceImp"
	equipCtrlImp "farmdesk/pkg/equipment/controllerImp"
	equipSvcImp "farmdesk/pkg/equipment/serviceImp"
	expenseCtrlImp "farmdesk/pkg/expense/controllerImp"
	expenseSvcImp "farmdesk/pkg/expense/serviceImp"
	farmCtrlImp "farmdesk/pkg/farm/controllerImp"
	farmSvcImp "farmdesk/pkg/farm/serviceImp"
	incomeCtrlImp "farmdesk/pkg/income/controllerImp"
	incomeSvcImp "farmdesk/pkg/income/serviceImp"
	taskCtrlImp "farmdesk/pkg/task/controllerImp"
	taskSvcImp "farmdesk/pkg/task/serviceImp"

	"farmdesk/pkg/ai"
	notesCtrlImp "farmdesk/pkg/notes/controllerImp"
	"farmdesk/pkg/weather"
	weatherCtrlImp "farmdesk/pkg/weather/controllerImp"

	healthCtrlImp "farmdesk/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	zlog, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("zap: %v", err)
	}
	defer zlog.Sync()
	logger := zlog.Sugar()

	// 2) Record store: local sqlite or the hosted table platform
	var db *gorm.DB
	var store record.Client
	switch cfg.Backend {
	case "remote":
		store = record.NewRemote(cfg.RecordEndpoint, cfg.ProjectID, cfg.PublicKey)
	default:
		db = database.OpenSQLite(cfg.DBPath)
		store = record.NewLocal(db)
	}

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 4) Weather fixtures
	wx, err := weather.LoadFromFiles(cfg.WeatherForecastCSV, cfg.WeatherAlertsCSV, cfg.WeatherCurrentXLSX)
	if err != nil {
		logger.Warnw("weather fixtures", "err", err)
		wx = weather.Default()
	}

	// 5) LLM: live client when a key is present, mock only when asked for.
	// With neither, the notes endpoint reports the missing key.
	var llm ai.Client
	switch {
	case cfg.LLMAPIKey != "":
		llm = ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
	case cfg.LLMMock:
		llm = ai.NewMock()
	}

	// 6) Services/Controllers
	farmCtrl := farmCtrlImp.New(farmSvcImp.NewFarmService(store, logger))
	cropCtrl := cropCtrlImp.New(cropSvcImp.NewCropService(store, logger))
	taskCtrl := taskCtrlImp.New(taskSvcImp.NewTaskService(store, logger))
	expenseCtrl := expenseCtrlImp.New(expenseSvcImp.NewExpenseService(store, logger))
	equipCtrl := equipCtrlImp.New(equipSvcImp.NewEquipmentService(store, logger))
	incomeCtrl := incomeCtrlImp.New(incomeSvcImp.NewIncomeService(store, logger))
	weatherCtrl := weatherCtrlImp.New(wx)
	notesCtrl := notesCtrlImp.New(llm, logger)
	hCtrl := healthCtrlImp.NewHealthCtrl(db, cfg.Backend)

	// 7) Router
	r := router.New(
		e,
		farmCtrl,
		cropCtrl,
		taskCtrl,
		expenseCtrl,
		equipCtrl,
		incomeCtrl,
		weatherCtrl,
		notesCtrl.Generate,
		hCtrl,
	)

	// 8) Start
	logger.Infow("listening", "port", cfg.Port, "backend", cfg.Backend)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
