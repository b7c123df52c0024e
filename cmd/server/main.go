package main

import (
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"lmp/config"
	"lmp/database"
	"lmp/router"

	"lmp/pkg/ai"
	draftCtrlImp "lmp/pkg/draft/controllerImp"
	healthCtrlImp "lmp/pkg/health/controllerImp"
	planCtrlImp "lmp/pkg/planner/controllerImp"
	planSvcImp "lmp/pkg/planner/serviceImp"
	"lmp/pkg/research"
	stateRepoImp "lmp/pkg/state/repositoryImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Plan store: load + reconcile persisted state, debounced writes
	repo := stateRepoImp.New(db)
	svc := planSvcImp.New(repo, planSvcImp.DefaultKeys(), time.Duration(cfg.SaveDebounceMS)*time.Millisecond)

	// 4) LLM (mock fallback)
	var llm ai.Client
	if cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "" {
		llm = ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
	} else {
		llm = ai.NewMock()
	}
	fetcher := research.New(cfg.AllowedDomains, cfg.MaxPageBytes)

	// 5) Controllers
	planCtrl := planCtrlImp.New(svc)
	draftCtrl := draftCtrlImp.New(llm, fetcher)
	healthCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 6) Echo + static SPA
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Static("/static", "static")
	e.File("/", "static/index.html")
	if _, err := os.Stat("static/index.html"); err != nil {
		log.Printf("WARN: static/index.html not found: %v", err)
	}

	r := router.New(e, planCtrl, draftCtrl, healthCtrl)

	// 7) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		svc.Flush()
		log.Fatal(err)
	}
}
