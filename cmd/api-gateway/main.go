package main

import (
	"log"

	"github.com/noah-isme/school-services/internal/repository"
	"github.com/noah-isme/school-services/internal/server"
	"github.com/noah-isme/school-services/internal/service"
)

// @title School Services API
// @version 1.0.0
// @description All school services on one listener against a single database.
// @BasePath /api/v1
// @schemes http

func main() {
	app, err := server.Bootstrap("api-gateway")
	if err != nil {
		log.Fatalf("api-gateway: %v", err)
	}
	defer app.Close()

	// Terms live in the same database, so resolve them without a network hop.
	terms := service.NewLocalTermResolver(repository.NewTermRepository(app.DB), app.Metrics, app.Logger)
	clock := service.ClockIn(app.Config.Location())

	r, api := app.Router("School Services API is running!")
	server.RegisterTermRoutes(api, server.NewTermHandler(app.DB, app.Logger))
	server.RegisterGradeRoutes(api, server.NewGradeHandlers(app.DB, terms, app.Validate, app.Logger))
	server.RegisterHomeworkRoutes(api, server.NewHomeworkHandler(app.DB, terms, clock, app.Validate, app.Logger))
	server.RegisterUserRoutes(api, server.NewUserHandlers(app.DB, app.Validate, app.Logger))

	if err := app.Serve(r); err != nil {
		app.Logger.Sugar().Errorw("server failed", "error", err)
	}
}
