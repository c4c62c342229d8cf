package main

import (
	"log"

	"github.com/noah-isme/school-services/internal/server"
	"github.com/noah-isme/school-services/internal/service"
)

// @title Homework Service API
// @version 1.0.0
// @description Homework assignments with term windows and the daily cutoff.
// @BasePath /api/v1
// @schemes http

func main() {
	app, err := server.Bootstrap("homework-service")
	if err != nil {
		log.Fatalf("homework-service: %v", err)
	}
	defer app.Close()

	clock := service.ClockIn(app.Config.Location())
	r, api := app.Router("Homework Service API is running!")
	server.RegisterHomeworkRoutes(api, server.NewHomeworkHandler(app.DB, app.TermResolver(), clock, app.Validate, app.Logger))

	if err := app.Serve(r); err != nil {
		app.Logger.Sugar().Errorw("server failed", "error", err)
	}
}
