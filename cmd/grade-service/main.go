package main

import (
	"log"

	"github.com/noah-isme/school-services/internal/server"
)

// @title Grade Service API
// @version 1.0.0
// @description Grades, quarterly grades and term assessments.
// @BasePath /api/v1
// @schemes http

func main() {
	app, err := server.Bootstrap("grade-service")
	if err != nil {
		log.Fatalf("grade-service: %v", err)
	}
	defer app.Close()

	r, api := app.Router("Grade Service API is running!")
	server.RegisterGradeRoutes(api, server.NewGradeHandlers(app.DB, app.TermResolver(), app.Validate, app.Logger))

	if err := app.Serve(r); err != nil {
		app.Logger.Sugar().Errorw("server failed", "error", err)
	}
}
