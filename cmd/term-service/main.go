package main

import (
	"log"

	"github.com/noah-isme/school-services/internal/server"
)

// @title Term Service API
// @version 1.0.0
// @description Academic terms per school.
// @BasePath /api/v1
// @schemes http

func main() {
	app, err := server.Bootstrap("term-service")
	if err != nil {
		log.Fatalf("term-service: %v", err)
	}
	defer app.Close()

	r, api := app.Router("Term Service API is running!")
	server.RegisterTermRoutes(api, server.NewTermHandler(app.DB, app.Logger))

	if err := app.Serve(r); err != nil {
		app.Logger.Sugar().Errorw("server failed", "error", err)
	}
}
