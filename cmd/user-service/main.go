package main

import (
	"log"

	"github.com/noah-isme/school-services/internal/server"
)

// @title User Service API
// @version 1.0.0
// @description Users, parents and schools.
// @BasePath /api/v1
// @schemes http

func main() {
	app, err := server.Bootstrap("user-service")
	if err != nil {
		log.Fatalf("user-service: %v", err)
	}
	defer app.Close()

	r, api := app.Router("User Service API is running!")
	server.RegisterUserRoutes(api, server.NewUserHandlers(app.DB, app.Validate, app.Logger))

	if err := app.Serve(r); err != nil {
		app.Logger.Sugar().Errorw("server failed", "error", err)
	}
}
