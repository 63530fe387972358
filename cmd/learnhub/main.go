package main

import (
	"learnhub/internal/config"
	"learnhub/internal/logger"
	"learnhub/internal/mongo"
	"learnhub/internal/mysql"
	"learnhub/internal/routing"
	"learnhub/pkg/middleware"
	"learnhub/pkg/realtime"

	"github.com/gorilla/mux"
)

func main() {
	config.Load() // load env vars from .env

	db := mysql.LoadDB()
	defer db.Close()

	mongoDB := mongo.LoadDB()

	logger := logger.Load()

	hub := realtime.NewHub(logger)

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Panic)
	api.Use(middleware.Auth)

	routing.InitRoutes(api, db, mongoDB, hub, logger)

	// identity over the socket comes from the join_room event, not the
	// bearer token, so the upgrade endpoint sits outside /api
	r.Handle("/ws", realtime.NewHandler(hub, logger))

	routing.StartServer(r)
}
