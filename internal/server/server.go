package server

import (
	"fmt"
	"net/http"
	"time"

	"isolux/internal/config"
	"isolux/internal/database"
)

type Server struct {
	port int

	db database.Service
}

func NewServer() *http.Server {
	cfg := config.Load()

	newServer := &Server{
		port: cfg.Port,
		db:   database.New(cfg.DBURL),
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", newServer.port),
		Handler:      newServer.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}
