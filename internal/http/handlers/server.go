package handlers

import (
	"log/slog"

	"github.com/rogerio-castellano/grillaway/internal/metrics"
	"github.com/rogerio-castellano/grillaway/internal/shop"
	"github.com/rogerio-castellano/grillaway/pkg/logger"
)

// Server holds the dependencies shared by every handler.
type Server struct {
	shop      *shop.Shop
	dashboard metrics.DashboardRepository
	recorder  *metrics.Recorder
	log       *slog.Logger
}

func NewServer(s *shop.Shop, recorder *metrics.Recorder, log *slog.Logger) *Server {
	return &Server{
		shop:      s,
		dashboard: metrics.NewShopDashboardRepository(s),
		recorder:  recorder,
		log:       logger.WithComponent(log, "http"),
	}
}
