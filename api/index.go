package handler

import (
	"net/http"

	"github.com/Ayy-man/spa-booking-v2-sub002/config"
	"github.com/Ayy-man/spa-booking-v2-sub002/di"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	handler := di.InitializeService()
	handler.Adaptor()(w, r)
}
