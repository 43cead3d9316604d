package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dish-ranking-api/internal/usecases/ranking"
	"github.com/vfg2006/dish-ranking-api/pkg/apiErrors"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(time.Now().String()))
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}

// ReadinessHandler responde 200 apenas quando o Record Store aceita conexões
func ReadinessHandler(service ranking.RankingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := service.Ping(r.Context()); err != nil {
			logrus.WithError(err).Warn("readiness: Record Store indisponível")
			apiErrors.WriteError(w, apiErrors.ErrCommunication, "The dish store is not ready", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
		if err != nil {
			logrus.WithError(err).Warn("error responding to readiness")
		}
	})
}
