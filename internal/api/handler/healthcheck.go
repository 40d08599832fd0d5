package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Pinger é uma dependência verificada pelo healthcheck (banco, cache)
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthcheckHandler(checks map[string]Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		dependencies := make(map[string]string, len(checks))
		for name, check := range checks {
			if err := check.Ping(ctx); err != nil {
				logrus.WithError(err).WithField("dependency", name).Warn("error responding to healthcheck")
				dependencies[name] = err.Error()
				status = http.StatusServiceUnavailable
				continue
			}
			dependencies[name] = "ok"
		}

		writeJSON(w, r, status, map[string]any{
			"time":         time.Now().Format(time.RFC3339),
			"dependencies": dependencies,
		})
	})
}
