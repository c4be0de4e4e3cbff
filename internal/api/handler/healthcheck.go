package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/product-transactions-api/pkg/apiErrors"
	"github.com/vfg2006/product-transactions-api/pkg/log"
)

const healthcheckTimeout = 2 * time.Second

// Pinger é satisfeito por *database.Connection
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthStatus struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	CheckedAt string `json:"checkedAt"`
}

// HealthcheckHandler só responde 200 se o banco aceitar um ping dentro do prazo
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("healthcheck: banco de dados não respondeu")
			apiErrors.WriteError(w, apiErrors.ErrServiceUnavailable, "Banco de dados indisponível", nil)
			return
		}

		writeJSON(w, http.StatusOK, healthStatus{
			Status:    "ok",
			Database:  "ok",
			CheckedAt: time.Now().UTC().Format(time.RFC3339),
		})
	})
}
