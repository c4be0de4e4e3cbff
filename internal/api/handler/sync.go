package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// IngestionSyncer é a parte do agendador de ingestão exposta pela API
type IngestionSyncer interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// RunIngestionSync dispara uma ingestão em segundo plano e responde sem esperar o resultado
func RunIngestionSync(service IngestionSyncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunIngestionSync")

		message := "Ingestão iniciada com sucesso"
		started := service.TriggerManualSync()
		if !started {
			message = "Ingestão já em andamento"
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": message,
			"started": started,
		})
	})
}

func GetIngestionSyncStatus(service IngestionSyncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.GetStatus())
	})
}
