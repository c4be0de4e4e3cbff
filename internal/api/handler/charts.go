package handler

import (
	"net/http"

	"github.com/vfg2006/product-transactions-api/internal/usecases/aggregating"
	"github.com/vfg2006/product-transactions-api/pkg/log"
)

func GetStatistics(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stats, err := service.GetStatistics(r.Context(), r.URL.Query().Get(queryMonth))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("estatísticas: erro ao calcular")
			writeServiceError(w, err, "Erro ao calcular estatísticas")
			return
		}

		writeJSON(w, http.StatusOK, stats)
	})
}

func GetBarChart(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chart, err := service.GetBarChart(r.Context(), r.URL.Query().Get(queryMonth))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("gráfico de barras: erro ao calcular")
			writeServiceError(w, err, "Erro ao gerar gráfico de barras")
			return
		}

		writeJSON(w, http.StatusOK, chart)
	})
}

func GetPieChart(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chart, err := service.GetPieChart(r.Context(), r.URL.Query().Get(queryMonth))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("gráfico de pizza: erro ao calcular")
			writeServiceError(w, err, "Erro ao gerar gráfico de pizza")
			return
		}

		writeJSON(w, http.StatusOK, chart)
	})
}
