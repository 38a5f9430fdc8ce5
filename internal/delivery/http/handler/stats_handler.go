package handler

import (
	"net/http"

	"surgitrack/internal/usecase"
	"surgitrack/pkg/response"
)

type StatsHandler struct {
	statsUsecase usecase.StatsUsecase
}

func NewStatsHandler(statsUsecase usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{statsUsecase: statsUsecase}
}

func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsUsecase.GetStats(r.Context())
	if err != nil {
		response.InternalServerError(w)
		return
	}

	response.Data(w, http.StatusOK, stats)
}
