package dashboard

import (
	"net/http"
	"time"

	"github.com/cgseguros/api-corretora/internal/utils"
	"gorm.io/gorm"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// Indicadores responde GET /dashboard-stats.
func (h *Handler) Indicadores(w http.ResponseWriter, r *http.Request) {
	ind, err := h.Repo.Indicadores(time.Now())
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao calcular indicadores")
		return
	}
	utils.RespondJSON(w, http.StatusOK, ind)
}

// Graficos responde GET /dashboard-charts.
func (h *Handler) Graficos(w http.ResponseWriter, r *http.Request) {
	g, err := h.Repo.Graficos()
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao montar gráficos")
		return
	}
	utils.RespondJSON(w, http.StatusOK, g)
}
