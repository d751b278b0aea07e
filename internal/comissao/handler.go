package comissao

import (
	"net/http"
	"strconv"

	"github.com/cgseguros/api-corretora/internal/utils"
	"gorm.io/gorm"
)

type Handler struct {
	Engine *Engine
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Engine: NewEngine(db)}
}

// RelatorioProdutor responde GET /producer-stats?userId=&mes=&ano=.
func (h *Handler) RelatorioProdutor(w http.ResponseWriter, r *http.Request) {
	var filtro Filtro

	if v := r.URL.Query().Get("userId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			utils.RespondErro(w, http.StatusBadRequest, "userId inválido")
			return
		}
		u := uint(id)
		filtro.ProdutorID = &u
	}
	if mes := r.URL.Query().Get("mes"); mes != "" {
		filtro.Mes, _ = strconv.Atoi(mes)
	}
	if ano := r.URL.Query().Get("ano"); ano != "" {
		filtro.Ano, _ = strconv.Atoi(ano)
	}

	relatorio, err := h.Engine.RelatorioProdutor(filtro)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao montar relatório de produção")
		return
	}
	utils.RespondJSON(w, http.StatusOK, relatorio)
}
