package configuracao

import (
	"encoding/json"
	"net/http"

	"github.com/cgseguros/api-corretora/internal/utils"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// Buscar retorna a configuração vigente (GET /config).
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.Repository.Carregar(h.DB)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao carregar configuração")
		return
	}
	utils.RespondJSON(w, http.StatusOK, cfg)
}

// Salvar faz upsert da configuração (POST /config).
func (h *Handler) Salvar(w http.ResponseWriter, r *http.Request) {
	var cfg Configuracao
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido")
		return
	}

	if cfg.StorageType != "" && cfg.StorageType != StorageLocal && cfg.StorageType != StorageDrive {
		utils.RespondErro(w, http.StatusBadRequest, "storageType deve ser LOCAL ou DRIVE")
		return
	}

	if err := h.Repository.Salvar(h.DB, &cfg); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
