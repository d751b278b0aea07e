package sinistro

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/cgseguros/api-corretora/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// Criar abre um sinistro (POST /claims). Sempre nasce ABERTO com
// DataAviso no momento da criação.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req createSinistroRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if req.ClienteID == 0 {
		utils.RespondErro(w, http.StatusBadRequest, "clientId é obrigatório")
		return
	}

	dataOcorrencia, err := time.Parse(time.RFC3339, req.DataOcorrencia)
	if err != nil {
		// o dashboard envia só a data em alguns fluxos
		dataOcorrencia, err = time.Parse("2006-01-02", req.DataOcorrencia)
		if err != nil {
			utils.RespondErro(w, http.StatusBadRequest, "data_ocorrencia inválida")
			return
		}
	}

	s := Sinistro{
		Status:         StatusAberto,
		TipoSinistro:   req.TipoSinistro,
		Descricao:      req.Descricao,
		DataOcorrencia: dataOcorrencia,
		OficinaNome:    req.OficinaNome,
		OficinaTel:     req.OficinaTel,
		TerceiroNome:   req.TerceiroNome,
		TerceiroTel:    req.TerceiroTel,
		PlacaTerceiro:  req.PlacaTerceiro,
		ValorFranquia:  req.ValorFranquia,
		ValorOrcamento: req.ValorOrcamento,
		ClienteID:      req.ClienteID,
		ApoliceID:      req.ApoliceID,
	}

	if err := h.Repo.Create(&s); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusCreated, s)
}

// Listar retorna todos os sinistros com o cliente (GET /claims).
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	lista, err := h.Repo.ListAll()
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao listar sinistros")
		return
	}
	utils.RespondJSON(w, http.StatusOK, lista)
}

// AtualizarStatus move o sinistro de estado (PUT /claims/{id}). Qualquer
// status válido é aceito a partir de qualquer outro; valor_final só é
// gravado quando o novo status encerra o sinistro.
func (h *Handler) AtualizarStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if !StatusValido(req.Status) {
		utils.RespondErro(w, http.StatusBadRequest, "status desconhecido")
		return
	}
	if req.ValorFinal != nil && !EhTerminal(req.Status) {
		utils.RespondErro(w, http.StatusBadRequest, "valor_final só pode ser definido ao encerrar o sinistro")
		return
	}

	s, err := h.Repo.UpdateStatus(uint(id), req.Status, req.ValorFinal)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErro(w, http.StatusNotFound, "sinistro não encontrado")
			return
		}
		utils.RespondErro(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, s)
}

// Estatisticas responde GET /claims-stats.
func (h *Handler) Estatisticas(w http.ResponseWriter, r *http.Request) {
	lista, err := h.Repo.ListAll()
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao calcular estatísticas")
		return
	}
	utils.RespondJSON(w, http.StatusOK, CalcularEstatisticas(lista))
}
