package lead

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/cgseguros/api-corretora/internal/logger"
	"github.com/cgseguros/api-corretora/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Converter  *Converter
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Converter:  NewConverter(),
	}
}

// ReceberLead é o webhook de entrada do Typebot (POST /leads). O corpo é
// livre; só os campos conhecidos são mapeados.
func (h *Handler) ReceberLead(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "corpo ilegível")
		return
	}

	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido")
		return
	}

	l := payload.paraLead()
	if err := h.Repository.Salvar(h.DB, &l); err != nil {
		logger.LogError("lead", "ReceberLead", "persistência do webhook", payload.Nome, err)
		utils.RespondErro(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, l)
}

// ListarLeads retorna a fila de leads, mais recentes primeiro (GET /leads).
func (h *Handler) ListarLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao listar leads")
		return
	}
	utils.RespondJSON(w, http.StatusOK, leads)
}

// AtualizarLead altera status e campos de um lead (PUT /leads/{id}).
func (h *Handler) AtualizarLead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var dados Lead
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido")
		return
	}

	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErro(w, http.StatusNotFound, "lead não encontrado")
			return
		}
		utils.RespondErro(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// DeletarLead descarta um lead (DELETE /leads/{id}).
func (h *Handler) DeletarLead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido")
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao excluir lead")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// ConverterLead promove o lead a cliente (POST /leads/{id}/convert).
func (h *Handler) ConverterLead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var overrides ConversaoOverrides
	if r.Body != nil {
		// corpo vazio é aceito; overrides são opcionais
		_ = json.NewDecoder(r.Body).Decode(&overrides)
	}

	c, err := h.Converter.Convert(h.DB, uint(id), overrides)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErro(w, http.StatusNotFound, "lead não encontrado")
			return
		}
		logger.LogError("lead", "ConverterLead", "conversão em cliente", id, err)
		utils.RespondErro(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusCreated, c)
}
