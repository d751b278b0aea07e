package agenda

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
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

type createCompromissoRequest struct {
	Titulo    string `json:"title"`
	Descricao string `json:"description"`
	Data      string `json:"date"`
	Tipo      string `json:"type"`
	ClienteID *uint  `json:"clientId"`
}

// Criar agenda um compromisso (POST /appointments).
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req createCompromissoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido")
		return
	}
	data, err := time.Parse(time.RFC3339, req.Data)
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "data inválida")
		return
	}

	c := Compromisso{
		Titulo:    req.Titulo,
		Descricao: req.Descricao,
		Data:      data,
		Tipo:      req.Tipo,
		ClienteID: req.ClienteID,
	}
	if err := h.Repository.Salvar(h.DB, &c); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusCreated, c)
}

// Listar responde GET /appointments?start=&end=.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	var inicio, fim *time.Time
	if s, e := r.URL.Query().Get("start"), r.URL.Query().Get("end"); s != "" && e != "" {
		si, err1 := time.Parse(time.RFC3339, s)
		ei, err2 := time.Parse(time.RFC3339, e)
		if err1 != nil || err2 != nil {
			utils.RespondErro(w, http.StatusBadRequest, "janela de datas inválida")
			return
		}
		inicio, fim = &si, &ei
	}

	lista, err := h.Repository.Listar(h.DB, inicio, fim)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao listar agenda")
		return
	}
	utils.RespondJSON(w, http.StatusOK, lista)
}

// Atualizar altera um compromisso (PUT /appointments/{id}).
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido")
		return
	}
	var dados Compromisso
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErro(w, http.StatusNotFound, "compromisso não encontrado")
			return
		}
		utils.RespondErro(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Deletar remove um compromisso (DELETE /appointments/{id}).
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido")
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao excluir compromisso")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
