package cliente

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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

// CriarCliente cadastra um cliente direto pelo dashboard (POST /clients).
func (h *Handler) CriarCliente(w http.ResponseWriter, r *http.Request) {
	var c Cliente
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if c.Nome == "" {
		utils.RespondErro(w, http.StatusBadRequest, "nome é obrigatório")
		return
	}
	if err := h.Repository.Salvar(h.DB, &c); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "erro ao salvar cliente")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, c)
}

// ListarClientes retorna todos os clientes em ordem alfabética (GET /clients).
func (h *Handler) ListarClientes(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao listar clientes")
		return
	}
	utils.RespondJSON(w, http.StatusOK, clientes)
}

// AtualizarCliente altera um cadastro existente (PUT /clients/{id}).
func (h *Handler) AtualizarCliente(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var dados Cliente
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido")
		return
	}

	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErro(w, http.StatusNotFound, "cliente não encontrado")
			return
		}
		utils.RespondErro(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
