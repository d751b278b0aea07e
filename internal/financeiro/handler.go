package financeiro

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

type createLancamentoRequest struct {
	Tipo       string  `json:"type"`
	Categoria  string  `json:"category"`
	Descricao  string  `json:"description"`
	Valor      float64 `json:"amount"`
	Vencimento string  `json:"dueDate"`
	Status     string  `json:"status"`
}

// Criar registra um lançamento (POST /financial).
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req createLancamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if req.Tipo != TipoReceita && req.Tipo != TipoDespesa {
		utils.RespondErro(w, http.StatusBadRequest, "type deve ser RECEITA ou DESPESA")
		return
	}
	vencimento, err := time.Parse(time.RFC3339, req.Vencimento)
	if err != nil {
		vencimento, err = time.Parse("2006-01-02", req.Vencimento)
		if err != nil {
			utils.RespondErro(w, http.StatusBadRequest, "dueDate inválida")
			return
		}
	}

	l := Lancamento{
		Tipo:       req.Tipo,
		Categoria:  req.Categoria,
		Descricao:  req.Descricao,
		Valor:      req.Valor,
		Vencimento: vencimento,
		Status:     req.Status,
	}
	if l.Status == "" {
		l.Status = StatusPendente
	}
	if err := h.Repo.Create(&l); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusCreated, l)
}

// Listar responde GET /financial em ordem de vencimento.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	lista, err := h.Repo.ListAll()
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao listar lançamentos")
		return
	}
	utils.RespondJSON(w, http.StatusOK, lista)
}

// Atualizar altera um lançamento (PUT /financial/{id}).
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido")
		return
	}
	var dados Lancamento
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if err := h.Repo.Update(uint(id), &dados); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErro(w, http.StatusNotFound, "lançamento não encontrado")
			return
		}
		utils.RespondErro(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Deletar remove um lançamento (DELETE /financial/{id}).
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido")
		return
	}
	if err := h.Repo.Delete(uint(id)); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao excluir lançamento")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Estatisticas responde GET /financial-stats.
func (h *Handler) Estatisticas(w http.ResponseWriter, r *http.Request) {
	resumo, err := h.Repo.Resumo()
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao calcular resumo financeiro")
		return
	}
	utils.RespondJSON(w, http.StatusOK, resumo)
}
