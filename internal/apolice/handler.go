package apolice

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/cgseguros/api-corretora/internal/configuracao"
	"github.com/cgseguros/api-corretora/internal/logger"
	"github.com/cgseguros/api-corretora/internal/storage"
	"github.com/cgseguros/api-corretora/internal/utils"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Storage    *storage.Router
	ConfigRepo configuracao.Repository
}

func NewHandler(db *gorm.DB, router *storage.Router) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Storage:    router,
		ConfigRepo: configuracao.NewRepository(),
	}
}

// Criar emite uma apólice (POST /policies, multipart). O PDF é opcional
// e segue pelo mesmo roteador de armazenamento dos documentos.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "formulário inválido")
		return
	}

	clienteID, err := strconv.Atoi(r.FormValue("clientId"))
	if err != nil || clienteID <= 0 {
		utils.RespondErro(w, http.StatusBadRequest, "clientId é obrigatório")
		return
	}

	dataInicio, err1 := parseData(r.FormValue("data_inicio"))
	dataFim, err2 := parseData(r.FormValue("data_fim"))
	if err1 != nil || err2 != nil {
		utils.RespondErro(w, http.StatusBadRequest, "datas de vigência inválidas")
		return
	}

	premio, _ := strconv.ParseFloat(r.FormValue("premio"), 64)
	comissao, _ := strconv.ParseFloat(r.FormValue("comissao"), 64)

	a := Apolice{
		Numero:        r.FormValue("numero"),
		TipoSeguro:    r.FormValue("tipo_seguro"),
		Status:        r.FormValue("status"),
		DataInicio:    dataInicio,
		DataFim:       dataFim,
		PremioLiquido: premio,
		ComissaoTotal: comissao,
		ClienteID:     uint(clienteID),
	}
	if a.Status == "" {
		a.Status = StatusAtiva
	}
	if v := r.FormValue("userId"); v != "" {
		if userID, err := strconv.Atoi(v); err == nil {
			id := uint(userID)
			a.UsuarioID = &id
		}
	}

	if file, header, err := r.FormFile("file"); err == nil {
		defer file.Close()
		conteudo, err := io.ReadAll(file)
		if err != nil {
			utils.RespondErro(w, http.StatusInternalServerError, "erro ao ler o PDF")
			return
		}
		cfg, err := h.ConfigRepo.Carregar(h.DB)
		if err != nil {
			utils.RespondErro(w, http.StatusInternalServerError, "erro ao carregar configuração")
			return
		}
		res, err := h.Storage.Store(r.Context(), storage.Arquivo{
			Nome:     header.Filename,
			MimeType: header.Header.Get("Content-Type"),
			Conteudo: conteudo,
		}, cfg, utils.BaseURL(r))
		if err != nil {
			logger.LogError("apolice", "Criar", "upload do PDF", header.Filename, err)
			utils.RespondErro(w, http.StatusInternalServerError, err.Error())
			return
		}
		a.PdfURL = res.URL
	}

	if err := h.Repository.Salvar(h.DB, &a); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusCreated, a)
}

// Listar retorna as apólices com cliente e produtor (GET /policies).
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	apolices, err := h.Repository.ListarTodas(h.DB)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao listar apólices")
		return
	}
	utils.RespondJSON(w, http.StatusOK, apolices)
}

func parseData(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
