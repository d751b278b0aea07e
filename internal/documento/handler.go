package documento

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/cgseguros/api-corretora/internal/configuracao"
	"github.com/cgseguros/api-corretora/internal/logger"
	"github.com/cgseguros/api-corretora/internal/notificacao"
	"github.com/cgseguros/api-corretora/internal/storage"
	"github.com/cgseguros/api-corretora/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Storage    *storage.Router
	Resolver   *storage.Resolver
	ConfigRepo configuracao.Repository
	Mailer     notificacao.Mailer
}

func NewHandler(db *gorm.DB, router *storage.Router, resolver *storage.Resolver) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Storage:    router,
		Resolver:   resolver,
		ConfigRepo: configuracao.NewRepository(),
		Mailer:     notificacao.NewSMTPMailer(),
	}
}

// Upload recebe o multipart de POST /documents. A configuração é lida na
// hora e decide o backend; a linha de Documento só é gravada depois do
// armazenamento ter sucesso.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "formulário inválido")
		return
	}

	clienteID, err := strconv.Atoi(r.FormValue("clientId"))
	if err != nil || clienteID <= 0 {
		utils.RespondErro(w, http.StatusBadRequest, "clientId é obrigatório")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "nenhum arquivo enviado")
		return
	}
	defer file.Close()

	conteudo, err := io.ReadAll(file)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao ler o arquivo")
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
		if errors.Is(err, storage.ErrSemArquivo) {
			utils.RespondErro(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.LogError("documento", "Upload", "armazenamento do arquivo", header.Filename, err)
		utils.RespondErro(w, http.StatusInternalServerError, err.Error())
		return
	}

	d := Documento{
		Nome:      r.FormValue("nome"),
		Categoria: r.FormValue("categoria"),
		ClienteID: uint(clienteID),
		URL:       res.URL,
		Tipo:      res.Tipo,
		Caminho:   res.Caminho,
	}
	if v := r.FormValue("claimId"); v != "" {
		if sinistroID, err := strconv.Atoi(v); err == nil {
			id := uint(sinistroID)
			d.SinistroID = &id
		}
	}

	if err := h.Repository.Salvar(h.DB, &d); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusCreated, d)
}

// ListarPorCliente responde GET /clients/{id}/documents.
func (h *Handler) ListarPorCliente(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido")
		return
	}
	docs, err := h.Repository.ListarPorCliente(h.DB, uint(id))
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao listar documentos")
		return
	}
	utils.RespondJSON(w, http.StatusOK, docs)
}

// EnviarPorEmail manda o documento ao e-mail do cliente dono
// (POST /documents/{id}/send-email): anexo quando local, link quando no
// Drive.
func (h *Handler) EnviarPorEmail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	d, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.RespondErro(w, http.StatusNotFound, "documento não encontrado")
		return
	}
	if d.Cliente == nil || d.Cliente.Email == "" {
		utils.RespondErro(w, http.StatusBadRequest, "cliente sem e-mail cadastrado")
		return
	}

	cfg, err := h.ConfigRepo.Carregar(h.DB)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao carregar configuração")
		return
	}

	msg := notificacao.Mensagem{Para: d.Cliente.Email}
	if d.Tipo == configuracao.StorageLocal && d.Caminho != "" {
		msg.Assunto = fmt.Sprintf("Doc: %s", d.Nome)
		msg.Corpo = "Anexo"
		msg.Anexo = d.Caminho
	} else {
		msg.Assunto = "Doc"
		msg.Corpo = fmt.Sprintf("Link: %s", d.URL)
	}

	if err := h.Mailer.Enviar(cfg, msg); err != nil {
		logger.LogError("documento", "EnviarPorEmail", "envio ao cliente", d.ID, err)
		utils.RespondErro(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// ServirArquivo responde GET /files/{filename} para arquivos locais. A
// resolução confere o diretório configurado e cai para o padrão, então
// trocar o diretório não perde arquivos antigos.
func (h *Handler) ServirArquivo(w http.ResponseWriter, r *http.Request) {
	nome := mux.Vars(r)["filename"]

	cfg, err := h.ConfigRepo.Carregar(h.DB)
	if err != nil {
		http.Error(w, "Erro", http.StatusInternalServerError)
		return
	}

	caminho, err := h.Resolver.Resolve(nome, cfg)
	if err != nil {
		http.Error(w, "Arquivo não encontrado", http.StatusNotFound)
		return
	}
	http.ServeFile(w, r, caminho)
}
