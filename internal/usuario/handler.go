package usuario

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/cgseguros/api-corretora/internal/auth"
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

// CriarUsuario cadastra um operador (POST /users). O primeiro usuário do
// sistema é sempre ADMIN; os demais assumem PRODUTOR quando o perfil não
// vem no payload.
func (h *Handler) CriarUsuario(w http.ResponseWriter, r *http.Request) {
	var req createUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if req.Nome == "" || req.Email == "" || req.Senha == "" {
		utils.RespondErro(w, http.StatusBadRequest, "nome, email e senha são obrigatórios")
		return
	}
	if req.Perfil != "" && req.Perfil != PerfilAdmin && req.Perfil != PerfilProdutor {
		utils.RespondErro(w, http.StatusBadRequest, "perfil deve ser ADMIN ou PRODUTOR")
		return
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao processar senha")
		return
	}

	comissao := ComissaoPadrao
	if req.Comissao != nil {
		comissao = *req.Comissao
	}

	u := Usuario{
		Nome:     req.Nome,
		Email:    req.Email,
		Senha:    hash,
		Perfil:   req.Perfil,
		Comissao: comissao,
	}

	if err := h.Repository.CriarComBootstrap(h.DB, &u); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") || strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			utils.RespondErro(w, http.StatusBadRequest, "email já cadastrado")
			return
		}
		utils.RespondErro(w, http.StatusBadRequest, "erro ao criar usuário")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, u)
}

// ListarUsuarios retorna todos os operadores (GET /users).
func (h *Handler) ListarUsuarios(w http.ResponseWriter, r *http.Request) {
	usuarios, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao listar usuários")
		return
	}
	utils.RespondJSON(w, http.StatusOK, usuarios)
}

// Login valida as credenciais e emite um JWT (POST /login).
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido")
		return
	}

	u, err := h.Repository.BuscarPorEmail(h.DB, req.Email)
	if err != nil {
		utils.RespondErro(w, http.StatusUnauthorized, "credenciais inválidas")
		return
	}
	if !utils.VerificarSenha(u.Senha, req.Senha) {
		utils.RespondErro(w, http.StatusUnauthorized, "credenciais inválidas")
		return
	}

	token, err := auth.GerarToken(u.ID, u.Perfil)
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "erro ao gerar token")
		return
	}
	utils.RespondJSON(w, http.StatusOK, loginResponse{Token: token, Usuario: *u})
}
