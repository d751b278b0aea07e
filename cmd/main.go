package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/cgseguros/api-corretora/internal/agenda"
	"github.com/cgseguros/api-corretora/internal/apolice"
	"github.com/cgseguros/api-corretora/internal/auth"
	"github.com/cgseguros/api-corretora/internal/cliente"
	"github.com/cgseguros/api-corretora/internal/comissao"
	"github.com/cgseguros/api-corretora/internal/configuracao"
	"github.com/cgseguros/api-corretora/internal/dashboard"
	"github.com/cgseguros/api-corretora/internal/documento"
	"github.com/cgseguros/api-corretora/internal/financeiro"
	"github.com/cgseguros/api-corretora/internal/lead"
	"github.com/cgseguros/api-corretora/internal/sinistro"
	"github.com/cgseguros/api-corretora/internal/storage"
	"github.com/cgseguros/api-corretora/internal/usuario"
	"github.com/cgseguros/api-corretora/internal/utils/db"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// .env é opcional; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	conn, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := conn.AutoMigrate(
		&usuario.Usuario{},
		&cliente.Cliente{},
		&lead.Lead{},
		&sinistro.Sinistro{},
		&apolice.Apolice{},
		&documento.Documento{},
		&agenda.Compromisso{},
		&financeiro.Lancamento{},
		&configuracao.Configuracao{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	storageRouter := storage.NewRouter(uploadDir)
	resolver := storage.NewResolver(uploadDir)

	// Handlers
	usuarioHandler := usuario.NewHandler(conn)
	clienteHandler := cliente.NewHandler(conn)
	leadHandler := lead.NewHandler(conn)
	sinistroHandler := sinistro.NewHandler(conn)
	apoliceHandler := apolice.NewHandler(conn, storageRouter)
	comissaoHandler := comissao.NewHandler(conn)
	documentoHandler := documento.NewHandler(conn, storageRouter, resolver)
	configHandler := configuracao.NewHandler(conn)
	agendaHandler := agenda.NewHandler(conn)
	financeiroHandler := financeiro.NewHandler(conn)
	dashboardHandler := dashboard.NewHandler(conn)

	// Router
	r := mux.NewRouter()

	// Autenticação
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")

	// Rotas de usuários
	r.HandleFunc("/users", usuarioHandler.CriarUsuario).Methods("POST")
	r.HandleFunc("/users", usuarioHandler.ListarUsuarios).Methods("GET")

	// Rotas de clientes
	r.HandleFunc("/clients", clienteHandler.CriarCliente).Methods("POST")
	r.HandleFunc("/clients", clienteHandler.ListarClientes).Methods("GET")
	r.HandleFunc("/clients/{id}", clienteHandler.AtualizarCliente).Methods("PUT")
	r.HandleFunc("/clients/{id}/documents", documentoHandler.ListarPorCliente).Methods("GET")

	// Rotas de leads (o POST é o webhook do Typebot)
	r.HandleFunc("/leads", leadHandler.ReceberLead).Methods("POST")
	r.HandleFunc("/leads", leadHandler.ListarLeads).Methods("GET")
	r.HandleFunc("/leads/{id}", leadHandler.AtualizarLead).Methods("PUT")
	r.HandleFunc("/leads/{id}", leadHandler.DeletarLead).Methods("DELETE")
	r.HandleFunc("/leads/{id}/convert", leadHandler.ConverterLead).Methods("POST")

	// Rotas de sinistros
	r.HandleFunc("/claims", sinistroHandler.Criar).Methods("POST")
	r.HandleFunc("/claims", sinistroHandler.Listar).Methods("GET")
	r.HandleFunc("/claims/{id}", sinistroHandler.AtualizarStatus).Methods("PUT")
	r.HandleFunc("/claims-stats", sinistroHandler.Estatisticas).Methods("GET")

	// Rotas de apólices e produção
	r.HandleFunc("/policies", apoliceHandler.Criar).Methods("POST")
	r.HandleFunc("/policies", apoliceHandler.Listar).Methods("GET")
	r.HandleFunc("/producer-stats", comissaoHandler.RelatorioProdutor).Methods("GET")

	// Rotas de documentos
	r.HandleFunc("/documents", documentoHandler.Upload).Methods("POST")
	r.HandleFunc("/documents/{id}/send-email", documentoHandler.EnviarPorEmail).Methods("POST")
	r.HandleFunc("/files/{filename}", documentoHandler.ServirArquivo).Methods("GET")

	// Rotas de agenda
	r.HandleFunc("/appointments", agendaHandler.Criar).Methods("POST")
	r.HandleFunc("/appointments", agendaHandler.Listar).Methods("GET")
	r.HandleFunc("/appointments/{id}", agendaHandler.Atualizar).Methods("PUT")
	r.HandleFunc("/appointments/{id}", agendaHandler.Deletar).Methods("DELETE")

	// Rotas do financeiro
	r.HandleFunc("/financial", financeiroHandler.Criar).Methods("POST")
	r.HandleFunc("/financial", financeiroHandler.Listar).Methods("GET")
	r.HandleFunc("/financial/{id}", financeiroHandler.Atualizar).Methods("PUT")
	r.HandleFunc("/financial/{id}", financeiroHandler.Deletar).Methods("DELETE")
	r.HandleFunc("/financial-stats", financeiroHandler.Estatisticas).Methods("GET")

	// Painel
	r.HandleFunc("/dashboard-stats", dashboardHandler.Indicadores).Methods("GET")
	r.HandleFunc("/dashboard-charts", dashboardHandler.Graficos).Methods("GET")

	// Configuração: leitura aberta, escrita só para administradores
	r.HandleFunc("/config", configHandler.Buscar).Methods("GET")
	r.Handle("/config",
		auth.MiddlewareAutenticacao(auth.RequireAdmin(http.HandlerFunc(configHandler.Salvar)))).
		Methods("POST")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Println("Servidor rodando em http://localhost:" + port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
