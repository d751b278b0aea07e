package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/cgseguros/api-corretora/internal/configuracao"
	"github.com/google/uuid"
)

var (
	ErrSemArquivo          = errors.New("nenhum arquivo enviado")
	ErrDriveNaoConfigurado = errors.New("armazenamento DRIVE selecionado sem credenciais configuradas")
)

// Arquivo é o conteúdo recebido em um upload.
type Arquivo struct {
	Nome     string
	MimeType string
	Conteudo []byte
}

// Resultado é a referência estável devolvida após persistir o arquivo.
type Resultado struct {
	URL     string
	Tipo    string // LOCAL ou DRIVE
	Caminho string // vazio quando Tipo == DRIVE
}

// DriveUploader abstrai o envio ao Google Drive.
type DriveUploader interface {
	Upload(ctx context.Context, arq Arquivo, folderID, credentialsJSON string) (string, error)
}

// Router decide o backend de armazenamento a partir da configuração lida
// no momento do upload. DRIVE mal configurado falha; não há fallback
// silencioso para disco.
type Router struct {
	DefaultDir string
	Drive      DriveUploader
}

func NewRouter(defaultDir string) *Router {
	return &Router{
		DefaultDir: defaultDir,
		Drive:      &GoogleDrive{},
	}
}

var caracteresInvalidos = regexp.MustCompile(`[^a-zA-Z0-9.]`)

// NomeUnico prefixa o nome original com timestamp e um sufixo aleatório
// para que uploads concorrentes nunca colidam.
func NomeUnico(original string) string {
	limpo := caracteresInvalidos.ReplaceAllString(filepath.Base(original), "_")
	return fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), uuid.NewString()[:8], limpo)
}

// Store persiste o arquivo em exatamente um backend e devolve a
// referência de leitura. baseURL é o esquema+host da requisição, usado
// para montar a URL de arquivos locais.
func (r *Router) Store(ctx context.Context, arq Arquivo, cfg *configuracao.Configuracao, baseURL string) (*Resultado, error) {
	if arq.Nome == "" || len(arq.Conteudo) == 0 {
		return nil, ErrSemArquivo
	}

	if cfg.UsaDrive() {
		if cfg.GoogleDriveJSON == "" {
			return nil, ErrDriveNaoConfigurado
		}
		url, err := r.Drive.Upload(ctx, arq, cfg.GoogleFolderID, cfg.GoogleDriveJSON)
		if err != nil {
			return nil, fmt.Errorf("falha no upload para o Drive: %w", err)
		}
		return &Resultado{URL: url, Tipo: configuracao.StorageDrive}, nil
	}

	dir := r.DefaultDir
	if cfg.LocalPath != "" {
		dir = cfg.LocalPath
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("falha ao preparar diretório de upload: %w", err)
	}

	nome := NomeUnico(arq.Nome)
	caminho := filepath.Join(dir, nome)
	if err := os.WriteFile(caminho, arq.Conteudo, 0o644); err != nil {
		return nil, fmt.Errorf("falha ao gravar arquivo local: %w", err)
	}

	return &Resultado{
		URL:     baseURL + "/files/" + nome,
		Tipo:    configuracao.StorageLocal,
		Caminho: caminho,
	}, nil
}
