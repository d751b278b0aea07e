package storage

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/cgseguros/api-corretora/internal/configuracao"
)

var ErrArquivoNaoEncontrado = errors.New("arquivo não encontrado")

// Resolver localiza arquivos gravados no backend local. O diretório
// configurado pode ter mudado depois que arquivos antigos foram gravados,
// então a busca cai para o diretório padrão antes de reportar ausência.
// Arquivos no Drive não passam por aqui; a URL deles é usada direto.
type Resolver struct {
	DefaultDir string
}

func NewResolver(defaultDir string) *Resolver {
	return &Resolver{DefaultDir: defaultDir}
}

// Resolve devolve o caminho completo do arquivo ou ErrArquivoNaoEncontrado.
func (r *Resolver) Resolve(nome string, cfg *configuracao.Configuracao) (string, error) {
	// impede escapes do diretório via "../"
	nome = filepath.Base(nome)

	primario := r.DefaultDir
	if cfg.LocalPath != "" {
		primario = cfg.LocalPath
	}

	caminho := filepath.Join(primario, nome)
	if existe(caminho) {
		return caminho, nil
	}

	if primario != r.DefaultDir {
		fallback := filepath.Join(r.DefaultDir, nome)
		if existe(fallback) {
			return fallback, nil
		}
	}
	return "", ErrArquivoNaoEncontrado
}

func existe(caminho string) bool {
	info, err := os.Stat(caminho)
	return err == nil && !info.IsDir()
}
