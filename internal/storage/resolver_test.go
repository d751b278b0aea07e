package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cgseguros/api-corretora/internal/configuracao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func escreve(t *testing.T, dir, nome string) string {
	t.Helper()
	caminho := filepath.Join(dir, nome)
	require.NoError(t, os.WriteFile(caminho, []byte("x"), 0o644))
	return caminho
}

func TestResolve(t *testing.T) {
	t.Run("Acha no diretório configurado", func(t *testing.T) {
		padrao := t.TempDir()
		configurado := t.TempDir()
		esperado := escreve(t, configurado, "doc.pdf")

		r := NewResolver(padrao)
		cfg := &configuracao.Configuracao{LocalPath: configurado}

		caminho, err := r.Resolve("doc.pdf", cfg)
		require.NoError(t, err)
		assert.Equal(t, esperado, caminho)
	})

	t.Run("Cai para o diretório padrão quando o configurado mudou", func(t *testing.T) {
		padrao := t.TempDir()
		configurado := t.TempDir()
		esperado := escreve(t, padrao, "antigo.pdf")

		r := NewResolver(padrao)
		cfg := &configuracao.Configuracao{LocalPath: configurado}

		caminho, err := r.Resolve("antigo.pdf", cfg)
		require.NoError(t, err)
		assert.Equal(t, esperado, caminho)
	})

	t.Run("Configurado vence quando o arquivo existe nos dois", func(t *testing.T) {
		padrao := t.TempDir()
		configurado := t.TempDir()
		escreve(t, padrao, "doc.pdf")
		esperado := escreve(t, configurado, "doc.pdf")

		r := NewResolver(padrao)
		cfg := &configuracao.Configuracao{LocalPath: configurado}

		caminho, err := r.Resolve("doc.pdf", cfg)
		require.NoError(t, err)
		assert.Equal(t, esperado, caminho)
	})

	t.Run("Arquivo inexistente", func(t *testing.T) {
		r := NewResolver(t.TempDir())
		_, err := r.Resolve("nada.pdf", &configuracao.Configuracao{})
		assert.ErrorIs(t, err, ErrArquivoNaoEncontrado)
	})

	t.Run("Ignora tentativa de escapar do diretório", func(t *testing.T) {
		padrao := t.TempDir()
		esperado := escreve(t, padrao, "doc.pdf")

		r := NewResolver(padrao)
		caminho, err := r.Resolve("../../doc.pdf", &configuracao.Configuracao{})
		require.NoError(t, err)
		assert.Equal(t, esperado, caminho)
	})
}
