package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cgseguros/api-corretora/internal/configuracao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNomeUnico(t *testing.T) {
	t.Run("Sanitiza caracteres fora do conjunto permitido", func(t *testing.T) {
		nome := NomeUnico("laudo do carro (final).pdf")
		assert.True(t, strings.HasSuffix(nome, "laudo_do_carro__final_.pdf"))
	})

	t.Run("Descarta diretórios do nome original", func(t *testing.T) {
		nome := NomeUnico("../../etc/passwd")
		assert.NotContains(t, nome, "/")
		assert.True(t, strings.HasSuffix(nome, "passwd"))
	})

	t.Run("Dois uploads do mesmo nome não colidem", func(t *testing.T) {
		a := NomeUnico("apolice.pdf")
		b := NomeUnico("apolice.pdf")
		assert.NotEqual(t, a, b)
	})
}

func TestStoreLocal(t *testing.T) {
	dir := t.TempDir()
	r := NewRouter(dir)
	cfg := &configuracao.Configuracao{StorageType: configuracao.StorageLocal}

	res, err := r.Store(context.Background(), Arquivo{
		Nome:     "apolice.pdf",
		MimeType: "application/pdf",
		Conteudo: []byte("conteudo"),
	}, cfg, "http://localhost:8080")
	require.NoError(t, err)

	assert.Equal(t, configuracao.StorageLocal, res.Tipo)
	assert.True(t, strings.HasPrefix(res.URL, "http://localhost:8080/files/"))

	gravado, err := os.ReadFile(res.Caminho)
	require.NoError(t, err)
	assert.Equal(t, []byte("conteudo"), gravado)
}

func TestStoreLocalComDiretorioConfigurado(t *testing.T) {
	padrao := t.TempDir()
	configurado := t.TempDir()
	r := NewRouter(padrao)
	cfg := &configuracao.Configuracao{
		StorageType: configuracao.StorageLocal,
		LocalPath:   configurado,
	}

	res, err := r.Store(context.Background(), Arquivo{
		Nome:     "cnh.jpg",
		Conteudo: []byte("foto"),
	}, cfg, "http://localhost:8080")
	require.NoError(t, err)
	assert.Equal(t, configurado, filepath.Dir(res.Caminho))
}

func TestStoreSemArquivo(t *testing.T) {
	r := NewRouter(t.TempDir())
	cfg := &configuracao.Configuracao{StorageType: configuracao.StorageLocal}

	_, err := r.Store(context.Background(), Arquivo{}, cfg, "http://localhost:8080")
	assert.ErrorIs(t, err, ErrSemArquivo)

	_, err = r.Store(context.Background(), Arquivo{Nome: "vazio.pdf"}, cfg, "http://localhost:8080")
	assert.ErrorIs(t, err, ErrSemArquivo)
}

func TestStoreDriveSemCredenciais(t *testing.T) {
	dir := t.TempDir()
	r := NewRouter(dir)
	cfg := &configuracao.Configuracao{StorageType: configuracao.StorageDrive}

	_, err := r.Store(context.Background(), Arquivo{
		Nome:     "apolice.pdf",
		Conteudo: []byte("conteudo"),
	}, cfg, "http://localhost:8080")
	assert.ErrorIs(t, err, ErrDriveNaoConfigurado)

	// nada pode ter caído no disco
	entradas, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entradas)
}

type driveFake struct {
	chamado  bool
	folderID string
}

func (d *driveFake) Upload(ctx context.Context, arq Arquivo, folderID, credentialsJSON string) (string, error) {
	d.chamado = true
	d.folderID = folderID
	return "https://drive.google.com/file/d/abc123/view", nil
}

func TestStoreDrive(t *testing.T) {
	fake := &driveFake{}
	r := &Router{DefaultDir: t.TempDir(), Drive: fake}
	cfg := &configuracao.Configuracao{
		StorageType:     configuracao.StorageDrive,
		GoogleDriveJSON: `{"type":"service_account"}`,
		GoogleFolderID:  "pasta-1",
	}

	res, err := r.Store(context.Background(), Arquivo{
		Nome:     "apolice.pdf",
		Conteudo: []byte("conteudo"),
	}, cfg, "http://localhost:8080")
	require.NoError(t, err)

	assert.True(t, fake.chamado)
	assert.Equal(t, "pasta-1", fake.folderID)
	assert.Equal(t, configuracao.StorageDrive, res.Tipo)
	assert.Equal(t, "https://drive.google.com/file/d/abc123/view", res.URL)
	assert.Empty(t, res.Caminho)
}
