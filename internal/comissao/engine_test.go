package comissao

import (
	"fmt"
	"testing"
	"time"

	"github.com/cgseguros/api-corretora/internal/apolice"
	"github.com/cgseguros/api-corretora/internal/cliente"
	"github.com/cgseguros/api-corretora/internal/usuario"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupComissaoTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&usuario.Usuario{}, &cliente.Cliente{}, &apolice.Apolice{}))
	return db
}

func criaProdutor(t *testing.T, db *gorm.DB, nome string, comissao float64) *usuario.Usuario {
	t.Helper()
	u := usuario.Usuario{
		Nome:     nome,
		Email:    nome + "@cgseguros.com.br",
		Senha:    "hash",
		Perfil:   usuario.PerfilProdutor,
		Comissao: comissao,
	}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func criaApolice(t *testing.T, db *gorm.DB, produtor *usuario.Usuario, premio float64, inicio time.Time, status string) *apolice.Apolice {
	t.Helper()
	c := cliente.Cliente{Nome: "Cliente " + uuid.NewString()[:8]}
	require.NoError(t, db.Create(&c).Error)

	a := apolice.Apolice{
		Numero:        uuid.NewString()[:8],
		Status:        status,
		DataInicio:    inicio,
		DataFim:       inicio.AddDate(1, 0, 0),
		PremioLiquido: premio,
		ClienteID:     c.ID,
	}
	if produtor != nil {
		a.UsuarioID = &produtor.ID
	}
	require.NoError(t, db.Create(&a).Error)
	return &a
}

func TestRelatorioProdutor(t *testing.T) {
	junho := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.Local)

	t.Run("Comissão = prêmio x percentual / 100", func(t *testing.T) {
		db := setupComissaoTestDB(t)
		p := criaProdutor(t, db, "joana", 12)
		criaApolice(t, db, p, 1000, junho, apolice.StatusAtiva)

		rel, err := NewEngine(db).RelatorioProdutor(Filtro{})
		require.NoError(t, err)

		assert.Equal(t, 1, rel.Resumo.Vendas)
		assert.Equal(t, 1000.0, rel.Resumo.Premio)
		assert.Equal(t, 120.0, rel.Resumo.Comissao)
		require.Len(t, rel.Lista, 1)
		assert.Equal(t, 120.0, rel.Lista[0].ComissaoProdutor)
	})

	t.Run("Isolamento por produtor", func(t *testing.T) {
		db := setupComissaoTestDB(t)
		joana := criaProdutor(t, db, "joana", 10)
		carlos := criaProdutor(t, db, "carlos", 20)
		criaApolice(t, db, joana, 1000, junho, apolice.StatusAtiva)
		criaApolice(t, db, carlos, 2000, junho, apolice.StatusAtiva)

		rel, err := NewEngine(db).RelatorioProdutor(Filtro{ProdutorID: &joana.ID})
		require.NoError(t, err)

		assert.Equal(t, 1, rel.Resumo.Vendas)
		assert.Equal(t, 1000.0, rel.Resumo.Premio)
		assert.Equal(t, 100.0, rel.Resumo.Comissao)
	})

	t.Run("Janela do mês é inclusiva nas bordas", func(t *testing.T) {
		db := setupComissaoTestDB(t)
		p := criaProdutor(t, db, "joana", 10)
		criaApolice(t, db, p, 100,
			time.Date(2025, time.June, 1, 0, 0, 0, 0, time.Local), apolice.StatusAtiva)
		criaApolice(t, db, p, 200,
			time.Date(2025, time.June, 30, 23, 59, 59, 0, time.Local), apolice.StatusAtiva)
		criaApolice(t, db, p, 400,
			time.Date(2025, time.July, 1, 0, 0, 0, 0, time.Local), apolice.StatusAtiva)

		rel, err := NewEngine(db).RelatorioProdutor(Filtro{Mes: 6, Ano: 2025})
		require.NoError(t, err)

		assert.Equal(t, 2, rel.Resumo.Vendas)
		assert.Equal(t, 300.0, rel.Resumo.Premio)
	})

	t.Run("Apólice não ATIVA fica fora", func(t *testing.T) {
		db := setupComissaoTestDB(t)
		p := criaProdutor(t, db, "joana", 10)
		criaApolice(t, db, p, 1000, junho, apolice.StatusAtiva)
		criaApolice(t, db, p, 9999, junho, "CANCELADA")

		rel, err := NewEngine(db).RelatorioProdutor(Filtro{})
		require.NoError(t, err)

		assert.Equal(t, 1, rel.Resumo.Vendas)
		assert.Equal(t, 1000.0, rel.Resumo.Premio)
	})

	t.Run("Apólice sem produtor rende comissão zero", func(t *testing.T) {
		db := setupComissaoTestDB(t)
		criaApolice(t, db, nil, 1000, junho, apolice.StatusAtiva)

		rel, err := NewEngine(db).RelatorioProdutor(Filtro{})
		require.NoError(t, err)

		assert.Equal(t, 1, rel.Resumo.Vendas)
		assert.Equal(t, 1000.0, rel.Resumo.Premio)
		assert.Equal(t, 0.0, rel.Resumo.Comissao)
	})

	t.Run("Resumo é a soma das linhas", func(t *testing.T) {
		db := setupComissaoTestDB(t)
		p := criaProdutor(t, db, "joana", 15)
		criaApolice(t, db, p, 333.33, junho, apolice.StatusAtiva)
		criaApolice(t, db, p, 666.67, junho, apolice.StatusAtiva)

		rel, err := NewEngine(db).RelatorioProdutor(Filtro{})
		require.NoError(t, err)

		assert.Equal(t, 2, rel.Resumo.Vendas)
		assert.Equal(t, 1000.0, rel.Resumo.Premio)
		assert.Equal(t, 150.0, rel.Resumo.Comissao)
	})
}
