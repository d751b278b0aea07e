package financeiro

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupFinanceiroTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Lancamento{}))
	return db
}

func lanc(tipo, status string, valor float64) Lancamento {
	return Lancamento{
		Tipo:       tipo,
		Status:     status,
		Valor:      valor,
		Vencimento: time.Date(2025, time.June, 10, 0, 0, 0, 0, time.Local),
	}
}

func TestResumo(t *testing.T) {
	t.Run("Livro vazio", func(t *testing.T) {
		repo := NewRepository(setupFinanceiroTestDB(t))
		r, err := repo.Resumo()
		require.NoError(t, err)
		assert.Equal(t, 0.0, r.Receita)
		assert.Equal(t, 0.0, r.Despesa)
		assert.Equal(t, 0.0, r.Saldo)
		assert.Equal(t, 0.0, r.Pendente)
	})

	t.Run("Só lançamentos pagos entram em receita e despesa", func(t *testing.T) {
		db := setupFinanceiroTestDB(t)
		repo := NewRepository(db)
		for _, l := range []Lancamento{
			lanc(TipoReceita, StatusPago, 1000),
			lanc(TipoReceita, StatusPendente, 500),
			lanc(TipoDespesa, StatusPago, 300),
			lanc(TipoDespesa, StatusPendente, 200),
		} {
			require.NoError(t, repo.Create(&l))
		}

		r, err := repo.Resumo()
		require.NoError(t, err)
		assert.Equal(t, 1000.0, r.Receita)
		assert.Equal(t, 300.0, r.Despesa)
		assert.Equal(t, 700.0, r.Saldo)
		// pendente soma receitas e despesas em aberto
		assert.Equal(t, 700.0, r.Pendente)
	})

	t.Run("Centavos fecham sem resíduo de float", func(t *testing.T) {
		db := setupFinanceiroTestDB(t)
		repo := NewRepository(db)
		for i := 0; i < 10; i++ {
			l := lanc(TipoReceita, StatusPago, 0.1)
			require.NoError(t, repo.Create(&l))
		}

		r, err := repo.Resumo()
		require.NoError(t, err)
		assert.Equal(t, 1.0, r.Receita)
		assert.Equal(t, 1.0, r.Saldo)
	})
}
