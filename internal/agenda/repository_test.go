package agenda

import (
	"fmt"
	"testing"
	"time"

	"github.com/cgseguros/api-corretora/internal/cliente"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAgendaTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&cliente.Cliente{}, &Compromisso{}))
	return db
}

func compromisso(dia int) Compromisso {
	return Compromisso{
		Titulo: fmt.Sprintf("Reunião dia %d", dia),
		Data:   time.Date(2025, time.June, dia, 14, 0, 0, 0, time.Local),
		Tipo:   "REUNIAO",
	}
}

func TestListar(t *testing.T) {
	t.Run("Ordem cronológica", func(t *testing.T) {
		db := setupAgendaTestDB(t)
		repo := NewRepository()
		for _, dia := range []int{20, 5, 12} {
			c := compromisso(dia)
			require.NoError(t, repo.Salvar(db, &c))
		}

		lista, err := repo.Listar(db, nil, nil)
		require.NoError(t, err)
		require.Len(t, lista, 3)
		assert.Equal(t, 5, lista[0].Data.Day())
		assert.Equal(t, 12, lista[1].Data.Day())
		assert.Equal(t, 20, lista[2].Data.Day())
	})

	t.Run("Janela limita o resultado", func(t *testing.T) {
		db := setupAgendaTestDB(t)
		repo := NewRepository()
		for _, dia := range []int{1, 10, 25} {
			c := compromisso(dia)
			require.NoError(t, repo.Salvar(db, &c))
		}

		inicio := time.Date(2025, time.June, 5, 0, 0, 0, 0, time.Local)
		fim := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.Local)
		lista, err := repo.Listar(db, &inicio, &fim)
		require.NoError(t, err)
		require.Len(t, lista, 1)
		assert.Equal(t, 10, lista[0].Data.Day())
	})
}
