package lead

import (
	"fmt"
	"testing"

	"github.com/cgseguros/api-corretora/internal/cliente"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupLeadTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&cliente.Cliente{}, &Lead{}))
	return db
}

func TestConvert(t *testing.T) {
	t.Run("Projeta os campos preenchidos do lead", func(t *testing.T) {
		db := setupLeadTestDB(t)
		l := Lead{
			Nome:          "João Pereira",
			Whatsapp:      "11999990000",
			TipoSeguro:    "AUTO",
			Placa:         "ABC1D23",
			ModeloVeiculo: "Onix 1.0",
			AnoVeiculo:    "2022",
			Status:        StatusNovo,
		}
		require.NoError(t, db.Create(&l).Error)

		c, err := NewConverter().Convert(db, l.ID, ConversaoOverrides{})
		require.NoError(t, err)

		assert.Equal(t, "João Pereira", c.Nome)
		assert.Equal(t, "11999990000", c.Whatsapp)
		assert.Equal(t, "ABC1D23", c.Placa)
		assert.Equal(t, "Onix 1.0", c.ModeloVeiculo)
		assert.Equal(t, "2022", c.AnoVeiculo)
		// campos que o lead não tem ficam vazios
		assert.Empty(t, c.Email)
		assert.Empty(t, c.CPF)
	})

	t.Run("Overrides do operador vencem o lead", func(t *testing.T) {
		db := setupLeadTestDB(t)
		l := Lead{Nome: "João Pereira", Whatsapp: "11999990000", Status: StatusNovo}
		require.NoError(t, db.Create(&l).Error)

		c, err := NewConverter().Convert(db, l.ID, ConversaoOverrides{
			Nome:  "João P. da Silva",
			Email: "joao@example.com",
			CPF:   "123.456.789-00",
		})
		require.NoError(t, err)

		assert.Equal(t, "João P. da Silva", c.Nome)
		assert.Equal(t, "joao@example.com", c.Email)
		assert.Equal(t, "123.456.789-00", c.CPF)
		// override vazio não apaga o valor vindo do lead
		assert.Equal(t, "11999990000", c.Whatsapp)
	})

	t.Run("Marca o lead como VENDA com o marcador do cliente", func(t *testing.T) {
		db := setupLeadTestDB(t)
		l := Lead{Nome: "João Pereira", Status: StatusNovo}
		require.NoError(t, db.Create(&l).Error)

		c, err := NewConverter().Convert(db, l.ID, ConversaoOverrides{})
		require.NoError(t, err)

		require.NoError(t, db.First(&l, l.ID).Error)
		assert.Equal(t, StatusVenda, l.Status)
		require.NotNil(t, l.ClienteID)
		assert.Equal(t, c.ID, *l.ClienteID)
	})

	t.Run("Conversão repetida devolve o mesmo cliente", func(t *testing.T) {
		db := setupLeadTestDB(t)
		l := Lead{Nome: "João Pereira", Status: StatusNovo}
		require.NoError(t, db.Create(&l).Error)

		cv := NewConverter()
		primeiro, err := cv.Convert(db, l.ID, ConversaoOverrides{})
		require.NoError(t, err)
		segundo, err := cv.Convert(db, l.ID, ConversaoOverrides{Nome: "Outro Nome"})
		require.NoError(t, err)

		assert.Equal(t, primeiro.ID, segundo.ID)
		// overrides da segunda chamada são ignorados
		assert.Equal(t, "João Pereira", segundo.Nome)

		var total int64
		require.NoError(t, db.Model(&cliente.Cliente{}).Count(&total).Error)
		assert.Equal(t, int64(1), total)
	})

	t.Run("Marcador órfão reconverte", func(t *testing.T) {
		db := setupLeadTestDB(t)
		fantasma := uint(999)
		l := Lead{Nome: "João Pereira", Status: StatusVenda, ClienteID: &fantasma}
		require.NoError(t, db.Create(&l).Error)

		c, err := NewConverter().Convert(db, l.ID, ConversaoOverrides{})
		require.NoError(t, err)
		assert.NotEqual(t, fantasma, c.ID)

		require.NoError(t, db.First(&l, l.ID).Error)
		require.NotNil(t, l.ClienteID)
		assert.Equal(t, c.ID, *l.ClienteID)
	})

	t.Run("Lead inexistente", func(t *testing.T) {
		db := setupLeadTestDB(t)
		_, err := NewConverter().Convert(db, 42, ConversaoOverrides{})
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
