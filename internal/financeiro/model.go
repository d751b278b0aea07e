package financeiro

import (
	"time"

	"gorm.io/gorm"
)

const (
	TipoReceita = "RECEITA"
	TipoDespesa = "DESPESA"

	StatusPago     = "PAGO"
	StatusPendente = "PENDENTE"
)

// Lancamento é uma entrada do livro-caixa da corretoria.
type Lancamento struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Tipo       string    `gorm:"size:20;not null;index" json:"type"`
	Categoria  string    `gorm:"size:100" json:"category"`
	Descricao  string    `gorm:"size:500" json:"description"`
	Valor      float64   `gorm:"not null" json:"amount"`
	Vencimento time.Time `gorm:"index" json:"dueDate"`
	Status     string    `gorm:"size:20;not null;index" json:"status"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
