package agenda

import (
	"time"

	"github.com/cgseguros/api-corretora/internal/cliente"
	"gorm.io/gorm"
)

// Compromisso é um item da agenda da corretoria, opcionalmente ligado a
// um cliente.
type Compromisso struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Titulo    string    `gorm:"size:255;not null" json:"title"`
	Descricao string    `gorm:"type:text" json:"description"`
	Data      time.Time `gorm:"index" json:"date"`
	Tipo      string    `gorm:"size:50" json:"type"`

	ClienteID *uint            `gorm:"index" json:"clientId"`
	Cliente   *cliente.Cliente `gorm:"foreignKey:ClienteID" json:"client,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
