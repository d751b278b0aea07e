package documento

import (
	"time"

	"github.com/cgseguros/api-corretora/internal/cliente"
)

// Documento referencia um arquivo persistido por exatamente um backend.
// Tipo LOCAL exige Caminho preenchido; tipo DRIVE carrega só a URL do
// provedor. Criado apenas pelo upload; nunca alterado depois.
type Documento struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Nome      string `gorm:"size:255;not null" json:"nome"`
	Categoria string `gorm:"size:100" json:"categoria"`

	ClienteID  uint             `gorm:"not null;index" json:"clientId"`
	Cliente    *cliente.Cliente `gorm:"foreignKey:ClienteID" json:"client,omitempty"`
	SinistroID *uint            `gorm:"index" json:"claimId"`

	URL     string `gorm:"size:500;not null" json:"url"`
	Tipo    string `gorm:"size:20;not null" json:"type"`
	Caminho string `gorm:"size:500" json:"path"`

	CriadoEm time.Time `gorm:"autoCreateTime" json:"criadoEm"`
}
