package apolice

import (
	"time"

	"github.com/cgseguros/api-corretora/internal/cliente"
	"github.com/cgseguros/api-corretora/internal/usuario"
	"gorm.io/gorm"
)

const StatusAtiva = "ATIVA"

// Apolice é o contrato de seguro emitido. O prêmio não muda depois de
// gravado; não existe rota de atualização.
type Apolice struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Numero        string    `gorm:"size:100;not null" json:"numero"`
	TipoSeguro    string    `gorm:"size:50" json:"tipo_seguro"`
	Status        string    `gorm:"size:20;not null;index" json:"status"`
	DataInicio    time.Time `gorm:"index" json:"data_inicio"`
	DataFim       time.Time `json:"data_fim"`
	PremioLiquido float64   `json:"premio_liquido"`
	ComissaoTotal float64   `json:"comissao_total"`

	ClienteID uint             `gorm:"not null;index" json:"clientId"`
	Cliente   *cliente.Cliente `gorm:"foreignKey:ClienteID" json:"client,omitempty"`

	// produtor responsável; pode não haver
	UsuarioID *uint            `gorm:"index" json:"userId"`
	Usuario   *usuario.Usuario `gorm:"foreignKey:UsuarioID" json:"user,omitempty"`

	PdfURL string `gorm:"size:500" json:"pdf_url"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
