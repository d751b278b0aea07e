package sinistro

import (
	"time"

	"github.com/cgseguros/api-corretora/internal/cliente"
	"gorm.io/gorm"
)

// Sinistro é a ocorrência de um segurado em resolução operacional.
// DataAviso marca a abertura e nunca é alterada.
type Sinistro struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Status         string    `gorm:"size:20;not null;default:'ABERTO';index" json:"status"`
	TipoSinistro   string    `gorm:"size:50" json:"tipo_sinistro"`
	Descricao      string    `gorm:"type:text" json:"descricao"`
	DataOcorrencia time.Time `json:"data_ocorrencia"`

	OficinaNome   string `gorm:"size:255" json:"oficina_nome"`
	OficinaTel    string `gorm:"size:50" json:"oficina_tel"`
	TerceiroNome  string `gorm:"size:255" json:"terceiro_nome"`
	TerceiroTel   string `gorm:"size:50" json:"terceiro_tel"`
	PlacaTerceiro string `gorm:"size:20" json:"placa_terceiro"`

	ValorFranquia  float64  `json:"valor_franquia"`
	ValorOrcamento float64  `json:"valor_orcamento"`
	ValorFinal     *float64 `json:"valor_final"`

	ClienteID uint             `gorm:"not null;index" json:"clientId"`
	Cliente   *cliente.Cliente `gorm:"foreignKey:ClienteID" json:"client,omitempty"`
	ApoliceID *uint            `gorm:"index" json:"policyId"`

	DataAviso time.Time      `gorm:"autoCreateTime" json:"data_aviso"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
