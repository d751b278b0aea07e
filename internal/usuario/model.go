package usuario

import (
	"time"

	"gorm.io/gorm"
)

const (
	PerfilAdmin    = "ADMIN"
	PerfilProdutor = "PRODUTOR"
)

// ComissaoPadrao é o percentual aplicado quando o cadastro não informa um.
const ComissaoPadrao = 10.0

// Usuario é um operador do sistema. Produtores carregam o percentual de
// comissão usado pelo relatório de produção.
type Usuario struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Nome     string  `gorm:"size:255;not null" json:"nome"`
	Email    string  `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Senha    string  `gorm:"size:255;not null" json:"-"`
	Perfil   string  `gorm:"size:20;not null;default:'PRODUTOR'" json:"perfil"`
	Comissao float64 `gorm:"not null;default:10" json:"comissao"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
