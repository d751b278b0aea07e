package cliente

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Cliente é o cadastro canônico do segurado. Superconjunto dos campos de
// lead, mais os blobs estruturados preenchidos pelo dashboard.
type Cliente struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Nome     string `gorm:"size:255;not null" json:"nome"`
	Email    string `gorm:"size:255" json:"email"`
	Telefone string `gorm:"size:50" json:"telefone"`
	Whatsapp string `gorm:"size:50" json:"whatsapp"`
	CPF      string `gorm:"size:20" json:"cpf"`
	Endereco string `gorm:"size:500" json:"endereco"`

	Observacoes string `gorm:"type:text" json:"observacoes"`

	// Ramo automóvel
	ModeloVeiculo      string `gorm:"size:100" json:"modelo_veiculo"`
	Placa              string `gorm:"size:20" json:"placa"`
	Renavan            string `gorm:"size:30" json:"renavan"`
	AnoVeiculo         string `gorm:"size:10" json:"ano_do_veiculo"`
	UsoVeiculo         string `gorm:"size:50" json:"uso_veiculo"`
	CondutorPrincipal  string `gorm:"size:255" json:"condutor_principal"`
	IdadeCondutor      string `gorm:"size:10" json:"idade_do_condutor"`
	KmGuincho          string `gorm:"size:20" json:"km_guincho"`
	CarroReserva       string `gorm:"size:50" json:"carro_reserva"`
	CoberturaRoubo     string `gorm:"size:50" json:"cobertura_roubo"`
	CoberturaTerceiros string `gorm:"size:50" json:"cobertura_terceiros"`

	// Ramo vida
	CapitalVida string `gorm:"size:50" json:"capital_vida"`
	Profissao   string `gorm:"size:100" json:"profissao"`
	MotivoVida  string `gorm:"size:255" json:"motivo_vida"`

	// Ramo saúde
	PlanoSaude      string `gorm:"size:100" json:"plano_saude"`
	IdadesSaude     string `gorm:"size:100" json:"idades_saude"`
	PreferenciaRede string `gorm:"size:255" json:"preferencia_rede"`

	Preferences    json.RawMessage `gorm:"type:jsonb" json:"preferences"`
	Questionnaires json.RawMessage `gorm:"type:jsonb" json:"questionnaires"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
