package lead

import "time"

const (
	StatusNovo      = "NOVO"
	StatusContatado = "CONTATADO"
	StatusVenda     = "VENDA"
	StatusPerdido   = "PERDIDO"
)

// Lead é o registro bruto vindo do fluxo conversacional (Typebot). Os
// campos são opcionais por linha de seguro; só o subconjunto preenchido
// pelo fluxo chega no webhook.
type Lead struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Nome       string `gorm:"size:255;not null" json:"nome"`
	Whatsapp   string `gorm:"size:50" json:"whatsapp"`
	TipoSeguro string `gorm:"size:50" json:"tipo_seguro"`
	ObsFinal   string `gorm:"type:text" json:"obs_final"`

	// Vida
	CapitalVida string `gorm:"size:50" json:"capital_vida"`
	Profissao   string `gorm:"size:100" json:"profissao"`
	MotivoVida  string `gorm:"size:255" json:"motivo_vida"`

	// Saúde
	PreferenciaRede string `gorm:"size:255" json:"preferencia_rede"`
	IdadesSaude     string `gorm:"size:100" json:"idades_saude"`
	PlanoSaude      string `gorm:"size:100" json:"plano_saude"`

	// Automóvel
	CoberturaRoubo     string `gorm:"size:50" json:"cobertura_roubo"`
	CoberturaTerceiros string `gorm:"size:50" json:"cobertura_terceiros"`
	CarroReserva       string `gorm:"size:50" json:"carro_reserva"`
	KmGuincho          string `gorm:"size:20" json:"km_guincho"`
	Renavan            string `gorm:"size:30" json:"renavan"`
	Placa              string `gorm:"size:20" json:"placa"`
	AnoVeiculo         string `gorm:"size:10" json:"ano_do_veiculo"`
	ModeloVeiculo      string `gorm:"size:100" json:"modelo_veiculo"`
	UsoVeiculo         string `gorm:"size:50" json:"uso_veiculo"`
	IdadeCondutor      string `gorm:"size:10" json:"idade_do_condutor"`
	CondutorPrincipal  string `gorm:"size:255" json:"condutor_principal"`

	Status string `gorm:"size:20;not null;default:'NOVO'" json:"status"`

	// Marcador de conversão: preenchido quando o lead virou cliente.
	ClienteID *uint `json:"clienteId"`

	CriadoEm time.Time `gorm:"autoCreateTime" json:"criadoEm"`
}
