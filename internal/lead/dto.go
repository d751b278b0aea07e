package lead

// webhookPayload espelha os nomes de campo que o fluxo do Typebot envia.
// Nome_completo tem precedência sobre nome.
type webhookPayload struct {
	NomeCompleto string `json:"Nome_completo"`
	Nome         string `json:"nome"`
	Whatsapp     string `json:"whatsapp"`
	TipoSeguro   string `json:"tipo_seguro"`
	ObsFinal     string `json:"obs_final"`

	CapitalVida string `json:"capital_vida"`
	Profissao   string `json:"profissao"`
	MotivoVida  string `json:"motivo_vida"`

	PreferenciaRede string `json:"preferencia_rede"`
	IdadesSaude     string `json:"idades_saude"`
	PlanoSaude      string `json:"plano_saude"`

	CoberturaRoubo     string `json:"cobertura_roubo"`
	CoberturaTerceiros string `json:"cobertura_terceiros"`
	CarroReserva       string `json:"carro_reserva"`
	KmGuincho          string `json:"km_guincho"`
	Renavan            string `json:"renavan"`
	Placa              string `json:"placa"`
	AnoVeiculo         string `json:"ano_do_veiculo"`
	ModeloVeiculo      string `json:"modelo_veiculo"`
	UsoVeiculo         string `json:"uso_veiculo"`
	IdadeCondutor      string `json:"idade_do_condutor"`
	CondutorPrincipal  string `json:"condutor_principal"`
}

func (p *webhookPayload) paraLead() Lead {
	nome := p.NomeCompleto
	if nome == "" {
		nome = p.Nome
	}
	if nome == "" {
		nome = "Lead sem Nome"
	}
	return Lead{
		Nome:               nome,
		Whatsapp:           p.Whatsapp,
		TipoSeguro:         p.TipoSeguro,
		ObsFinal:           p.ObsFinal,
		CapitalVida:        p.CapitalVida,
		Profissao:          p.Profissao,
		MotivoVida:         p.MotivoVida,
		PreferenciaRede:    p.PreferenciaRede,
		IdadesSaude:        p.IdadesSaude,
		PlanoSaude:         p.PlanoSaude,
		CoberturaRoubo:     p.CoberturaRoubo,
		CoberturaTerceiros: p.CoberturaTerceiros,
		CarroReserva:       p.CarroReserva,
		KmGuincho:          p.KmGuincho,
		Renavan:            p.Renavan,
		Placa:              p.Placa,
		AnoVeiculo:         p.AnoVeiculo,
		ModeloVeiculo:      p.ModeloVeiculo,
		UsoVeiculo:         p.UsoVeiculo,
		IdadeCondutor:      p.IdadeCondutor,
		CondutorPrincipal:  p.CondutorPrincipal,
		Status:             StatusNovo,
	}
}

// ConversaoOverrides são campos do cliente informados pelo operador no
// momento da conversão; vencem os valores vindos do lead.
type ConversaoOverrides struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	CPF      string `json:"cpf"`
	Endereco string `json:"endereco"`
}
