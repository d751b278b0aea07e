package sinistro

// createSinistroRequest espelha o formulário de abertura do dashboard.
// O sinistro sempre nasce ABERTO; status enviado aqui é ignorado.
type createSinistroRequest struct {
	TipoSinistro   string  `json:"tipo_sinistro"`
	Descricao      string  `json:"descricao"`
	DataOcorrencia string  `json:"data_ocorrencia"`
	OficinaNome    string  `json:"oficina_nome"`
	OficinaTel     string  `json:"oficina_tel"`
	TerceiroNome   string  `json:"terceiro_nome"`
	TerceiroTel    string  `json:"terceiro_tel"`
	PlacaTerceiro  string  `json:"placa_terceiro"`
	ValorFranquia  float64 `json:"valor_franquia"`
	ValorOrcamento float64 `json:"valor_orcamento"`
	ClienteID      uint    `json:"clientId"`
	ApoliceID      *uint   `json:"policyId"`
}

type updateStatusRequest struct {
	Status     string   `json:"status"`
	ValorFinal *float64 `json:"valor_final"`
}
