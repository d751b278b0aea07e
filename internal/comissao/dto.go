package comissao

import "github.com/cgseguros/api-corretora/internal/apolice"

// LinhaProducao é uma apólice do relatório com a comissão do produtor já
// calculada e arredondada para apresentação.
type LinhaProducao struct {
	apolice.Apolice
	ComissaoProdutor float64 `json:"comissao_produtor"`
}

// Resumo agrega a produção filtrada.
type Resumo struct {
	Vendas   int     `json:"vendas"`
	Premio   float64 `json:"premio"`
	Comissao float64 `json:"comissao"`
}

// Relatorio é a resposta de GET /producer-stats.
type Relatorio struct {
	Resumo Resumo          `json:"resumo"`
	Lista  []LinhaProducao `json:"lista"`
}
