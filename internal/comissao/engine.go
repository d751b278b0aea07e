package comissao

import (
	"time"

	"github.com/cgseguros/api-corretora/internal/apolice"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Filtro restringe o relatório de produção. Mes e Ano só valem juntos.
type Filtro struct {
	ProdutorID *uint
	Mes        int
	Ano        int
}

// Engine calcula a produção por produtor. Leitura pura: nada é gravado e
// o relatório pode ser recalculado a qualquer momento.
type Engine struct {
	DB   *gorm.DB
	Repo apolice.Repository
}

func NewEngine(db *gorm.DB) *Engine {
	return &Engine{DB: db, Repo: apolice.NewRepository()}
}

// cem é o divisor do percentual de comissão.
var cem = decimal.NewFromInt(100)

// RelatorioProdutor junta as apólices ATIVA ao percentual do produtor e
// soma prêmio e comissão. A acumulação usa decimal; o arredondamento
// (half-up, 2 casas) acontece só na apresentação.
func (e *Engine) RelatorioProdutor(filtro Filtro) (*Relatorio, error) {
	var inicio, fim *time.Time
	if filtro.Mes > 0 && filtro.Ano > 0 {
		// [primeiro dia 00:00, último dia 23:59:59] do mês pedido
		i := time.Date(filtro.Ano, time.Month(filtro.Mes), 1, 0, 0, 0, 0, time.Local)
		f := i.AddDate(0, 1, 0).Add(-time.Second)
		inicio, fim = &i, &f
	}

	apolices, err := e.Repo.ListarAtivas(e.DB, filtro.ProdutorID, inicio, fim)
	if err != nil {
		return nil, err
	}

	totalPremio := decimal.Zero
	totalComissao := decimal.Zero
	lista := make([]LinhaProducao, 0, len(apolices))

	for _, a := range apolices {
		premio := decimal.NewFromFloat(a.PremioLiquido)

		percentual := decimal.Zero
		if a.Usuario != nil {
			percentual = decimal.NewFromFloat(a.Usuario.Comissao)
		}
		comissao := premio.Mul(percentual).Div(cem)

		totalPremio = totalPremio.Add(premio)
		totalComissao = totalComissao.Add(comissao)

		lista = append(lista, LinhaProducao{
			Apolice:          a,
			ComissaoProdutor: comissao.Round(2).InexactFloat64(),
		})
	}

	return &Relatorio{
		Resumo: Resumo{
			Vendas:   len(apolices),
			Premio:   totalPremio.Round(2).InexactFloat64(),
			Comissao: totalComissao.Round(2).InexactFloat64(),
		},
		Lista: lista,
	}, nil
}
