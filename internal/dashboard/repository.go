package dashboard

import (
	"time"

	"github.com/cgseguros/api-corretora/internal/apolice"
	"github.com/cgseguros/api-corretora/internal/cliente"
	"github.com/cgseguros/api-corretora/internal/lead"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Repository agrega contadores do painel a partir das outras tabelas.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Indicadores é a resposta de GET /dashboard-stats.
type Indicadores struct {
	TotalClients   int64 `json:"totalClients"`
	ActivePolicies int64 `json:"activePolicies"`
	NewLeads       int64 `json:"newLeads"`
	Expiring       int64 `json:"expiring"`
}

// Indicadores conta clientes, apólices ativas, leads novos e apólices
// que vencem nos próximos 30 dias.
func (r *Repository) Indicadores(agora time.Time) (*Indicadores, error) {
	var ind Indicadores

	if err := r.DB.Model(&cliente.Cliente{}).Count(&ind.TotalClients).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&apolice.Apolice{}).
		Where("status = ?", apolice.StatusAtiva).
		Count(&ind.ActivePolicies).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&lead.Lead{}).
		Where("status = ?", lead.StatusNovo).
		Count(&ind.NewLeads).Error; err != nil {
		return nil, err
	}

	limite := agora.AddDate(0, 0, 30)
	if err := r.DB.Model(&apolice.Apolice{}).
		Where("status = ?", apolice.StatusAtiva).
		Where("data_fim BETWEEN ? AND ?", agora, limite).
		Count(&ind.Expiring).Error; err != nil {
		return nil, err
	}

	return &ind, nil
}

// Graficos é a resposta de GET /dashboard-charts: distribuição das
// apólices ativas por ramo e totais de prêmio e comissão.
type Graficos struct {
	Labels        []string `json:"labels"`
	Data          []int64  `json:"data"`
	PremioTotal   float64  `json:"premioTotal"`
	ComissaoTotal float64  `json:"comissaoTotal"`
}

// Graficos monta a distribuição por tipo_seguro na ordem em que cada
// ramo aparece e acumula prêmio e comissão em decimal.
func (r *Repository) Graficos() (*Graficos, error) {
	var apolices []apolice.Apolice
	if err := r.DB.Where("status = ?", apolice.StatusAtiva).
		Order("id asc").
		Find(&apolices).Error; err != nil {
		return nil, err
	}

	g := Graficos{Labels: []string{}, Data: []int64{}}
	indice := map[string]int{}
	premio := decimal.Zero
	comissao := decimal.Zero

	for _, a := range apolices {
		ramo := a.TipoSeguro
		if ramo == "" {
			ramo = "OUTROS"
		}
		pos, ok := indice[ramo]
		if !ok {
			pos = len(g.Labels)
			indice[ramo] = pos
			g.Labels = append(g.Labels, ramo)
			g.Data = append(g.Data, 0)
		}
		g.Data[pos]++

		premio = premio.Add(decimal.NewFromFloat(a.PremioLiquido))
		comissao = comissao.Add(decimal.NewFromFloat(a.ComissaoTotal))
	}

	g.PremioTotal = premio.Round(2).InexactFloat64()
	g.ComissaoTotal = comissao.Round(2).InexactFloat64()
	return &g, nil
}
