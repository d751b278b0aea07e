package financeiro

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Repository encapsula as operações de banco do financeiro.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(l *Lancamento) error {
	return r.DB.Create(l).Error
}

func (r *Repository) ListAll() ([]Lancamento, error) {
	var lista []Lancamento
	err := r.DB.Order("vencimento asc").Find(&lista).Error
	return lista, err
}

func (r *Repository) Update(id uint, dados *Lancamento) error {
	var existente Lancamento
	if err := r.DB.First(&existente, id).Error; err != nil {
		return err
	}
	return r.DB.Model(&existente).Updates(dados).Error
}

func (r *Repository) Delete(id uint) error {
	return r.DB.Delete(&Lancamento{}, id).Error
}

// ResumoFinanceiro é a resposta de GET /financial-stats.
type ResumoFinanceiro struct {
	Receita  float64 `json:"receita"`
	Despesa  float64 `json:"despesa"`
	Saldo    float64 `json:"saldo"`
	Pendente float64 `json:"pendente"`
}

// Resumo soma receitas e despesas pagas e o total pendente. Acumulação
// em decimal; arredondamento só na saída.
func (r *Repository) Resumo() (*ResumoFinanceiro, error) {
	lancamentos, err := r.ListAll()
	if err != nil {
		return nil, err
	}

	receita := decimal.Zero
	despesa := decimal.Zero
	pendente := decimal.Zero
	for _, l := range lancamentos {
		valor := decimal.NewFromFloat(l.Valor)
		if l.Tipo == TipoReceita && l.Status == StatusPago {
			receita = receita.Add(valor)
		}
		if l.Tipo == TipoDespesa && l.Status == StatusPago {
			despesa = despesa.Add(valor)
		}
		if l.Status == StatusPendente {
			pendente = pendente.Add(valor)
		}
	}

	return &ResumoFinanceiro{
		Receita:  receita.Round(2).InexactFloat64(),
		Despesa:  despesa.Round(2).InexactFloat64(),
		Saldo:    receita.Sub(despesa).Round(2).InexactFloat64(),
		Pendente: pendente.Round(2).InexactFloat64(),
	}, nil
}
