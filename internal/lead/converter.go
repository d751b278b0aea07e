package lead

import (
	"errors"

	"github.com/cgseguros/api-corretora/internal/cliente"
	"gorm.io/gorm"
)

// Converter promove um lead a cliente. A projeção é guiada por presença:
// um campo do lead só é copiado quando está preenchido, então nunca
// sobrescreve um valor do alvo com vazio. Overrides do operador vencem os
// valores do lead. Criação do cliente e marcação do lead acontecem na
// mesma transação; o marcador ClienteID torna a operação idempotente.
type Converter struct {
	ClienteRepo cliente.Repository
}

func NewConverter() *Converter {
	return &Converter{ClienteRepo: cliente.NewRepository()}
}

func aplicaSePresente(dst *string, valor string) {
	if valor != "" {
		*dst = valor
	}
}

// projetar copia os campos preenchidos do lead para o cliente.
func projetar(l *Lead, c *cliente.Cliente) {
	aplicaSePresente(&c.Nome, l.Nome)
	aplicaSePresente(&c.Whatsapp, l.Whatsapp)
	aplicaSePresente(&c.Observacoes, l.ObsFinal)

	// automóvel
	aplicaSePresente(&c.ModeloVeiculo, l.ModeloVeiculo)
	aplicaSePresente(&c.Placa, l.Placa)
	aplicaSePresente(&c.Renavan, l.Renavan)
	aplicaSePresente(&c.AnoVeiculo, l.AnoVeiculo)
	aplicaSePresente(&c.UsoVeiculo, l.UsoVeiculo)
	aplicaSePresente(&c.CondutorPrincipal, l.CondutorPrincipal)
	aplicaSePresente(&c.IdadeCondutor, l.IdadeCondutor)
	aplicaSePresente(&c.KmGuincho, l.KmGuincho)
	aplicaSePresente(&c.CarroReserva, l.CarroReserva)
	aplicaSePresente(&c.CoberturaRoubo, l.CoberturaRoubo)
	aplicaSePresente(&c.CoberturaTerceiros, l.CoberturaTerceiros)

	// vida
	aplicaSePresente(&c.CapitalVida, l.CapitalVida)
	aplicaSePresente(&c.Profissao, l.Profissao)
	aplicaSePresente(&c.MotivoVida, l.MotivoVida)

	// saúde
	aplicaSePresente(&c.PlanoSaude, l.PlanoSaude)
	aplicaSePresente(&c.IdadesSaude, l.IdadesSaude)
	aplicaSePresente(&c.PreferenciaRede, l.PreferenciaRede)
}

// Convert cria o cliente a partir do lead e marca o lead como VENDA.
// Um lead já convertido devolve o cliente existente sem duplicar nada.
func (cv *Converter) Convert(db *gorm.DB, leadID uint, overrides ConversaoOverrides) (*cliente.Cliente, error) {
	var l Lead
	if err := db.First(&l, leadID).Error; err != nil {
		return nil, err
	}

	if l.ClienteID != nil {
		existente, err := cv.ClienteRepo.BuscarPorID(db, *l.ClienteID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if err == nil {
			return existente, nil
		}
		// marcador órfão: segue e converte de novo
	}

	var novo cliente.Cliente
	projetar(&l, &novo)

	aplicaSePresente(&novo.Nome, overrides.Nome)
	aplicaSePresente(&novo.Email, overrides.Email)
	aplicaSePresente(&novo.Telefone, overrides.Telefone)
	aplicaSePresente(&novo.CPF, overrides.CPF)
	aplicaSePresente(&novo.Endereco, overrides.Endereco)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&novo).Error; err != nil {
			return err
		}
		return tx.Model(&l).Updates(map[string]interface{}{
			"status":     StatusVenda,
			"cliente_id": novo.ID,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &novo, nil
}
