package configuracao

import (
	"errors"

	"gorm.io/gorm"
)

// idSingleton é o único id permitido para a linha de configuração.
const idSingleton = 1

type Repository interface {
	Carregar(db *gorm.DB) (*Configuracao, error)
	Salvar(db *gorm.DB, cfg *Configuracao) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Carregar lê a configuração vigente. Sem linha no banco, devolve o
// padrão LOCAL sem persistir nada.
func (r *repositoryImpl) Carregar(db *gorm.DB) (*Configuracao, error) {
	var cfg Configuracao
	err := db.First(&cfg, idSingleton).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &Configuracao{ID: idSingleton, StorageType: StorageLocal}, nil
	}
	if err != nil {
		return nil, err
	}
	if cfg.StorageType == "" {
		cfg.StorageType = StorageLocal
	}
	return &cfg, nil
}

// Salvar faz upsert da linha de id 1. A configuração nunca é removida.
func (r *repositoryImpl) Salvar(db *gorm.DB, cfg *Configuracao) error {
	cfg.ID = idSingleton
	if cfg.StorageType == "" {
		cfg.StorageType = StorageLocal
	}
	return db.Save(cfg).Error
}
