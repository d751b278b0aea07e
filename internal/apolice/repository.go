package apolice

import (
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, a *Apolice) error
	ListarTodas(db *gorm.DB) ([]Apolice, error)
	ListarAtivas(db *gorm.DB, produtorID *uint, inicio, fim *time.Time) ([]Apolice, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, a *Apolice) error {
	return db.Save(a).Error
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Apolice, error) {
	var apolices []Apolice
	err := db.Preload("Cliente").Preload("Usuario").
		Order("id desc").
		Find(&apolices).Error
	return apolices, err
}

// ListarAtivas aplica os filtros do relatório de produção: somente
// apólices ATIVA, opcionalmente restritas a um produtor e a uma janela
// de vigência inicial.
func (r *repositoryImpl) ListarAtivas(db *gorm.DB, produtorID *uint, inicio, fim *time.Time) ([]Apolice, error) {
	q := db.Preload("Cliente").Preload("Usuario").
		Where("status = ?", StatusAtiva)
	if produtorID != nil {
		q = q.Where("usuario_id = ?", *produtorID)
	}
	if inicio != nil && fim != nil {
		q = q.Where("data_inicio BETWEEN ? AND ?", *inicio, *fim)
	}

	var apolices []Apolice
	err := q.Find(&apolices).Error
	return apolices, err
}
