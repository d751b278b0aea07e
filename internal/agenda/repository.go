package agenda

import (
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, c *Compromisso) error
	Listar(db *gorm.DB, inicio, fim *time.Time) ([]Compromisso, error)
	Atualizar(db *gorm.DB, id uint, dados *Compromisso) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, c *Compromisso) error {
	return db.Save(c).Error
}

// Listar devolve a agenda em ordem cronológica, opcionalmente limitada a
// uma janela.
func (r *repositoryImpl) Listar(db *gorm.DB, inicio, fim *time.Time) ([]Compromisso, error) {
	q := db.Preload("Cliente").Order("data asc")
	if inicio != nil && fim != nil {
		q = q.Where("data BETWEEN ? AND ?", *inicio, *fim)
	}
	var lista []Compromisso
	err := q.Find(&lista).Error
	return lista, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, dados *Compromisso) error {
	var existente Compromisso
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}
	return db.Model(&existente).Updates(dados).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Compromisso{}, id).Error
}
