package lead

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, l *Lead) error
	BuscarPorID(db *gorm.DB, id uint) (*Lead, error)
	ListarTodos(db *gorm.DB) ([]Lead, error)
	Atualizar(db *gorm.DB, id uint, dados *Lead) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, l *Lead) error {
	return db.Save(l).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Lead, error) {
	var l Lead
	err := db.First(&l, id).Error
	return &l, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Lead, error) {
	var leads []Lead
	err := db.Order("criado_em desc").Find(&leads).Error
	return leads, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, dados *Lead) error {
	var existente Lead
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}
	return db.Model(&existente).Updates(dados).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Lead{}, id).Error
}
