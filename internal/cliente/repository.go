package cliente

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, c *Cliente) error
	BuscarPorID(db *gorm.DB, id uint) (*Cliente, error)
	ListarTodos(db *gorm.DB) ([]Cliente, error)
	Atualizar(db *gorm.DB, id uint, dados *Cliente) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, c *Cliente) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Cliente, error) {
	var c Cliente
	err := db.First(&c, id).Error
	return &c, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Cliente, error) {
	var clientes []Cliente
	err := db.Order("nome asc").Find(&clientes).Error
	return clientes, err
}

// Atualizar aplica somente os campos preenchidos no payload.
func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, dados *Cliente) error {
	var existente Cliente
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}
	return db.Model(&existente).Updates(dados).Error
}
