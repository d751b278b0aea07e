package documento

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, d *Documento) error
	BuscarPorID(db *gorm.DB, id uint) (*Documento, error)
	ListarPorCliente(db *gorm.DB, clienteID uint) ([]Documento, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, d *Documento) error {
	return db.Create(d).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Documento, error) {
	var d Documento
	err := db.Preload("Cliente").First(&d, id).Error
	return &d, err
}

// ListarPorCliente devolve os documentos do cliente, mais recentes antes.
func (r *repositoryImpl) ListarPorCliente(db *gorm.DB, clienteID uint) ([]Documento, error) {
	var docs []Documento
	err := db.Where("cliente_id = ?", clienteID).
		Order("criado_em desc").
		Find(&docs).Error
	return docs, err
}
