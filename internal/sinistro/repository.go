package sinistro

import "gorm.io/gorm"

// Repository encapsula as operações de banco para Sinistro.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(s *Sinistro) error {
	return r.DB.Create(s).Error
}

func (r *Repository) FindByID(id uint) (*Sinistro, error) {
	var s Sinistro
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// ListAll retorna os sinistros com o cliente, mais recentes primeiro.
func (r *Repository) ListAll() ([]Sinistro, error) {
	var lista []Sinistro
	err := r.DB.Preload("Cliente").Order("data_aviso desc").Find(&lista).Error
	return lista, err
}

// UpdateStatus grava o novo status e, quando informado, o valor final.
func (r *Repository) UpdateStatus(id uint, status string, valorFinal *float64) (*Sinistro, error) {
	s, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	campos := map[string]interface{}{"status": status}
	if valorFinal != nil {
		campos["valor_final"] = *valorFinal
	}
	if err := r.DB.Model(s).Updates(campos).Error; err != nil {
		return nil, err
	}
	return s, nil
}
