package usuario

import "gorm.io/gorm"

type Repository interface {
	CriarComBootstrap(db *gorm.DB, u *Usuario) error
	BuscarPorEmail(db *gorm.DB, email string) (*Usuario, error)
	BuscarPorID(db *gorm.DB, id uint) (*Usuario, error)
	ListarTodos(db *gorm.DB) ([]Usuario, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// CriarComBootstrap insere o usuário dentro de uma transação que também
// verifica a contagem: o primeiro usuário do sistema vira ADMIN
// independentemente do perfil pedido.
func (r *repositoryImpl) CriarComBootstrap(db *gorm.DB, u *Usuario) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var total int64
		if err := tx.Model(&Usuario{}).Count(&total).Error; err != nil {
			return err
		}
		if total == 0 {
			u.Perfil = PerfilAdmin
		} else if u.Perfil == "" {
			u.Perfil = PerfilProdutor
		}
		return tx.Create(u).Error
	})
}

func (r *repositoryImpl) BuscarPorEmail(db *gorm.DB, email string) (*Usuario, error) {
	var u Usuario
	err := db.Where("email = ?", email).First(&u).Error
	return &u, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Usuario, error) {
	var u Usuario
	err := db.First(&u, id).Error
	return &u, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Usuario, error) {
	var usuarios []Usuario
	err := db.Order("nome asc").Find(&usuarios).Error
	return usuarios, err
}
