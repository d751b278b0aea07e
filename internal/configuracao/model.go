package configuracao

import "time"

const (
	StorageLocal = "LOCAL"
	StorageDrive = "DRIVE"
)

// Configuracao é o registro único de configuração do sistema (id fixo 1).
// A ausência da linha equivale a armazenamento LOCAL com o diretório padrão.
type Configuracao struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	StorageType     string `gorm:"size:20;not null;default:'LOCAL'" json:"storageType"`
	LocalPath       string `gorm:"size:500" json:"localPath"`
	GoogleDriveJSON string `gorm:"type:text" json:"googleDriveJson"`
	GoogleFolderID  string `gorm:"size:255" json:"googleFolderId"`

	SMTPHost   string `gorm:"size:255" json:"smtpHost"`
	SMTPPort   int    `json:"smtpPort"`
	SMTPSecure bool   `json:"smtpSecure"`
	SMTPUser   string `gorm:"size:255" json:"smtpUser"`
	SMTPPass   string `gorm:"size:255" json:"smtpPass"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// UsaDrive indica se o upload deve ir para o Drive (exige credenciais).
func (c *Configuracao) UsaDrive() bool {
	return c.StorageType == StorageDrive
}
