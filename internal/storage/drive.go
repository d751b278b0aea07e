package storage

import (
	"bytes"
	"context"
	"time"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// GoogleDrive envia arquivos via API v3 usando credenciais de service
// account guardadas na configuração do sistema.
type GoogleDrive struct {
	Timeout time.Duration
}

func (g *GoogleDrive) Upload(ctx context.Context, arq Arquivo, folderID, credentialsJSON string) (string, error) {
	timeout := g.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	svc, err := drive.NewService(ctx,
		option.WithCredentialsJSON([]byte(credentialsJSON)),
		option.WithScopes(drive.DriveFileScope),
	)
	if err != nil {
		return "", err
	}

	meta := &drive.File{Name: arq.Nome}
	if folderID != "" {
		meta.Parents = []string{folderID}
	}

	criado, err := svc.Files.Create(meta).
		Media(bytes.NewReader(arq.Conteudo)).
		Fields("id", "webViewLink").
		Context(ctx).
		Do()
	if err != nil {
		return "", err
	}
	return criado.WebViewLink, nil
}
