package notificacao

import (
	"errors"
	"fmt"
	"time"

	"github.com/cgseguros/api-corretora/internal/configuracao"
	"gopkg.in/gomail.v2"
)

var ErrSMTPNaoConfigurado = errors.New("transporte SMTP não configurado")

// Mensagem é um envio simples: corpo texto e anexo opcional.
type Mensagem struct {
	Para    string
	Assunto string
	Corpo   string
	Anexo   string // caminho local; vazio quando não há anexo
}

// Mailer envia e-mails usando o transporte gravado na configuração.
type Mailer interface {
	Enviar(cfg *configuracao.Configuracao, msg Mensagem) error
}

// SMTPMailer usa gomail com os campos SMTP da configuração do sistema.
// O envio é limitado por timeout e reportado como falha transitória.
type SMTPMailer struct {
	Timeout time.Duration
}

func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{Timeout: 20 * time.Second}
}

func (m *SMTPMailer) Enviar(cfg *configuracao.Configuracao, msg Mensagem) error {
	if cfg.SMTPHost == "" {
		return ErrSMTPNaoConfigurado
	}

	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	d.SSL = cfg.SMTPSecure

	email := gomail.NewMessage()
	email.SetAddressHeader("From", cfg.SMTPUser, "CG Seguros")
	email.SetHeader("To", msg.Para)
	email.SetHeader("Subject", msg.Assunto)
	email.SetBody("text/plain", msg.Corpo)
	if msg.Anexo != "" {
		email.Attach(msg.Anexo)
	}

	// gomail não aceita context; o timeout é imposto por fora
	done := make(chan error, 1)
	go func() { done <- d.DialAndSend(email) }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("falha no envio de e-mail: %w", err)
		}
		return nil
	case <-time.After(m.Timeout):
		return errors.New("envio de e-mail excedeu o tempo limite")
	}
}
