package notify

import (
	"fmt"
	"mime"
	"net/smtp"
	"strings"
)

// SMTPSender отправляет email через SMTP с STARTTLS.
// Стандартный net/smtp используется сознательно: внешних SMTP клиентов
// в стеке нет, а SendMail покрывает весь нужный протокол
type SMTPSender struct {
	host     string
	port     int
	user     string
	password string
	from     string
	logger   Logger
}

// NewSMTPSender создает отправителя email
// Если from пустой, используется user
func NewSMTPSender(host string, port int, user, password, from string, logger Logger) *SMTPSender {
	if from == "" {
		from = user
	}
	return &SMTPSender{
		host:     host,
		port:     port,
		user:     user,
		password: password,
		from:     from,
		logger:   logger,
	}
}

// Send отправляет HTML письмо
// Без настроенных SMTP учетных данных письмо не отправляется
func (s *SMTPSender) Send(to, subject, htmlBody string) error {
	if s.user == "" || s.password == "" {
		s.logger.Warn("SMTPSender: credentials not configured, email to %s not sent", to)
		return nil
	}

	msg := s.buildMessage(to, subject, htmlBody)
	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	auth := smtp.PlainAuth("", s.user, s.password, s.host)

	// SendMail сам делает STARTTLS, если сервер его поддерживает
	if err := smtp.SendMail(addr, auth, s.from, []string{to}, msg); err != nil {
		return fmt.Errorf("notify: failed to send email to %s: %w", to, err)
	}

	s.logger.Info("SMTPSender: email sent to %s", to)
	return nil
}

// buildMessage собирает MIME сообщение с HTML телом
func (s *SMTPSender) buildMessage(to, subject, htmlBody string) []byte {
	var b strings.Builder

	b.WriteString("From: " + s.from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString("<html><body style=\"font-family: Arial, sans-serif; line-height: 1.6; color: #333;\">")
	b.WriteString(htmlBody)
	b.WriteString("</body></html>\r\n")

	return []byte(b.String())
}
