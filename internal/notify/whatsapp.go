package notify

// LogWhatsAppSender пишет WhatsApp сообщения в лог вместо отправки.
// TODO: подключить Twilio WhatsApp API, когда появятся учетные данные
type LogWhatsAppSender struct {
	logger Logger
}

// NewLogWhatsAppSender создает заглушку отправителя WhatsApp
func NewLogWhatsAppSender(logger Logger) *LogWhatsAppSender {
	return &LogWhatsAppSender{logger: logger}
}

// Send логирует сообщение и считает его доставленным
func (s *LogWhatsAppSender) Send(phoneNumber, message string) error {
	s.logger.Info("WhatsApp notification (placeholder) to %s: %s", phoneNumber, message)
	return nil
}
