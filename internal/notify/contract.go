package notify

// Channel канал доставки уведомления
type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelWhatsApp Channel = "whatsapp"
)

// Message уведомление, поставленное в очередь на отправку
type Message struct {
	Channel   Channel // Канал доставки
	Recipient string  // Email или номер телефона
	Subject   string  // Тема письма (для email)
	Body      string  // Тело сообщения
}

// EmailSender интерфейс отправки email
type EmailSender interface {
	Send(to, subject, htmlBody string) error
}

// WhatsAppSender интерфейс отправки WhatsApp сообщений
type WhatsAppSender interface {
	Send(phoneNumber, message string) error
}

// MetricsCollector интерфейс для счетчиков отправленных уведомлений
type MetricsCollector interface {
	IncNotification(channel, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
