package notify

import (
	"sync"

	"github.com/bmbestetica/BMB-BookingService/internal/domain"
)

// Dispatcher асинхронный диспетчер уведомлений.
//
// Уведомления ставятся в буферизованную очередь и отправляются фоновым
// воркером. Постановка в очередь не блокируется: при переполненной
// очереди сообщение отбрасывается с warn в логе. Ошибки отправки
// логируются и никогда не влияют на результат бронирования
type Dispatcher struct {
	queue    chan Message
	email    EmailSender
	whatsapp WhatsAppSender
	metrics  MetricsCollector
	logger   Logger

	ownerEmail    string
	ownerWhatsApp string

	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewDispatcher создает диспетчер и запускает фоновый воркер
// metrics может быть nil, если сбор метрик выключен
func NewDispatcher(
	email EmailSender,
	whatsapp WhatsAppSender,
	ownerEmail string,
	ownerWhatsApp string,
	queueSize int,
	metrics MetricsCollector,
	logger Logger,
) *Dispatcher {
	d := &Dispatcher{
		queue:         make(chan Message, queueSize),
		email:         email,
		whatsapp:      whatsapp,
		metrics:       metrics,
		logger:        logger,
		ownerEmail:    ownerEmail,
		ownerWhatsApp: ownerWhatsApp,
	}

	d.wg.Add(1)
	go d.worker()

	return d
}

// BookingCreated ставит в очередь уведомления о новом бронировании:
// email и WhatsApp владельцу, email и WhatsApp клиенту
func (d *Dispatcher) BookingCreated(booking *domain.Booking) {
	if d.ownerEmail != "" {
		subject, body := formatOwnerEmail(booking)
		d.enqueue(Message{
			Channel:   ChannelEmail,
			Recipient: d.ownerEmail,
			Subject:   subject,
			Body:      body,
		})
	}

	if d.ownerWhatsApp != "" {
		d.enqueue(Message{
			Channel:   ChannelWhatsApp,
			Recipient: d.ownerWhatsApp,
			Body:      formatOwnerWhatsApp(booking),
		})
	}

	subject, body := formatCustomerEmail(booking)
	d.enqueue(Message{
		Channel:   ChannelEmail,
		Recipient: booking.CustomerEmail,
		Subject:   subject,
		Body:      body,
	})

	d.enqueue(Message{
		Channel:   ChannelWhatsApp,
		Recipient: booking.CustomerPhone,
		Body:      formatCustomerWhatsApp(booking),
	})
}

// Close закрывает очередь и дожидается отправки оставшихся сообщений
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}

// enqueue ставит сообщение в очередь без блокировки
func (d *Dispatcher) enqueue(msg Message) {
	select {
	case d.queue <- msg:
	default:
		d.logger.Warn("Dispatcher: queue full, dropping %s notification to %s", msg.Channel, msg.Recipient)
		d.observe(msg.Channel, "dropped")
	}
}

// worker отправляет сообщения из очереди до её закрытия
func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for msg := range d.queue {
		d.send(msg)
	}
}

// send доставляет одно сообщение, ошибки только логируются
func (d *Dispatcher) send(msg Message) {
	var err error

	switch msg.Channel {
	case ChannelEmail:
		err = d.email.Send(msg.Recipient, msg.Subject, msg.Body)
	case ChannelWhatsApp:
		err = d.whatsapp.Send(msg.Recipient, msg.Body)
	default:
		d.logger.Error("Dispatcher: unknown channel %s", msg.Channel)
		return
	}

	if err != nil {
		d.logger.Error("Dispatcher: failed to send %s notification to %s: %v", msg.Channel, msg.Recipient, err)
		d.observe(msg.Channel, "error")
		return
	}

	d.observe(msg.Channel, "sent")
}

func (d *Dispatcher) observe(channel Channel, result string) {
	if d.metrics != nil {
		d.metrics.IncNotification(string(channel), result)
	}
}
