package notify

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmbestetica/BMB-BookingService/internal/domain"
)

type recordingEmailSender struct {
	mu   sync.Mutex
	sent []string
}

func (s *recordingEmailSender) Send(to, _, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, to)
	return nil
}

func (s *recordingEmailSender) recipients() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.sent...)
}

type recordingWhatsAppSender struct {
	mu   sync.Mutex
	sent []string
}

func (s *recordingWhatsAppSender) Send(phoneNumber, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, phoneNumber)
	return nil
}

func (s *recordingWhatsAppSender) recipients() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.sent...)
}

// blockingEmailSender блокируется в отправке до закрытия release
type blockingEmailSender struct {
	started chan struct{}
	release chan struct{}
}

func (s *blockingEmailSender) Send(string, string, string) error {
	s.started <- struct{}{}
	<-s.release
	return nil
}

type fakeMetrics struct {
	mu     sync.Mutex
	counts map[string]int
}

func (m *fakeMetrics) IncNotification(_, result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.counts == nil {
		m.counts = make(map[string]int)
	}
	m.counts[result]++
}

func (m *fakeMetrics) result(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[name]
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testBooking() *domain.Booking {
	date, _ := time.Parse(domain.DateFormat, "2025-06-10")
	return &domain.Booking{
		ID:            "b1",
		ServiceName:   "Lavagem Simples",
		CustomerName:  "João Silva",
		CustomerPhone: "+5521999999999",
		CustomerEmail: "joao@example.com",
		VehicleModel:  "Fiat Argo",
		VehiclePlate:  "ABC1D23",
		Date:          date,
		Time:          "08:00",
		Status:        domain.StatusPending,
	}
}

func TestDispatcher_BookingCreated(t *testing.T) {
	email := &recordingEmailSender{}
	whatsapp := &recordingWhatsAppSender{}

	d := NewDispatcher(email, whatsapp, "owner@bmb.com", "+5521992739496", 16, nil, noopLogger{})
	d.BookingCreated(testBooking())
	d.Close()

	assert.ElementsMatch(t, []string{"owner@bmb.com", "joao@example.com"}, email.recipients())
	assert.ElementsMatch(t, []string{"+5521992739496", "+5521999999999"}, whatsapp.recipients())
}

func TestDispatcher_NoOwnerContacts(t *testing.T) {
	email := &recordingEmailSender{}
	whatsapp := &recordingWhatsAppSender{}

	d := NewDispatcher(email, whatsapp, "", "", 16, nil, noopLogger{})
	d.BookingCreated(testBooking())
	d.Close()

	// Без контактов владельца уходят только клиентские уведомления
	assert.Equal(t, []string{"joao@example.com"}, email.recipients())
	assert.Equal(t, []string{"+5521999999999"}, whatsapp.recipients())
}

func TestDispatcher_CloseDrainsQueue(t *testing.T) {
	email := &recordingEmailSender{}
	whatsapp := &recordingWhatsAppSender{}

	d := NewDispatcher(email, whatsapp, "owner@bmb.com", "+5521992739496", 64, nil, noopLogger{})
	for i := 0; i < 5; i++ {
		d.BookingCreated(testBooking())
	}
	d.Close()

	require.Len(t, email.recipients(), 10)
	require.Len(t, whatsapp.recipients(), 10)
}

func TestDispatcher_DropsWhenQueueFull(t *testing.T) {
	sender := &blockingEmailSender{
		started: make(chan struct{}, 4),
		release: make(chan struct{}),
	}
	metrics := &fakeMetrics{}

	d := NewDispatcher(sender, &recordingWhatsAppSender{}, "", "", 1, metrics, noopLogger{})

	// Воркер забирает первое сообщение и зависает в отправке
	d.enqueue(Message{Channel: ChannelEmail, Recipient: "a@example.com"})
	<-sender.started

	// Второе занимает единственное место в очереди
	d.enqueue(Message{Channel: ChannelEmail, Recipient: "b@example.com"})

	// Третье отбрасывается сразу, постановка не блокируется
	done := make(chan struct{})
	go func() {
		d.enqueue(Message{Channel: ChannelEmail, Recipient: "c@example.com"})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("enqueue blocked on full queue")
	}

	close(sender.release)
	d.Close()

	assert.Equal(t, 1, metrics.result("dropped"))
	assert.Equal(t, 2, metrics.result("sent"))
}

func TestFormatMessages(t *testing.T) {
	b := testBooking()

	subject, body := formatOwnerEmail(b)
	assert.Contains(t, subject, "Novo Agendamento")
	assert.Contains(t, body, "Lavagem Simples")
	assert.Contains(t, body, "10/06/2025")
	assert.Contains(t, body, "08:00")
	assert.Contains(t, body, "ABC1D23")

	subject, body = formatCustomerEmail(b)
	assert.Contains(t, subject, "Agendamento Confirmado")
	assert.Contains(t, body, "João Silva")
	assert.Contains(t, body, shopAddress)

	msg := formatOwnerWhatsApp(b)
	assert.Contains(t, msg, "2025-06-10")
	assert.Contains(t, msg, "Fiat Argo - ABC1D23")

	msg = formatCustomerWhatsApp(b)
	assert.Contains(t, msg, "Olá *João Silva*!")
	assert.Contains(t, msg, shopAddress)
}
