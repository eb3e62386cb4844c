package notify

import (
	"fmt"

	"github.com/bmbestetica/BMB-BookingService/internal/domain"
)

// humanDateFormat формат даты в письмах клиенту и владельцу
const humanDateFormat = "02/01/2006"

// shopAddress адрес студии, попадает в подтверждение клиенту
const shopAddress = "RUA JUIZ JACOB GOLDEMBERG, 4"

// formatOwnerEmail формирует письмо владельцу о новом агендаменто
func formatOwnerEmail(b *domain.Booking) (subject, body string) {
	subject = "🚗 Novo Agendamento - BMB ESTÉTICA AUTOMOTIVA"
	body = fmt.Sprintf(`
	<div style="background: #f4f4f5; padding: 20px; border-radius: 8px;">
		<h2 style="color: #3b82f6;">Novo Agendamento Recebido!</h2>

		<div style="background: white; padding: 20px; border-radius: 8px; margin: 20px 0;">
			<h3 style="color: #18181b; border-bottom: 2px solid #3b82f6; padding-bottom: 10px;">Detalhes do Serviço</h3>
			<p><strong>Serviço:</strong> %s</p>
			<p><strong>Data:</strong> %s</p>
			<p><strong>Horário:</strong> %s</p>
			<p><strong>Status:</strong> Pendente</p>
		</div>

		<div style="background: white; padding: 20px; border-radius: 8px; margin: 20px 0;">
			<h3 style="color: #18181b; border-bottom: 2px solid #3b82f6; padding-bottom: 10px;">Dados do Cliente</h3>
			<p><strong>Nome:</strong> %s</p>
			<p><strong>Telefone:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
		</div>

		<div style="background: white; padding: 20px; border-radius: 8px; margin: 20px 0;">
			<h3 style="color: #18181b; border-bottom: 2px solid #3b82f6; padding-bottom: 10px;">Dados do Veículo</h3>
			<p><strong>Modelo:</strong> %s</p>
			<p><strong>Placa:</strong> %s</p>
		</div>

		<p style="color: #71717a; font-size: 12px; margin-top: 20px;">
			ID do Agendamento: %s
		</p>
	</div>`,
		b.ServiceName,
		b.Date.Format(humanDateFormat),
		b.Time,
		b.CustomerName,
		b.CustomerPhone,
		b.CustomerEmail,
		b.VehicleModel,
		b.VehiclePlate,
		b.ID,
	)
	return subject, body
}

// formatCustomerEmail формирует письмо клиенту с подтверждением
func formatCustomerEmail(b *domain.Booking) (subject, body string) {
	subject = "✅ Agendamento Confirmado - BMB ESTÉTICA AUTOMOTIVA"
	body = fmt.Sprintf(`
	<div style="background: #f4f4f5; padding: 20px; border-radius: 8px;">
		<h2 style="color: #3b82f6;">Agendamento Realizado com Sucesso!</h2>
		<p>Olá, <strong>%s</strong>!</p>
		<p>Seu agendamento foi confirmado. Seguem os detalhes:</p>

		<div style="background: white; padding: 20px; border-radius: 8px; margin: 20px 0;">
			<h3 style="color: #18181b; border-bottom: 2px solid #3b82f6; padding-bottom: 10px;">Detalhes do Agendamento</h3>
			<p><strong>Serviço:</strong> %s</p>
			<p><strong>Data:</strong> %s</p>
			<p><strong>Horário:</strong> %s</p>
		</div>

		<div style="background: white; padding: 20px; border-radius: 8px; margin: 20px 0;">
			<h3 style="color: #18181b; border-bottom: 2px solid #3b82f6; padding-bottom: 10px;">Localização</h3>
			<p><strong>📍 %s</strong></p>
		</div>

		<div style="background: #e0f2fe; padding: 15px; border-radius: 8px; border-left: 4px solid #3b82f6;">
			<p style="margin: 0;"><strong>Importante:</strong> Chegue com 10 minutos de antecedência.</p>
		</div>

		<p style="color: #71717a; font-size: 12px; margin-top: 20px;">
			ID do Agendamento: %s<br>
			BMB ESTÉTICA AUTOMOTIVA - Transformando seu veículo com excelência
		</p>
	</div>`,
		b.CustomerName,
		b.ServiceName,
		b.Date.Format(humanDateFormat),
		b.Time,
		shopAddress,
		b.ID,
	)
	return subject, body
}

// formatOwnerWhatsApp формирует WhatsApp сообщение владельцу
func formatOwnerWhatsApp(b *domain.Booking) string {
	return fmt.Sprintf(`
🚗 *Novo Agendamento - BMB ESTÉTICA AUTOMOTIVA*

*Serviço:* %s
*Data:* %s
*Horário:* %s

*Cliente:* %s
*Telefone:* %s
*Veículo:* %s - %s

ID: %s
`,
		b.ServiceName,
		b.Date.Format(domain.DateFormat),
		b.Time,
		b.CustomerName,
		b.CustomerPhone,
		b.VehicleModel,
		b.VehiclePlate,
		b.ID,
	)
}

// formatCustomerWhatsApp формирует WhatsApp сообщение клиенту
func formatCustomerWhatsApp(b *domain.Booking) string {
	return fmt.Sprintf(`
✅ *Agendamento Confirmado - BMB ESTÉTICA AUTOMOTIVA*

Olá *%s*!

*Serviço:* %s
*Data:* %s
*Horário:* %s

📍 *Local:* %s

Chegue com 10 minutos de antecedência.

ID: %s
`,
		b.CustomerName,
		b.ServiceName,
		b.Date.Format(domain.DateFormat),
		b.Time,
		shopAddress,
		b.ID,
	)
}
