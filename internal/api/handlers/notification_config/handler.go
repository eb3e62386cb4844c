package notification_config

import (
	"net/http"

	"github.com/bmbestetica/BMB-BookingService/internal/api/handlers"
	"github.com/bmbestetica/BMB-BookingService/internal/config"
)

// ConfigResponse статус настройки уведомлений, без секретов
type ConfigResponse struct {
	EmailConfigured bool    `json:"email_configured"`
	OwnerEmail      *string `json:"owner_email"`
	SMTPUser        *string `json:"smtp_user"`
	OwnerWhatsApp   string  `json:"owner_whatsapp"`
}

type Handler struct {
	cfg config.NotificationsConfig
}

func NewHandler(cfg config.NotificationsConfig) *Handler {
	return &Handler{cfg: cfg}
}

// Handle GET /api/notification-config
// Конфигурация уведомлений читается только из файла конфигурации,
// запись через API не поддерживается
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp := ConfigResponse{
		EmailConfigured: h.cfg.EmailConfigured(),
		OwnerWhatsApp:   h.cfg.OwnerWhatsApp,
	}

	if h.cfg.OwnerEmail != "" {
		ownerEmail := h.cfg.OwnerEmail
		resp.OwnerEmail = &ownerEmail
	}
	if h.cfg.SMTPUser != "" {
		smtpUser := h.cfg.SMTPUser
		resp.SMTPUser = &smtpUser
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
