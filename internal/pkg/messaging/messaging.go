package messaging

import (
	"context"
	"fmt"
	"strings"
	"time"

	httpclient "github.com/piresc/freightdesk/internal/pkg/http"
	"github.com/piresc/freightdesk/internal/pkg/logger"
	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/piresc/freightdesk/internal/utils"
)

const (
	ProviderWhatsApp = "whatsapp"
	ProviderSMS      = "sms"
	ProviderLog      = "log"
)

// Sender delivers a text message to a phone number
type Sender interface {
	Send(ctx context.Context, phone, message string) error
}

// New builds the sender selected by cfg.Provider
func New(cfg models.MessagingConfig, l *logger.ZapLogger) (Sender, error) {
	switch strings.ToLower(cfg.Provider) {
	case ProviderWhatsApp, ProviderSMS:
		if cfg.URL == "" {
			return nil, fmt.Errorf("messaging URL is required for provider %q", cfg.Provider)
		}
		return NewGatewaySender(cfg, l), nil
	case ProviderLog, "":
		return NewLogSender(l), nil
	default:
		return nil, fmt.Errorf("unknown messaging provider %q", cfg.Provider)
	}
}

// gatewayMessage is the body posted to the gateway
type gatewayMessage struct {
	Channel string `json:"channel"`
	From    string `json:"from,omitempty"`
	To      string `json:"to"`
	Text    string `json:"text"`
}

// GatewaySender posts messages to a WhatsApp or SMS HTTP gateway
type GatewaySender struct {
	client  *httpclient.Client
	channel string
	from    string
}

// NewGatewaySender creates a gateway sender
func NewGatewaySender(cfg models.MessagingConfig, l *logger.ZapLogger) *GatewaySender {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	headers := map[string]string{}
	if cfg.Token != "" {
		headers["Authorization"] = "Bearer " + cfg.Token
	}

	return &GatewaySender{
		client: httpclient.NewClient(httpclient.Config{
			BaseURL: cfg.URL,
			Timeout: timeout,
			Headers: headers,
		}, l),
		channel: strings.ToLower(cfg.Provider),
		from:    cfg.Sender,
	}
}

// Send normalises phone to E.164 digits and posts the message
func (s *GatewaySender) Send(ctx context.Context, phone, message string) error {
	to, err := utils.NormalizePhone(phone)
	if err != nil {
		return models.NewValidationError("invalid phone number: %v", err)
	}

	err = s.client.PostJSON(ctx, "", gatewayMessage{
		Channel: s.channel,
		From:    s.from,
		To:      to,
		Text:    message,
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to send %s message: %w", s.channel, err)
	}

	logger.InfoCtx(ctx, "Message sent",
		logger.String("channel", s.channel),
		logger.String("to", utils.MaskPhoneNumber(to)))
	return nil
}

// LogSender writes messages to the log instead of delivering them
type LogSender struct {
	logger *logger.ZapLogger
}

// NewLogSender creates a log sender
func NewLogSender(l *logger.ZapLogger) *LogSender {
	if l == nil {
		l = logger.NewNopLogger()
	}
	return &LogSender{logger: l}
}

// Send logs the message
func (s *LogSender) Send(_ context.Context, phone, message string) error {
	s.logger.Info("Message not delivered, log sender active",
		logger.String("to", phone),
		logger.String("message", message))
	return nil
}
