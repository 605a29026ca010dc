package auth

import (
	"context"

	"github.com/piresc/freightdesk/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/freightdesk/services/auth OTPStore,CodeSender

// OTPStore keeps pending password-reset codes
type OTPStore interface {
	Put(ctx context.Context, role models.Role, phone string, code string) error
	Consume(ctx context.Context, role models.Role, phone string, code string) (bool, error)
}

// CodeSender delivers a one-time code to a phone (WhatsApp or SMS)
type CodeSender interface {
	Send(ctx context.Context, phone string, message string) error
}
