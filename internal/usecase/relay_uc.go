package usecase

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"telegram-relay-service/internal/config"
	"telegram-relay-service/internal/domain"
	"telegram-relay-service/pkg/telegram"
	"telegram-relay-service/pkg/template"
	"telegram-relay-service/pkg/whatsapp"
	"telegram-relay-service/pkg/xerrors"
)

type RelayUsecase struct {
	cfg    config.AppConfig
	tg     *telegram.TelegramClient
	tmpl   *template.TemplateService
	logger *zap.Logger
}

func NewRelayUsecase(cfg config.AppConfig, tg *telegram.TelegramClient, tmpl *template.TemplateService, logger *zap.Logger) *RelayUsecase {
	return &RelayUsecase{
		cfg:    cfg,
		tg:     tg,
		tmpl:   tmpl,
		logger: logger,
	}
}

// Relay runs the validate -> normalize -> render -> dispatch -> classify
// pipeline for one submission. Exactly one delivery attempt is made; a
// rejection by Telegram comes back as Delivered=false, not as an error.
func (uc *RelayUsecase) Relay(ctx context.Context, sub *domain.Submission) (*domain.RelayResult, error) {
	if err := sub.Validate(); err != nil {
		return nil, err
	}
	if uc.cfg.BotToken == "" || uc.cfg.ChatID == "" {
		return nil, xerrors.ErrMissingConfig
	}

	phone := whatsapp.NormalizePhone(sub.User.Whatsapp)
	link := whatsapp.Link(phone)
	now := time.Now()

	text, err := uc.tmpl.Notification(sub, phone, link, now)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("dispatching notification",
		zap.String("type", sub.Type),
		zap.String("customer", sub.User.Name),
		zap.String("phone", phone),
		zap.Int("message_length", utf8.RuneCountInString(text)))

	res, err := uc.tg.SendMessage(ctx, uc.cfg.ChatID, text)
	if err != nil {
		return nil, err
	}

	result := &domain.RelayResult{
		Phone:         phone,
		MessageLength: utf8.RuneCountInString(text),
		Timestamp:     now,
	}

	if res.OK {
		uc.logger.Info("notification delivered",
			zap.Int64("message_id", res.MessageID))
		result.Delivered = true
		result.MessageID = res.MessageID
		result.WhatsappLink = whatsapp.PrefilledLink(phone, uc.tmpl.Welcome(sub))
		return result, nil
	}

	// The submission still counts as received. Keep the full context in the
	// log so staff can recover the order manually.
	uc.logger.Error("telegram rejected notification",
		zap.String("error_id", uuid.NewString()),
		zap.String("description", res.Description),
		zap.String("type", sub.Type),
		zap.String("customer", sub.User.Name),
		zap.String("whatsapp", sub.User.Whatsapp))

	result.ErrorDescription = res.Description
	result.WhatsappLink = link
	return result, nil
}
