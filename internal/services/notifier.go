package services

import (
	"fmt"

	"github.com/asaskevich/EventBus"
	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
	"github.com/towaplating/cms/internal/domain/events"
	"github.com/towaplating/cms/internal/logger"
)

// Notifier pushes a short Telegram message to the operator chat when a
// public submission arrives. Delivery failures are logged and dropped;
// the submitter must never see them.
type Notifier struct {
	api    *botApi.BotAPI
	chatID int64
}

func NewNotifier(token string, chatID int64, bus EventBus.Bus) (*Notifier, error) {

	api, err := botApi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	log.Infof("notifier authorized on account %s", api.Self.UserName)

	notifier := &Notifier{api: api, chatID: chatID}

	if err = bus.Subscribe(events.InquiryReceivedTopic, notifier.onInquiryReceived); err != nil {
		return nil, err
	}
	if err = bus.Subscribe(events.ApplicationReceivedTopic, notifier.onApplicationReceived); err != nil {
		return nil, err
	}

	return notifier, nil
}

func (n *Notifier) onInquiryReceived(event events.InquiryReceived) {
	n.send(fmt.Sprintf("新しいお問い合わせ: %s (%s)\n件名: %s",
		event.Inquiry.Name, event.Inquiry.Email, event.Inquiry.Service))
}

func (n *Notifier) onApplicationReceived(event events.ApplicationReceived) {
	n.send(fmt.Sprintf("新しい応募: %s\n職種: %s\n受付番号: %s",
		event.Application.Name, event.Application.Position, event.Application.ReferenceNumber))
}

func (n *Notifier) send(text string) {
	if _, err := n.api.Send(botApi.NewMessage(n.chatID, text)); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeTgApi).
			Errorf("failed to send operator notification: %v", err)
	}
}
