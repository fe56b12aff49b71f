package bot

import (
	"context"
	"errors"
	"fmt"

	"github.com/Konstantinn1179/SERVICE/internal/domain"
	"github.com/Konstantinn1179/SERVICE/internal/notification"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

type StatusApplier interface {
	Apply(ctx context.Context, cmd domain.StatusCommand) (*domain.Booking, error)
}

// Listener принимает входящие обновления Telegram: команды /start, /admin,
// /myid и нажатия inline-кнопок. Кнопочные действия превращаются в StatusCommand
// и уходят в единую точку смены статуса.
type Listener struct {
	bot         *tgbotapi.BotAPI
	dispatcher  *notification.TelegramNotifier
	status      StatusApplier
	adminChatID int64
	webAppURL   string
	logger      logger.Logger
}

func NewListener(
	botAPI *tgbotapi.BotAPI,
	dispatcher *notification.TelegramNotifier,
	status StatusApplier,
	adminChatID int64,
	webAppURL string,
	log logger.Logger,
) *Listener {
	return &Listener{
		bot:         botAPI,
		dispatcher:  dispatcher,
		status:      status,
		adminChatID: adminChatID,
		webAppURL:   webAppURL,
		logger:      log,
	}
}

func (l *Listener) Run(ctx context.Context) {
	if l.bot == nil {
		l.logger.Info("telegram listener disabled (no bot token)")
		return
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := l.bot.GetUpdatesChan(u)

	l.logger.Info("telegram listener started")

	for {
		select {
		case <-ctx.Done():
			l.bot.StopReceivingUpdates()
			l.logger.Info("telegram listener stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			l.handle(ctx, update)
		}
	}
}

func (l *Listener) handle(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		l.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil && update.Message.IsCommand():
		l.handleCommand(update.Message)
	}
}

func (l *Listener) handleCommand(msg *tgbotapi.Message) {
	reply, ok := l.commandReply(msg.Chat.ID, msg.Command())
	if !ok {
		return
	}
	l.reply(reply)
}

// commandReply строит ответ на команду бота. /admin открывает календарь
// оператора и доступен только из admin-чата.
func (l *Listener) commandReply(chatID int64, command string) (tgbotapi.MessageConfig, bool) {
	switch command {
	case "start":
		reply := tgbotapi.NewMessage(chatID, "Добро пожаловать в АКПП-центр! 🔧\nНажмите кнопку ниже, чтобы начать запись.")
		if l.webAppURL != "" {
			reply.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
				tgbotapi.NewInlineKeyboardRow(
					tgbotapi.NewInlineKeyboardButtonURL("📱 Открыть приложение", l.webAppURL),
				),
			)
		}
		return reply, true
	case "admin":
		if l.adminChatID != 0 && chatID != l.adminChatID {
			return tgbotapi.NewMessage(chatID, "⛔ Доступ запрещен."), true
		}
		reply := tgbotapi.NewMessage(chatID, "📅 Панель администратора")
		if l.webAppURL != "" {
			reply.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
				tgbotapi.NewInlineKeyboardRow(
					tgbotapi.NewInlineKeyboardButtonURL("🗓 Открыть Календарь", l.webAppURL+"/admin/calendar"),
				),
			)
		}
		return reply, true
	case "myid":
		return tgbotapi.NewMessage(chatID, fmt.Sprintf("Ваш ID: %d", chatID)), true
	}

	return tgbotapi.MessageConfig{}, false
}

// handleCallback обрабатывает нажатие кнопки. Нераспознанный payload
// подтверждается общей ошибкой и не меняет состояние.
func (l *Listener) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	cmd, err := ParseCallback(query.Data)
	if err != nil {
		l.logger.Warn("unrecognized callback payload",
			logger.String("data", query.Data),
		)
		l.dispatcher.AnswerCallback(query.ID, "Ошибка: действие не распознано.")
		return
	}

	booking, err := l.status.Apply(ctx, cmd)
	if err != nil {
		l.logger.Error("callback status change failed",
			logger.String("booking_id", cmd.BookingID),
			logger.String("error", err.Error()),
		)
		switch {
		case errors.Is(err, domain.ErrBookingNotFound):
			l.dispatcher.AnswerCallback(query.ID, "Ошибка: заявка не найдена.")
		case errors.Is(err, domain.ErrStatusTransition):
			l.dispatcher.AnswerCallback(query.ID, "Статус заявки уже изменён.")
		default:
			l.dispatcher.AnswerCallback(query.ID, "Не удалось обновить заявку.")
		}
		return
	}

	label := notification.StatusLabel(booking.Status, cmd.Origin)

	if query.Message != nil {
		if err := l.dispatcher.EditStatusMessage(
			query.Message.Chat.ID, query.Message.MessageID, query.Message.Text, label,
		); err != nil {
			l.logger.Error("failed to edit status message",
				logger.String("booking_id", booking.ID),
				logger.String("error", err.Error()),
			)
		}
	}

	l.dispatcher.AnswerCallback(query.ID, l.callbackReply(cmd, label))
}

func (l *Listener) callbackReply(cmd domain.StatusCommand, label string) string {
	if cmd.Origin == domain.ActorCustomer {
		if cmd.Target == domain.BookingStatusConfirmed {
			return "Спасибо! Ждем вас в сервисе."
		}
		return "Заявка отменена. Вы можете записаться на другое время."
	}
	return "Заявка: " + label
}

func (l *Listener) reply(msg tgbotapi.MessageConfig) {
	if _, err := l.bot.Send(msg); err != nil {
		l.logger.Error("failed to send bot reply",
			logger.Int64("chat_id", msg.ChatID),
			logger.String("error", err.Error()),
		)
	}
}
