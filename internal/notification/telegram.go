package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/Konstantinn1179/SERVICE/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// Данные callback-кнопок: роль и действие кодируются префиксом,
// id заявки — суффиксом после последнего подчёркивания.
const (
	CallbackConfirm       = "confirm"
	CallbackCancel        = "cancel"
	CallbackClientConfirm = "client_confirm"
	CallbackClientCancel  = "client_cancel"
)

// TelegramNotifier доставляет уведомления оператору и клиентам.
// При пустом токене бот выключен: все отправки превращаются в debug-логи,
// сам поток записи при этом не ломается.
type TelegramNotifier struct {
	bot         *tgbotapi.BotAPI
	adminChatID int64
	logger      logger.Logger
}

func NewTelegramNotifier(bot *tgbotapi.BotAPI, adminChatID int64, log logger.Logger) *TelegramNotifier {
	if bot == nil {
		log.Warn("telegram bot is not configured, notifications disabled")
	}
	return &TelegramNotifier{
		bot:         bot,
		adminChatID: adminChatID,
		logger:      log,
	}
}

// NotifyBookingCreated шлёт оператору карточку новой заявки с кнопками
// подтверждения и отмены. Кнопки одноразовые: после нажатия сообщение
// редактируется и клавиатура снимается.
func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking) {
	var sb strings.Builder
	sb.WriteString("🔔 <b>Новая заявка!</b>\n\n")
	fmt.Fprintf(&sb, "👤 <b>Имя:</b> %s\n", b.Name)
	fmt.Fprintf(&sb, "📱 <b>Телефон:</b> %s\n", b.Phone)
	fmt.Fprintf(&sb, "🚗 <b>Авто:</b> %s %s", b.CarBrand, b.CarModel)
	if b.BookingDate != "" {
		fmt.Fprintf(&sb, "\n📅 <b>Дата:</b> %s", b.BookingDate)
	}
	if b.BookingTime != "" {
		fmt.Fprintf(&sb, "\n⏰ <b>Время:</b> %s", b.BookingTime)
	}
	reason := b.Reason
	if reason == "" {
		reason = "Не указана"
	}
	fmt.Fprintf(&sb, "\n🔧 <b>Причина:</b> %s", reason)
	if !b.Persisted {
		sb.WriteString("\n\n⚠️ <b>Заявка не сохранена в базе!</b> Запишите данные вручную.")
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Подтвердить", CallbackConfirm+"_"+b.ID),
			tgbotapi.NewInlineKeyboardButtonData("❌ Отменить", CallbackCancel+"_"+b.ID),
		),
	)

	n.send(ctx, n.adminChatID, sb.String(), &keyboard)
}

// NotifyStatusChanged сообщает оператору, что клиент сам сменил статус заявки.
func (n *TelegramNotifier) NotifyStatusChanged(ctx context.Context, b *domain.Booking, origin domain.ActorRole) {
	text := fmt.Sprintf(
		"🔔 <b>Обновление статуса</b>\nКлиент изменил статус заявки #%s.\nНовый статус: %s",
		b.ID, StatusLabel(b.Status, origin),
	)
	n.send(ctx, n.adminChatID, text, nil)
}

// RemindCustomer отправляет клиенту напоминание о завтрашней записи
// с кнопками подтверждения визита.
func (n *TelegramNotifier) RemindCustomer(ctx context.Context, b *domain.Booking) error {
	if n.bot == nil {
		return fmt.Errorf("telegram bot is disabled")
	}
	if b.ChatID == nil {
		return fmt.Errorf("booking %s has no chat id", b.ID)
	}

	t := b.BookingTime
	if t == "" {
		t = "??:??"
	}
	text := fmt.Sprintf(
		"👋 Здравствуйте, %s!\n\nНапоминаем о записи в АКПП-центр на завтра:\n📅 <b>%s</b> в <b>%s</b>\n🚗 %s %s\n\nПожалуйста, подтвердите визит.",
		b.Name, b.BookingDate, t, b.CarBrand, b.CarModel,
	)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Я приеду", CallbackClientConfirm+"_"+b.ID),
			tgbotapi.NewInlineKeyboardButtonData("❌ Отменить", CallbackClientCancel+"_"+b.ID),
		),
	)

	msg := tgbotapi.NewMessage(*b.ChatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = keyboard

	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("send reminder: %w", err)
	}
	return nil
}

// SendReminderDigest шлёт оператору одну сводку по всем завтрашним записям
// с результатом доставки по каждой.
func (n *TelegramNotifier) SendReminderDigest(ctx context.Context, date string, results []domain.ReminderResult) error {
	if n.bot == nil || n.adminChatID == 0 {
		return fmt.Errorf("telegram bot or admin chat is not configured")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📅 <b>Напоминания на завтра (%s):</b>\n", date)
	for i, res := range results {
		b := res.Booking
		t := b.BookingTime
		if t == "" {
			t = "??:??"
		}
		fmt.Fprintf(&sb, "\n%d. ⏰ <b>%s</b> - %s (%s)\n   🚗 %s %s", i+1, t, b.Name, b.Phone, b.CarBrand, b.CarModel)
		switch res.Outcome {
		case domain.ReminderSent:
			sb.WriteString(" (🔔 Отправлено в TG)")
		case domain.ReminderFailed:
			sb.WriteString(" (⚠️ Ошибка отправки)")
		case domain.ReminderNoChannel:
			sb.WriteString(" (⚪ Нет TG)")
		}
	}
	sb.WriteString("\n\n<i>Не забудьте подтвердить визит звонком тем, у кого нет Telegram!</i>")

	msg := tgbotapi.NewMessage(n.adminChatID, sb.String())
	msg.ParseMode = tgbotapi.ModeHTML

	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}
	return nil
}

// EditStatusMessage дописывает статус в исходное сообщение и убирает
// клавиатуру, чтобы кнопки нельзя было нажать повторно.
func (n *TelegramNotifier) EditStatusMessage(chatID int64, messageID int, originalText, statusLine string) error {
	if n.bot == nil {
		return fmt.Errorf("telegram bot is disabled")
	}

	text := fmt.Sprintf("%s\n\n<b>Статус:</b> %s", originalText, statusLine)
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, removedKeyboard())
	edit.ParseMode = tgbotapi.ModeHTML

	if _, err := n.bot.Send(edit); err != nil {
		return fmt.Errorf("edit message: %w", err)
	}
	return nil
}

// AnswerCallback подтверждает нажатие кнопки всплывающим текстом.
func (n *TelegramNotifier) AnswerCallback(callbackID, text string) {
	if n.bot == nil {
		return
	}
	if _, err := n.bot.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		n.logger.Error("failed to answer callback",
			logger.String("callback_id", callbackID),
			logger.String("error", err.Error()),
		)
	}
}

// StatusLabel — человекочитаемая подпись статуса с указанием, кто его сменил.
func StatusLabel(status domain.BookingStatus, origin domain.ActorRole) string {
	switch {
	case status == domain.BookingStatusConfirmed && origin == domain.ActorCustomer:
		return "✅ Подтверждено клиентом"
	case status == domain.BookingStatusCancelled && origin == domain.ActorCustomer:
		return "❌ Отменено клиентом"
	case status == domain.BookingStatusConfirmed:
		return "✅ Подтверждено (Оператор)"
	case status == domain.BookingStatusCancelled:
		return "❌ Отменено (Оператор)"
	case status == domain.BookingStatusCompleted:
		return "🏁 Выполнено"
	default:
		return string(status)
	}
}

// removedKeyboard — разметка без единого ряда: Telegram принимает её как
// снятие клавиатуры, в отличие от ряда нулевой длины.
func removedKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}}
}

func (n *TelegramNotifier) send(ctx context.Context, chatID int64, text string, keyboard *tgbotapi.InlineKeyboardMarkup) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}
	if chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}
	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if keyboard != nil {
		msg.ReplyMarkup = *keyboard
	}

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", chatID),
			logger.String("error", err.Error()),
		)
	}
}
