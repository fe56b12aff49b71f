package domain

// ReminderOutcome — результат попытки напомнить клиенту о завтрашней записи.
type ReminderOutcome string

const (
	ReminderSent      ReminderOutcome = "sent"
	ReminderFailed    ReminderOutcome = "failed"
	ReminderNoChannel ReminderOutcome = "no_channel"
)

// ReminderResult попадает в сводку оператору: одна строка на заявку.
type ReminderResult struct {
	Booking *Booking
	Outcome ReminderOutcome
}
