package domain

// Цвета сообщений. Рендерер волен трактовать их как угодно,
// ядро лишь помечает серьезность/окраску события.
const (
	ColorWhite       = "#FFFFFF"
	ColorRed         = "#DC2626"
	ColorDarkRed     = "#7F1D1D"
	ColorGreen       = "#22C55E"
	ColorYellow      = "#EAB308"
	ColorOrange      = "#F97316"
	ColorLightBlue   = "#60A5FA"
	ColorLightCyan   = "#67E8F9"
	ColorLightViolet = "#C4B5FD"
	ColorViolet      = "#8B5CF6"
)

// Message - одна строка повествования с цветом-серьезностью.
type Message struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

// MessageLog - упорядоченный журнал событий, новые в конце.
type MessageLog struct {
	Messages []Message `json:"messages"`
}

func (l *MessageLog) Add(text, color string) {
	l.Messages = append(l.Messages, Message{Text: text, Color: color})
}

// Tail возвращает последние n сообщений (для панели рендерера).
func (l *MessageLog) Tail(n int) []Message {
	if len(l.Messages) <= n {
		return l.Messages
	}
	return l.Messages[len(l.Messages)-n:]
}
