package domain

import "strings"

// IntentKind - дискретное намерение игрока за один опрос ввода.
// Сырые клавиши/клики парсятся выше по стеку, ядро их не видит.
type IntentKind uint8

const (
	IntentNone IntentKind = iota
	IntentMove
	IntentWait
	IntentPickup
	IntentUseItem
	IntentDropItem
	IntentDescend
	IntentChooseStat
)

// StatChoice - выбор характеристики при повышении уровня.
type StatChoice uint8

const (
	StatNone StatChoice = iota
	StatConstitution
	StatStrength
	StatAgility
)

// Intent - разобранное намерение вместе с его параметрами.
type Intent struct {
	Kind IntentKind

	// Для IntentMove.
	Dx, Dy int

	// Для IntentUseItem / IntentDropItem: слот инвентаря.
	Slot int

	// Для IntentChooseStat.
	Stat StatChoice
}

var intentNames = map[IntentKind]string{
	IntentNone:       "NONE",
	IntentMove:       "MOVE",
	IntentWait:       "WAIT",
	IntentPickup:     "PICKUP",
	IntentUseItem:    "USE_ITEM",
	IntentDropItem:   "DROP_ITEM",
	IntentDescend:    "DESCEND",
	IntentChooseStat: "CHOOSE_STAT",
}

var intentKinds = func() map[string]IntentKind {
	m := make(map[string]IntentKind, len(intentNames))
	for k, v := range intentNames {
		m[v] = k
	}
	return m
}()

var statNames = map[string]StatChoice{
	"CONSTITUTION": StatConstitution,
	"STRENGTH":     StatStrength,
	"AGILITY":      StatAgility,
}

// ParseStatChoice конвертирует строку протокола в StatChoice.
// Неизвестная строка - StatNone (выбор не засчитан).
func ParseStatChoice(s string) StatChoice {
	if stat, ok := statNames[strings.ToUpper(s)]; ok {
		return stat
	}
	return StatNone
}

// ParseIntentKind конвертирует строку протокола в IntentKind.
func ParseIntentKind(s string) IntentKind {
	if kind, ok := intentKinds[strings.ToUpper(s)]; ok {
		return kind
	}
	return IntentNone
}

// String реализует fmt.Stringer (для логов).
func (k IntentKind) String() string {
	if name, ok := intentNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}
