package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту
// после каждой обработанной команды: полный "снимок" мира, видимого игроку.
type ServerResponse struct {
	// Type тип сообщения. На данный момент всегда "UPDATE".
	Type string `json:"type"`

	// Phase режим движка: AWAITING_INPUT, LEVEL_UP или GAME_OVER.
	// В LEVEL_UP сервер принимает только CHOOSE_STAT.
	Phase string `json:"phase"`

	// DungeonLevel текущая глубина подземелья (1 - первый уровень).
	DungeonLevel int `json:"dungeonLevel"`

	// Grid метаданные о размере всей карты.
	Grid *GridMeta `json:"grid,omitempty"`

	// Map срез всех видимых и/или исследованных тайлов.
	// Неисследованные тайлы не передаются вовсе.
	Map []TileView `json:"map,omitempty"`

	// Entities срез всех видимых сущностей.
	Entities []EntityView `json:"entities,omitempty"`

	// Inventory инвентарь игрока, индекс в срезе = слот для USE_ITEM/DROP_ITEM.
	Inventory []ItemView `json:"inventory"`

	// Status характеристики игрока для панели статов.
	Status *StatusView `json:"status,omitempty"`

	// Logs срез новых сообщений, сгенерированных с прошлого хода.
	Logs []LogEntry `json:"logs,omitempty"`
}

// GridMeta содержит общие размеры карты, чтобы клиент знал,
// какую сетку для рендеринга нужно подготовить.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileView это DTO для одного тайла карты.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	// IsWall true, если тайл является непроходимым препятствием.
	IsWall bool `json:"isWall"`

	// IsVisible true, если тайл находится в текущем поле зрения. Рендерится ярко.
	IsVisible bool `json:"isVisible"`

	// IsExplored true, если тайл когда-либо был увиден. Используется для "тумана войны".
	// Если IsVisible=false, а IsExplored=true, рендерится тускло.
	IsExplored bool `json:"isExplored"`
}

// EntityView это DTO для игровой сущности.
type EntityView struct {
	Name string `json:"name"`

	Pos struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"pos"`

	Render struct {
		Glyph string `json:"glyph"`
		Color string `json:"color"`
	} `json:"render"`

	// Hp/MaxHp присутствуют только у живых бойцов (для полосок здоровья).
	HP    int `json:"hp,omitempty"`
	MaxHP int `json:"maxHp,omitempty"`
}

// ItemView представляет предмет инвентаря для клиента.
type ItemView struct {
	Name  string `json:"name"`
	Glyph string `json:"glyph"`
	Color string `json:"color"`
}

// StatusView это DTO панели характеристик игрока.
type StatusView struct {
	HP        int `json:"hp"`
	MaxHP     int `json:"maxHp"`
	Power     int `json:"power"`
	Defense   int `json:"defense"`
	CharLevel int `json:"charLevel"`
	XP        int `json:"xp"`
	XPToNext  int `json:"xpToNext"`
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token идентификатор сейва игрока. Обязателен только в первом
	// сообщении "LOGIN"; пустой токен означает новую игру.
	Token string `json:"token,omitempty"`

	// Action название действия: MOVE, WAIT, PICKUP, USE_ITEM, DROP_ITEM,
	// DESCEND, CHOOSE_STAT.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// DirectionPayload используется для MOVE.
type DirectionPayload struct {
	Dx int `json:"dx"` // Смещение по X (-1, 0, 1)
	Dy int `json:"dy"` // Смещение по Y (-1, 0, 1)
}

// UseItemPayload используется для USE_ITEM. Target обязателен только для
// прицельных предметов (огненный шар): сервер не блокируется в ожидании
// прицеливания, клиент присылает цель той же командой.
type UseItemPayload struct {
	Slot   int              `json:"slot"`
	Target *PositionPayload `json:"target,omitempty"`
}

// SlotPayload используется для DROP_ITEM.
type SlotPayload struct {
	Slot int `json:"slot"`
}

// PositionPayload - точка на карте.
type PositionPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// StatPayload используется для CHOOSE_STAT при повышении уровня.
// Stat: CONSTITUTION, STRENGTH или AGILITY.
type StatPayload struct {
	Stat string `json:"stat"`
}
