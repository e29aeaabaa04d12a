package server

import (
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"time"

	"tombs-server/internal/domain"
	"tombs-server/internal/engine"
	"tombs-server/internal/storage"
	"tombs-server/pkg/api"
	"tombs-server/pkg/fov"
	"tombs-server/pkg/logger"
	"tombs-server/pkg/utils"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между WebSocket и одной игровой сессией. Сессия живет
// ровно столько, сколько соединение; между соединениями ее состояние лежит
// в хранилище сейвов под токеном игрока.
type Client struct {
	Server *Server
	Conn   *websocket.Conn
	Send   chan api.ServerResponse

	Token string
	Game  *engine.Game
}

func NewClient(srv *Server, conn *websocket.Conn) *Client {
	return &Client{
		Server: srv,
		Conn:   conn,
		Send:   make(chan api.ServerResponse, 16),
	}
}

func newFOV(w *domain.World) domain.FOV {
	return fov.New(w)
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	defer func() {
		c.save()
		close(c.Send)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection")
		}
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	// 1. HANDSHAKE (LOGIN)
	var loginCmd api.ClientCommand
	if err := c.Conn.ReadJSON(&loginCmd); err != nil {
		logger.Log.Warn("Handshake failed")
		return
	}

	c.Token = loginCmd.Token
	if c.Token == "" {
		c.Token = utils.NewToken()
	}

	// 2. ЗАГРУЗКА ИЛИ НОВАЯ ИГРА
	if err := c.loadOrCreate(); err != nil {
		logger.Log.WithError(err).Error("Failed to start a session")
		return
	}

	logger.Log.WithFields(logrus.Fields{
		"token":         c.Token,
		"dungeon_level": c.Game.DungeonLevel,
	}).Info("Client logged in")

	// Первая отрисовка
	c.Send <- c.buildResponse()

	// 3. ЦИКЛ ЧТЕНИЯ КОМАНД
	for {
		var cmd api.ClientCommand
		err := c.Conn.ReadJSON(&cmd)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Errorf("WS Error: %v", err)
			}
			break
		}
		c.handleCommand(cmd)
		c.Send <- c.buildResponse()
	}
}

// loadOrCreate поднимает сессию из сейва либо заводит новую. Нечитаемый
// сейв приравнивается к его отсутствию: токен не должен быть заперт
// навсегда из-за битого блоба. Жесткой ошибкой остается только отказ
// самого бэкенда (например, недоступная база).
func (c *Client) loadOrCreate() error {
	data, err := c.Server.Saves.Get(c.Token)
	switch {
	case err == nil:
		snap, derr := storage.Decode(data)
		if derr == nil {
			c.Game = engine.RestoreGame(snap, c.Server.DungeonCfg, newFOV)
			return nil
		}
		logger.Log.WithError(derr).WithField("token", c.Token).Warn("Save is unreadable, starting a new game")

	case errors.Is(err, storage.ErrNotFound):
		// Новый игрок

	default:
		return err
	}

	return c.newGame()
}

func (c *Client) newGame() error {
	seed := c.Server.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	game, err := engine.NewGame(seed, c.Server.DungeonCfg, newFOV)
	if err != nil {
		return err
	}
	c.Game = game
	return nil
}

// save сериализует сессию под токеном игрока. Зовется на разрыве соединения.
func (c *Client) save() {
	if c.Game == nil {
		return
	}
	data, err := storage.Encode(c.Game.Snapshot())
	if err != nil {
		logger.Log.WithError(err).Error("Failed to encode save")
		return
	}
	if err := c.Server.Saves.Put(c.Token, data); err != nil {
		logger.Log.WithError(err).Error("Failed to persist save")
		return
	}
	logger.Log.WithField("token", c.Token).Info("Session saved")
}

// targetSelector отдает заклинанию цель, присланную в той же команде.
// Отсутствие цели равносильно отмене прицеливания.
type targetSelector struct {
	target *api.PositionPayload
}

func (s targetSelector) SelectTile(maxRange float64) (domain.Position, bool) {
	if s.target == nil {
		return domain.Position{}, false
	}
	return domain.Position{X: s.target.X, Y: s.target.Y}, true
}

// handleCommand транслирует команду протокола в намерение движка.
func (c *Client) handleCommand(cmd api.ClientCommand) {
	intent := domain.Intent{Kind: domain.ParseIntentKind(cmd.Action)}
	sel := targetSelector{}

	switch intent.Kind {
	case domain.IntentMove:
		var p api.DirectionPayload
		if err := json.Unmarshal(cmd.Payload, &p); err != nil || p.Validate() != nil {
			return
		}
		intent.Dx, intent.Dy = p.Dx, p.Dy

	case domain.IntentUseItem:
		var p api.UseItemPayload
		if err := json.Unmarshal(cmd.Payload, &p); err != nil || p.Validate() != nil {
			return
		}
		intent.Slot = p.Slot
		sel.target = p.Target

	case domain.IntentDropItem:
		var p api.SlotPayload
		if err := json.Unmarshal(cmd.Payload, &p); err != nil || p.Validate() != nil {
			return
		}
		intent.Slot = p.Slot

	case domain.IntentChooseStat:
		var p api.StatPayload
		if err := json.Unmarshal(cmd.Payload, &p); err != nil || p.Validate() != nil {
			return
		}
		intent.Stat = domain.ParseStatChoice(p.Stat)

	case domain.IntentNone:
		return
	}

	if err := c.Game.Step(intent, sel); err != nil {
		logger.Log.WithError(err).WithField("action", intent.Kind).Error("Step failed")
	}
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
