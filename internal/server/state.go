package server

import (
	"tombs-server/internal/engine"
	"tombs-server/pkg/api"
)

// Сколько последних сообщений журнала уезжает клиенту с каждым кадром.
const logWindow = 50

// buildResponse собирает полный снимок видимого мира для клиента.
func (c *Client) buildResponse() api.ServerResponse {
	g := c.Game
	visible := g.FOV()

	resp := api.ServerResponse{
		Type:         "UPDATE",
		Phase:        g.Phase.String(),
		DungeonLevel: g.DungeonLevel,
		Grid:         &api.GridMeta{Width: g.World.Width, Height: g.World.Height},
		Inventory:    []api.ItemView{},
	}

	// Тайлы: только исследованные, остальное для клиента не существует
	for y := 0; y < g.World.Height; y++ {
		for x := 0; x < g.World.Width; x++ {
			tile := g.World.Tiles[y][x]
			inFOV := visible.IsVisible(x, y)
			if !tile.Explored && !inFOV {
				continue
			}
			resp.Map = append(resp.Map, api.TileView{
				X:          x,
				Y:          y,
				IsWall:     tile.Blocked,
				IsVisible:  inFOV,
				IsExplored: tile.Explored,
			})
		}
	}

	// Сущности: видимые сейчас, плюс всегда-видимые на исследованных клетках
	for i := 0; i < g.Store.Len(); i++ {
		e := g.Store.At(i)
		inFOV := visible.IsVisible(e.Pos.X, e.Pos.Y)
		if !inFOV && !(e.AlwaysVisible && g.World.At(e.Pos.X, e.Pos.Y).Explored) {
			continue
		}

		view := api.EntityView{Name: e.Name}
		view.Pos.X, view.Pos.Y = e.Pos.X, e.Pos.Y
		view.Render.Glyph = e.Render.Glyph
		view.Render.Color = e.Render.Color
		if e.Fighter != nil {
			view.HP = e.Fighter.HP
			view.MaxHP = e.Fighter.MaxHP
		}
		resp.Entities = append(resp.Entities, view)
	}

	for i := range g.Inventory {
		item := &g.Inventory[i]
		resp.Inventory = append(resp.Inventory, api.ItemView{
			Name:  item.Name,
			Glyph: item.Render.Glyph,
			Color: item.Render.Color,
		})
	}

	player := g.Store.Player()
	if player.Fighter != nil {
		resp.Status = &api.StatusView{
			HP:        player.Fighter.HP,
			MaxHP:     player.Fighter.MaxHP,
			Power:     player.Fighter.Power,
			Defense:   player.Fighter.Defense,
			CharLevel: player.CharLevel,
			XP:        player.Fighter.XP,
			XPToNext:  engine.XPToNextLevel(player.CharLevel),
		}
	}

	for _, msg := range g.Log.Tail(logWindow) {
		resp.Logs = append(resp.Logs, api.LogEntry{Text: msg.Text, Color: msg.Color})
	}

	return resp
}
