// Package server - WebSocket-фасад над игровым движком: одна сессия на
// соединение, сейв на диске или в Postgres между соединениями.
package server

import (
	"encoding/json"
	"net/http"
	_ "net/http/pprof" // Profiling

	"tombs-server/internal/storage"
	"tombs-server/internal/version"
	"tombs-server/pkg/dungeon"
	"tombs-server/pkg/logger"
)

type Server struct {
	Saves      storage.Store
	DungeonCfg dungeon.Config
	Seed       int64 // 0 - случайное зерно на каждую новую игру
	Port       string
}

func New(saves storage.Store, cfg dungeon.Config, seed int64, port string) *Server {
	return &Server{
		Saves:      saves,
		DungeonCfg: cfg,
		Seed:       seed,
		Port:       port,
	}
}

// Run запускает HTTP сервер
func (s *Server) Run() error {
	mux := http.DefaultServeMux

	// Регистрируем роуты
	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))

	logger.Log.Infof("💀 Tombs of the Ancient Kings running on :%s", s.Port)
	return http.ListenAndServe(":"+s.Port, mux)
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с фронтенда
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

// handleWS обрабатывает подключение по WebSocket
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error("Upgrade error:", err)
		return
	}

	client := NewClient(s, conn)

	// Запускаем пампы
	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(version.Info())
}
