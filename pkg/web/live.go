// Package web - websocket live log feed.
package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/StreamBotDev/StreamBotGo/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	liveWriteTimeout = 10 * time.Second
	liveBufferSize   = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// liveLogsHandler upgrades the connection and streams log lines as they are
// produced. Slow consumers lose lines instead of blocking the logger.
func liveLogsHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn(fmt.Sprintf("Error upgrading live log connection: %v", err), "WebServer")
		return
	}

	lines := make(chan string, liveBufferSize)
	unsubscribe := logger.Subscribe(func(line string) {
		select {
		case lines <- line:
		default:
		}
	})

	done := make(chan struct{})

	// Reader loop, only to detect the client closing
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	go func() {
		defer unsubscribe()
		defer conn.Close()

		for {
			select {
			case line := <-lines:
				conn.SetWriteDeadline(time.Now().Add(liveWriteTimeout))
				if err := conn.WriteMessage(websocket.TextMessage, []byte(line)); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()
}
