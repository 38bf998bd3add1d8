package websocket

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/ashwinpillai/hirehub_backend/middleware"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS policy is enforced at the echo layer.
		return true
	},
}

// Handler upgrades an authenticated request to a WebSocket connection and
// keeps it registered with the hub until the peer goes away. Browsers cannot
// set an Authorization header on a WebSocket handshake, so the JWT arrives as
// a query parameter instead.
func Handler(hub *Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.QueryParam("token")
		if token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
		}

		claims, err := middleware.ParseToken(token)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}

		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			log.Printf("WebSocket upgrade failed for employee %d: %v", claims.EmployeeID, err)
			return err
		}

		client := &Client{
			EmployeeID: claims.EmployeeID,
			Conn:       conn,
		}
		hub.Register(client)

		// Drain reads so ping/pong and close frames are processed; the hub
		// only ever writes.
		go func() {
			defer hub.Unregister(client)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		return nil
	}
}
