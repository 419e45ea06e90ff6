package controllers

import (
	"net/http"
	"time"

	"github.com/gloverronan/HealthOS/config"
	"github.com/gloverronan/HealthOS/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type RealtimeController struct {
	RT *services.RealtimeHub
}

func NewRealtimeController(rt *services.RealtimeHub) *RealtimeController {
	return &RealtimeController{RT: rt}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind a proxy if needed
}

// SyncWS upgrades to a websocket and streams collection snapshots. The
// connection opens with one snapshot per log collection so the client
// can render before any mutation happens.
func (rc *RealtimeController) SyncWS(c *gin.Context) {
	uid := c.GetUint("userID")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &services.WSClient{UserID: uid, Conn: conn}
	rc.RT.Register(cl)

	for _, collection := range []string{
		services.CollectionFood,
		services.CollectionGym,
		services.CollectionCardio,
	} {
		docs, err := services.CollectionSnapshot(config.DB, uid, collection)
		if err != nil {
			rc.RT.Unregister(cl)
			return
		}
		if err := conn.WriteJSON(services.SnapshotMessage{
			Kind:       "snapshot",
			Collection: collection,
			Docs:       docs,
		}); err != nil {
			rc.RT.Unregister(cl)
			return
		}
	}

	// keep connections alive through proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				rc.RT.Unregister(cl)
				return
			}
		}
	}()

	// read loop ends on client close/error
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			rc.RT.Unregister(cl)
			return
		}
	}
}
