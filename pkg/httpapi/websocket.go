package httpapi

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"github.com/arclab-robotics/gridsearch/pkg/httpapi/controllers"
)

// streamHandler upgrades GET /v1/sessions/{id}/stream to a WebSocket and
// pushes every ExpandedNodeEvent the session's diagnostics channel
// produces to the client as a JSON text frame, until the channel closes
// or the client disconnects.
func streamHandler(svc controllers.PlanningService, log *zap.Logger) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		sessionID := ps.ByName("id")

		events, unsubscribe, err := svc.Subscribe(sessionID)
		if err != nil {
			controllers.NotFoundResponse(w, sessionID)
			return
		}
		defer unsubscribe()

		conn, _, _, err := ws.UpgradeHTTP(r, w)
		if err != nil {
			log.Error("websocket upgrade failed", zap.Error(err), zap.String("session", sessionID))
			return
		}
		defer conn.Close()

		for event := range events {
			if err := writeEvent(conn, event); err != nil {
				log.Info("websocket client disconnected", zap.String("session", sessionID), zap.Error(err))
				return
			}
		}
	}
}

func writeEvent(conn net.Conn, event controllers.ExpandedNodeEvent) error {
	ww := wsutil.NewWriter(conn, ws.StateServerSide, ws.OpText)
	encoder := json.NewEncoder(ww)
	if err := encoder.Encode(event); err != nil {
		return err
	}
	return ww.Flush()
}
