package signal

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/odium-app/signaling/internal/core"
	"github.com/odium-app/signaling/internal/domain"
	"github.com/odium-app/signaling/internal/domain/event"
)

func (ctl *SignalWSController) writePump(ctx context.Context, c *WsSignalConn) {
	ping := time.NewTicker(ctl.Cfg.PingPeriod)
	defer ping.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "signal").Msg("writePump ctx done")
			return
		case <-ping.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
				log.Debug().Err(err).Str("module", "signal").Msg("writePump ping")
				return
			}
		case data, ok := <-c.send:
			if !ok {
				log.Warn().Str("module", "signal").Msg("writePump channel closed")
				return
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second)); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump set deadline")
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump write error")
				return
			}
		}
	}
}

func (ctl *SignalWSController) readPump(ctx context.Context, cancel context.CancelFunc, cid domain.ConnID, c *WsSignalConn) {
	defer func() {
		cancel()
		ctl.Orch.DisconnectCascade(cid)
		ctl.chat.Forget(cid)
		c.Close()
		log.Info().Str("module", "signal").Str("cid", string(cid)).Msg("readPump closed")
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "signal").Str("cid", string(cid)).Msg("readPump ctx done")
			return
		default:
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				// err carries the close reason from the transport.
				log.Info().Err(err).Str("module", "signal").Str("cid", string(cid)).Msg("connection closed")
				return
			}
			ctl.dispatch(cid, c, data)
		}
	}
}

func (ctl *SignalWSController) dispatch(cid domain.ConnID, c *WsSignalConn, data []byte) {
	var env event.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad json")
		ctl.sendError(c, "bad_payload")
		return
	}

	switch env.Type {
	case event.TypeJoinRoom:
		ctl.handleJoin(cid, c, data)
	case event.TypeLeaveRoom:
		ctl.handleLeave(cid, c, data)
	case event.TypeToggleAudio:
		ctl.handleToggleAudio(cid, c, data)
	case event.TypeToggleVideo:
		ctl.handleToggleVideo(cid, c, data)
	case event.TypeRaiseHand:
		ctl.handleRaiseHand(cid, c, data)
	case event.TypeChatMessage:
		ctl.handleChat(cid, c, data)
	case event.TypeOffer:
		ctl.handleOffer(cid, c, data)
	case event.TypeAnswer:
		ctl.handleAnswer(cid, c, data)
	case event.TypeICECandidate:
		ctl.handleCandidate(cid, c, data)
	case event.TypeRequestConnection:
		ctl.handleRequestConnection(cid, c, data)
	default:
		log.Warn().Str("module", "signal").Str("type", env.Type).Msg("unknown signal")
	}
}

func (ctl *SignalWSController) sendJSON(c *WsSignalConn, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("sendJSON marshal")
		return
	}
	_ = c.TrySend(core.Frame(b))
}

func (ctl *SignalWSController) sendError(c *WsSignalConn, reason string) {
	ctl.sendJSON(c, event.Error{Type: event.TypeError, Error: reason})
}
