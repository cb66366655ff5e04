package signal

import (
	"github.com/rs/zerolog/log"

	"github.com/odium-app/signaling/internal/domain"
	"github.com/odium-app/signaling/internal/domain/event"
)

func (ctl *SignalWSController) handleJoin(cid domain.ConnID, c *WsSignalConn, data []byte) {
	p, err := event.Parse[event.JoinRoom](data)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad join payload")
		ctl.sendError(c, "bad_payload")
		return
	}
	log.Info().Str("module", "signal").Str("cid", string(cid)).Str("room", p.RoomID).Str("odium_id", p.OdiumID).Msg("join-room")
	ctl.Orch.Join(cid, domain.RoomID(p.RoomID), domain.Profile{
		OdiumID:   domain.UserID(p.OdiumID),
		UserName:  p.UserName,
		AvatarURL: p.AvatarURL,
		HasVideo:  p.HasVideo,
		HasAudio:  p.HasAudio,
	})
}

func (ctl *SignalWSController) handleLeave(cid domain.ConnID, c *WsSignalConn, data []byte) {
	p, err := event.Parse[event.LeaveRoom](data)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad leave payload")
		ctl.sendError(c, "bad_payload")
		return
	}
	log.Info().Str("module", "signal").Str("cid", string(cid)).Str("room", p.RoomID).Msg("leave-room")
	ctl.Orch.Leave(domain.RoomID(p.RoomID), cid)
}

func (ctl *SignalWSController) handleToggleAudio(cid domain.ConnID, c *WsSignalConn, data []byte) {
	p, err := event.Parse[event.ToggleAudio](data)
	if err != nil {
		ctl.sendError(c, "bad_payload")
		return
	}
	ctl.Orch.ToggleAudio(cid, domain.RoomID(p.RoomID), p.IsMuted)
}

func (ctl *SignalWSController) handleToggleVideo(cid domain.ConnID, c *WsSignalConn, data []byte) {
	p, err := event.Parse[event.ToggleVideo](data)
	if err != nil {
		ctl.sendError(c, "bad_payload")
		return
	}
	ctl.Orch.ToggleVideo(cid, domain.RoomID(p.RoomID), p.IsEnabled)
}

func (ctl *SignalWSController) handleRaiseHand(cid domain.ConnID, c *WsSignalConn, data []byte) {
	p, err := event.Parse[event.RaiseHand](data)
	if err != nil {
		ctl.sendError(c, "bad_payload")
		return
	}
	ctl.Orch.RaiseHand(cid, domain.RoomID(p.RoomID))
}

func (ctl *SignalWSController) handleChat(cid domain.ConnID, c *WsSignalConn, data []byte) {
	p, err := event.Parse[event.ChatMessage](data)
	if err != nil {
		ctl.sendError(c, "bad_payload")
		return
	}
	if len(p.Message) > ctl.Cfg.MaxChatBytes {
		ctl.sendError(c, "message_too_long")
		return
	}
	if !ctl.chat.Allow(cid) {
		ctl.sendError(c, "rate_limited")
		return
	}
	ctl.Orch.Chat(cid, domain.RoomID(p.RoomID), p.Message)
}
