package signal

import (
	"github.com/rs/zerolog/log"

	"github.com/odium-app/signaling/internal/domain"
	"github.com/odium-app/signaling/internal/domain/event"
)

// The negotiation handlers never look inside the payloads; offers,
// answers and candidates are relayed byte for byte.

func (ctl *SignalWSController) handleOffer(cid domain.ConnID, c *WsSignalConn, data []byte) {
	p, err := event.Parse[event.Offer](data)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad offer payload")
		ctl.sendError(c, "bad_payload")
		return
	}
	log.Info().Str("module", "signal").Str("cid", string(cid)).Str("target", p.TargetID).Msg("offer")
	ctl.Orch.RelayOffer(cid, p.TargetID, p.Offer)
}

func (ctl *SignalWSController) handleAnswer(cid domain.ConnID, c *WsSignalConn, data []byte) {
	p, err := event.Parse[event.Answer](data)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad answer payload")
		ctl.sendError(c, "bad_payload")
		return
	}
	log.Info().Str("module", "signal").Str("cid", string(cid)).Str("target", p.TargetID).Msg("answer")
	ctl.Orch.RelayAnswer(cid, p.TargetID, p.Answer)
}

func (ctl *SignalWSController) handleCandidate(cid domain.ConnID, c *WsSignalConn, data []byte) {
	p, err := event.Parse[event.ICECandidate](data)
	if err != nil {
		ctl.sendError(c, "bad_payload")
		return
	}
	ctl.Orch.RelayCandidate(cid, p.TargetID, p.Candidate)
}

func (ctl *SignalWSController) handleRequestConnection(cid domain.ConnID, c *WsSignalConn, data []byte) {
	p, err := event.Parse[event.RequestConnection](data)
	if err != nil {
		ctl.sendError(c, "bad_payload")
		return
	}
	log.Info().Str("module", "signal").Str("cid", string(cid)).Str("target", p.TargetID).Msg("request-connection")
	ctl.Orch.RequestConnection(cid, p.TargetID, p.RoomID)
}
