package event

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_JoinRoom(t *testing.T) {
	req := require.New(t)

	p, err := Parse[JoinRoom]([]byte(`{"type":"join-room","roomId":"r1","odiumId":"u1","userName":"Ann","hasAudio":true}`))
	req.NoError(err)
	req.Equal("r1", p.RoomID)
	req.Equal("u1", p.OdiumID)
	req.True(p.HasAudio)
	req.False(p.HasVideo)
}

func TestParse_MissingRoomIDIsRejected(t *testing.T) {
	req := require.New(t)

	_, err := Parse[LeaveRoom]([]byte(`{"type":"leave-room"}`))
	req.ErrorIs(err, ErrBadPayload)
}

func TestParse_MissingTargetIsRejected(t *testing.T) {
	req := require.New(t)

	_, err := Parse[Offer]([]byte(`{"type":"offer","offer":{"sdp":"v=0"}}`))
	req.ErrorIs(err, ErrBadPayload)
}

func TestParse_MalformedJSONIsRejected(t *testing.T) {
	req := require.New(t)

	_, err := Parse[ChatMessage]([]byte(`{"roomId":`))
	req.ErrorIs(err, ErrBadPayload)
}

func TestParse_SignalPayloadStaysOpaque(t *testing.T) {
	req := require.New(t)

	raw := `{"sdp":"v=0\r\no=weird {not-json-shaped} stuff","type":"offer"}`
	p, err := Parse[Offer]([]byte(`{"type":"offer","targetId":"u2","offer":` + raw + `}`))
	req.NoError(err)
	req.JSONEq(raw, string(p.Offer))
}
