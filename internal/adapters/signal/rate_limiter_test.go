package signal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestChatRateLimiter_BlocksOverLimit(t *testing.T) {
	req := require.New(t)
	rl := NewChatRateLimiter(2, time.Minute)

	req.True(rl.Allow("c1"))
	req.True(rl.Allow("c1"))
	req.False(rl.Allow("c1"))

	// Another connection has its own budget
	req.True(rl.Allow("c2"))
}

func TestChatRateLimiter_WindowExpires(t *testing.T) {
	req := require.New(t)
	rl := NewChatRateLimiter(1, 10*time.Millisecond)

	req.True(rl.Allow("c1"))
	req.False(rl.Allow("c1"))

	time.Sleep(20 * time.Millisecond)
	req.True(rl.Allow("c1"))
}

func TestChatRateLimiter_Forget(t *testing.T) {
	req := require.New(t)
	rl := NewChatRateLimiter(1, time.Minute)

	req.True(rl.Allow("c1"))
	req.False(rl.Allow("c1"))

	rl.Forget("c1")
	req.True(rl.Allow("c1"))
}
