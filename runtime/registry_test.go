package runtime

import (
	"daily-pick/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	_, ok := registry.Inbox("42")
	req.False(ok)

	first := make(chan domain.Command, 1)
	req.True(registry.Register("42", first))
	req.False(registry.Register("42", make(chan domain.Command, 1)))
	req.True(registry.Register("-7", make(chan domain.Command, 1)))

	inbox, ok := registry.Inbox("42")
	req.True(ok)
	req.Equal(first, inbox)
	req.Equal([]domain.RoomID{"-7", "42"}, registry.Rooms())
}
