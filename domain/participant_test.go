package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSameParticipant(t *testing.T) {
	req := require.New(t)
	req.True(SameParticipant("Bob", "bob"))
	req.True(SameParticipant("Bob", " BOB "))
	req.True(SameParticipant("Олена Коваль", "олена коваль"))
	req.False(SameParticipant("Bob", "Bobby"))
}

func TestDisplayName(t *testing.T) {
	req := require.New(t)
	req.Equal("Anna", DisplayName("Anna", ""))
	req.Equal("Anna Petrenko", DisplayName("Anna", "Petrenko"))
	req.Equal("Anna Petrenko", Requester{FirstName: "Anna", LastName: "Petrenko"}.DisplayName())
}
