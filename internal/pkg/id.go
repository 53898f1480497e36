package pkg

import (
	"encoding/hex"

	"lukechampine.com/frand"
)

const (
	gameIDBytes    = 4
	sessionIDBytes = 16
)

// GenerateGameID - short id players can share to join a game.
func GenerateGameID() string {
	return hex.EncodeToString(frand.Bytes(gameIDBytes))
}

// GenerateNewSessionID - id for a new player session.
func GenerateNewSessionID() string {
	return hex.EncodeToString(frand.Bytes(sessionIDBytes))
}
