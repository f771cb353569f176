package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/tinychess-go/internal/chess"
	"github.com/lgbarn/tinychess-go/internal/errors"
)

// PlayerKind says who makes the moves for one colour.
type PlayerKind string

const (
	Human    PlayerKind = "human"
	Computer PlayerKind = "computer"
)

// ParsePlayerKind parses "human" or "computer" (any case).
func ParsePlayerKind(s string) (PlayerKind, error) {
	switch kind := PlayerKind(strings.ToLower(strings.TrimSpace(s))); kind {
	case Human, Computer:
		return kind, nil
	}
	return "", fmt.Errorf("player %q: %w", s, errors.ErrInvalidConfig)
}

// PlayersConfig holds the player kind for each colour.
type PlayersConfig struct {
	White PlayerKind `validate:"required,oneof=human computer"`
	Black PlayerKind `validate:"required,oneof=human computer"`
}

// NewPlayersConfig creates a PlayersConfig for a human playing White
// against the computer.
func NewPlayersConfig() *PlayersConfig {
	return &PlayersConfig{
		White: Human,
		Black: Computer,
	}
}

// Kind returns the player kind for colour.
func (p PlayersConfig) Kind(colour chess.Colour) PlayerKind {
	if colour == chess.White {
		return p.White
	}
	return p.Black
}

// Mode describes the pairing, e.g. "human-vs-computer".
func (p PlayersConfig) Mode() string {
	return string(p.White) + "-vs-" + string(p.Black)
}

// Unattended reports whether no human plays either side.
func (p PlayersConfig) Unattended() bool {
	return p.White == Computer && p.Black == Computer
}
