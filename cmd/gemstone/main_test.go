package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jason-s-yu/gemstone/internal/config"
)

func init() { logrus.SetLevel(logrus.WarnLevel) }

func TestSimulatePrintsSummary(t *testing.T) {
	cfg := config.Default()
	cfg.Games = 6
	cfg.Workers = 2

	var out bytes.Buffer
	require.NoError(t, simulate(context.Background(), cfg, &out))
	assert.Contains(t, out.String(), "6 games")
	assert.Contains(t, out.String(), "seat 2 greedy")
}

// TestPlayWithExhaustedInput lets the console seat pass every decision.
func TestPlayWithExhaustedInput(t *testing.T) {
	cfg := config.Default()
	cfg.Players = 2

	var out bytes.Buffer
	require.NoError(t, play(context.Background(), cfg, strings.NewReader(""), &out))
	assert.Contains(t, out.String(), "game_end")
	assert.Contains(t, out.String(), "winner: ")
}
