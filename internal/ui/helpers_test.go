package ui

import (
	"testing"

	"github.com/appengine-ltd/planet-aqua/internal/content"
	"github.com/appengine-ltd/planet-aqua/internal/game"
	"go.uber.org/zap/zaptest"
)

func testSequencer(t *testing.T, seed int64) *game.Sequencer {
	t.Helper()
	bundle, err := content.Load(content.Default())
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	seq, err := game.NewSequencer(bundle.Catalog, bundle.Config, seed, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("new sequencer: %v", err)
	}
	if err := seq.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	return seq
}
