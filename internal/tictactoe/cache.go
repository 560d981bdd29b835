package tictactoe

import (
	"sync"

	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
)

// LineSource hands out the winning lines for a difficulty.
type LineSource interface {
	Lines(difficulty entity.Difficulty) (LineSet, error)
}

// LineCache computes each difficulty's LineSet once and serves it afterwards. Safe for concurrent use.
type LineCache struct {
	strategy Strategy

	mu   sync.Mutex
	sets map[entity.Difficulty]LineSet
}

func NewLineCache(strategy Strategy) *LineCache {
	return &LineCache{
		strategy: strategy,
		sets:     make(map[entity.Difficulty]LineSet),
	}
}

func (that *LineCache) Lines(difficulty entity.Difficulty) (LineSet, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if lineSet, ok := that.sets[difficulty]; ok {
		return lineSet, nil
	}

	lineSet, err := GenerateLinesWith(that.strategy, difficulty)
	if err != nil {
		return LineSet{}, err
	}

	that.sets[difficulty] = lineSet

	return lineSet, nil
}

func (that *LineCache) Strategy() Strategy {
	return that.strategy
}
