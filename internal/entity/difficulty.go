package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-grid/internal/apperror"
)

type Difficulty string

const (
	EasyDifficulty Difficulty = "easy"
	HardDifficulty Difficulty = "hard"
)

const (
	easyBoardSize = 3
	easyRunLength = 3

	hardBoardSize = 5
	hardRunLength = 4
)

// ParseDifficulty - converts user input such as "Easy" or "hard" into a Difficulty.
func ParseDifficulty(value string) (Difficulty, error) {
	difficulty := Difficulty(strings.ToLower(strings.TrimSpace(value)))
	if !difficulty.IsValid() {
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidDifficulty, value)
	}

	return difficulty, nil
}

func (that Difficulty) IsValid() bool {
	return that == EasyDifficulty || that == HardDifficulty
}

// Dimensions - returns the board side length and the run length needed to win.
func (that Difficulty) Dimensions() (int, int, error) {
	switch that {
	case EasyDifficulty:
		return easyBoardSize, easyRunLength, nil
	case HardDifficulty:
		return hardBoardSize, hardRunLength, nil
	default:
		return 0, 0, fmt.Errorf("%w: %q", apperror.ErrInvalidDifficulty, string(that))
	}
}

func (that Difficulty) String() string {
	return string(that)
}
