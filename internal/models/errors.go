package models

import "errors"

var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrNoLegalMove  = errors.New("no legal move")
	ErrInvalidDepth = errors.New("search depth must be at least 1")
	ErrGameOver     = errors.New("game is over")
	ErrMustMove     = errors.New("cannot pass while legal moves exist")
)
