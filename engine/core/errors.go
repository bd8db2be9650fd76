package core

import (
	"errors"
)

var (
	ErrNoBakeSession = errors.New("no bake session in progress, call BeginBakeAnimation first")
	ErrEmptyCurves   = errors.New("curve collection holds no keyframes")
	ErrInvalidSample = errors.New("transform sample contains non-finite values")
	ErrNoTargetNode  = errors.New("object has no scene node to attach the clip to")
	ErrQueueFull     = errors.New("queue is full")
	ErrQueueEmpty    = errors.New("queue is empty")
	ErrUnknown       = errors.New("unknown")
)
