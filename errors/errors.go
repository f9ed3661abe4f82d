package errors

import "fmt"

var (
	ErrWorkerPanic       = fmt.Errorf("worker panic")
	ErrUnknownCommand    = fmt.Errorf("unknown command")
	ErrUnknownBackend    = fmt.Errorf("unknown store backend")
	ErrEmptyCompletion   = fmt.Errorf("language model returned no text")
	ErrNoPhotos          = fmt.Errorf("no photo found")
	ErrRoomQueueFull     = fmt.Errorf("room command queue is full")
	ErrOrchestratorEnded = fmt.Errorf("orchestrator is stopped")
)
