package find_next_window

import (
	"context"

	findNextWindow "github.com/m04kA/SMC-StayBookingService/internal/usecase/find_next_window"
)

type FindNextWindowUseCase interface {
	Execute(ctx context.Context, req *findNextWindow.Request) (*findNextWindow.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
