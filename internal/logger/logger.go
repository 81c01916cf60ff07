package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
)

// Log is the engine-wide logger. It discards everything until Init is called,
// so packages can log unconditionally from tests.
var Log = zap.NewNop()

var initOnce sync.Once

// Init builds the process logger. GOPHER_LOG=prod selects the JSON production
// encoder, anything else the console development encoder.
func Init() {
	initOnce.Do(func() {
		var (
			l   *zap.Logger
			err error
		)
		if os.Getenv("GOPHER_LOG") == "prod" {
			l, err = zap.NewProduction()
		} else {
			l, err = zap.NewDevelopment()
		}
		if err != nil {
			return
		}
		Log = l
	})
}

// Sync flushes buffered entries. Call it before exit.
func Sync() {
	_ = Log.Sync()
}
