package debug

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.Mutex
	logger = zerolog.Nop()
	opened bool
)

// Logger returns the trace logger. The first call opens the file named by
// WEFT_DEBUG; if the variable is unset or the file cannot be opened, a
// disabled logger is returned and every event is a no-op.
func Logger() *zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if !opened {
		opened = true
		if path := os.Getenv("WEFT_DEBUG"); path != "" {
			f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err == nil {
				logger = zerolog.New(f).With().Timestamp().Logger()
			}
		}
	}
	return &logger
}

// Logf writes a formatted trace message.
func Logf(format string, args ...any) {
	Logger().Debug().Msgf(format, args...)
}
