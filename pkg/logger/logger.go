package logx

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Production is the environment name that switches from the pretty console
// writer to plain JSON output at info level.
const Production = "production"

// Init configures the global zerolog logger for the given environment.
func Init(environment string) {
	if environment == Production {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
		return
	}
	log.Logger = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()
	log.Logger = log.Logger.Level(zerolog.DebugLevel)
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}
