package logger

import "go.uber.org/zap"

// NewNamed builds a zap logger for the given environment and attaches a
// service name. Development gets the human-readable console encoder,
// anything else structured JSON.
func NewNamed(appEnv, name string) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)
	if appEnv == "development" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return log.Named(name), nil
}
