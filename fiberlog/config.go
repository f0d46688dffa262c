package fiberlog

import "github.com/sirupsen/logrus"

// Config настраивает access-log middleware: логгер и набор полей,
// попадающих в каждую запись.
type Config struct {
	Logger *logrus.Logger
	Tags   []string
}

// ConfigDefault используется, когда конфиг не передан явно.
var ConfigDefault = Config{
	Tags: []string{
		TagMethod,
		TagPath,
		TagStatus,
		TagLatency,
	},
}
