package fiberlog

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

const accessLogMessage = "запрос api"

// New возвращает access-log middleware: одна запись на запрос,
// уровень Warn начиная с кодов 4xx. Предзапросы OPTIONS не логируются.
func New(config ...Config) fiber.Handler {
	cfg := ConfigDefault
	if len(config) > 0 {
		cfg = config[0]
	}
	d := &data{pid: os.Getpid()}
	ftm := getFuncTagMap(cfg, d)
	return func(c *fiber.Ctx) error {
		d.start = time.Now()
		err := c.Next()
		d.end = time.Now()
		if c.Method() == fiber.MethodOptions {
			return err
		}

		entry := log.WithFields(collectFields(ftm, c, d))
		if cfg.Logger != nil {
			entry = cfg.Logger.WithFields(collectFields(ftm, c, d))
		}
		if c.Response().StatusCode() >= fiber.StatusBadRequest {
			entry.Warn(accessLogMessage)
		} else {
			entry.Info(accessLogMessage)
		}
		return err
	}
}

// collectFields вычисляет значения тегов; пустые строковые значения
// в запись не попадают.
func collectFields(ftm map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	fields := make(log.Fields, len(ftm))
	for tag, fn := range ftm {
		value := fn(c, d)
		if strValue, ok := value.(string); ok {
			if strValue == "" {
				continue
			}
			fields[tag] = strValue
			continue
		}
		fields[tag] = value
	}
	return fields
}
