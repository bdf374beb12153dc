package board

import (
	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"

	"tasklist/domain"
)

// EventLogger returns a store subscriber that records every task event as a
// JSON payload at debug level.
func EventLogger(logger *log.Logger) func(domain.Event) {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return func(ev domain.Event) {
		data, err := sonic.Marshal(ev)
		if err != nil {
			logger.WithError(err).WithField("task", ev.EntityID).Error("marshal task event")
			return
		}
		logger.WithFields(log.Fields{
			"event":   ev.Type,
			"task":    ev.EntityID,
			"payload": string(data),
		}).Debug("task.event")
	}
}
