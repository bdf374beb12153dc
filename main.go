package main

import (
	"context"
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"

	"tasklist/board"
	"tasklist/domain"
	"tasklist/store"
	"tasklist/tui"
)

func main() {
	logger := log.New()
	// The terminal belongs to the UI; logs only go somewhere when a file is configured.
	logger.SetOutput(io.Discard)
	if path := os.Getenv("TASKLIST_LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("open log file: %v", err)
		}
		defer f.Close()
		logger.SetOutput(f)
	}
	if strings.EqualFold(os.Getenv("TASKLIST_LOG_FORMAT"), "json") {
		logger.SetFormatter(&log.JSONFormatter{})
	}
	if dbg, err := strconv.ParseBool(os.Getenv("DEBUG")); err == nil && dbg {
		logger.SetLevel(log.DebugLevel)
	}

	if trace, err := strconv.ParseBool(os.Getenv("TASKLIST_TRACE")); err == nil && trace {
		tp := board.NewTracerProvider(logger)
		otel.SetTracerProvider(tp)
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.WithError(err).Error("shutdown tracer provider")
			}
		}()
	}

	draftPriority, err := domain.ParsePriority(os.Getenv("TASKLIST_DEFAULT_PRIORITY"))
	if err != nil {
		log.Fatalf("invalid TASKLIST_DEFAULT_PRIORITY: %v", err)
	}

	st := store.New(store.WithLogger(logger))
	unsubscribe := st.Subscribe(board.EventLogger(logger))
	defer unsubscribe()

	b := board.New(st, board.WithLogger(logger), board.WithDraftPriority(draftPriority))

	logger.WithField("draft_priority", draftPriority).Info("tasklist started")
	if err := tui.Run(b, logger); err != nil {
		log.Fatalf("tui: %v", err)
	}
}
