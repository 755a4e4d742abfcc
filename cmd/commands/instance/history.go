package instance

import (
	"time"

	"nathanbeddoewebdev/devstork/internal/domain"
	"nathanbeddoewebdev/devstork/internal/history"
	"nathanbeddoewebdev/devstork/internal/lifecycle"
	"nathanbeddoewebdev/devstork/internal/logger"
)

// openHistory opens the history repository. Overridden in tests.
var openHistory = func() (history.Repository, error) { return history.Open() }

// recordHistory stores the outcome of one operation. History is best
// effort: a failure is logged and never changes the command's result.
func recordHistory(manager *lifecycle.Manager, operation, outcome string, server *domain.Server, opErr error, start time.Time) {
	entry := &history.Entry{
		Operation:  operation,
		ConfigPath: manager.ConfigPath(),
		Provider:   manager.Provider().GetDisplayName(),
		Outcome:    outcome,
		DurationMs: time.Since(start).Milliseconds(),
	}
	if server != nil {
		entry.ServerID = server.ID
		entry.ServerName = server.Name
	}
	if opErr != nil {
		entry.Outcome = history.OutcomeError
		entry.Detail = opErr.Error()
	}

	repo, err := openHistory()
	if err != nil {
		logger.Warnf("History not recorded: %v", err)
		return
	}
	defer repo.Close()

	if err := repo.Save(entry); err != nil {
		logger.Warnf("History not recorded: %v", err)
	}
}
