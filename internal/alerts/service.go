package alerts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// SQLGenerator derives a SQL statement from alert text.
type SQLGenerator interface {
	Translate(ctx context.Context, alertText string) (string, error)
}

// Options tune dispatch behavior.
type Options struct {
	// ClearOnFailure drops queued alerts even when dispatch fails. This is
	// the historical fire-and-forget behavior and the default; setting it to
	// false keeps the batch for the next Execute call.
	ClearOnFailure bool
}

// Service owns the alert queue: it translates submissions and dispatches the
// queued batch to the execution cluster.
type Service struct {
	queue      *Queue
	generator  SQLGenerator
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	opts       Options
}

func NewService(generator SQLGenerator, baseURL string, logger *slog.Logger) *Service {
	return &Service{
		queue:     NewQueue(),
		generator: generator,
		baseURL:   baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
		opts:   Options{ClearOnFailure: true},
	}
}

// WithOptions overrides dispatch behavior.
func (s *Service) WithOptions(opts Options) *Service {
	s.opts = opts
	return s
}

// Submit translates one alert text and queues it. A translation failure is
// returned to the submitter and leaves already-queued alerts untouched.
func (s *Service) Submit(ctx context.Context, alertText string) (Alert, error) {
	sqlText, err := s.generator.Translate(ctx, alertText)
	if err != nil {
		return Alert{}, fmt.Errorf("translating alert %q: %w", alertText, err)
	}

	alert := Alert{Alert: alertText, SQL: sqlText}
	s.queue.Add(alert)
	s.logger.Info("alert queued", "alert", alertText, "sql", sqlText, "pending", s.queue.Len())
	return alert, nil
}

// Pending returns the queued alerts without draining them.
func (s *Service) Pending() []Alert {
	return s.queue.Snapshot()
}

// Execute sends all queued alerts to the execution cluster as one batch and
// clears the queue. Dispatch is not retried; by default the queue is cleared
// even when dispatch fails.
func (s *Service) Execute(ctx context.Context) error {
	batch := s.queue.Snapshot()
	if len(batch) == 0 {
		s.logger.Info("no alerts to execute")
		return nil
	}

	err := s.dispatch(ctx, batch)
	if err == nil || s.opts.ClearOnFailure {
		s.queue.Clear()
	}
	if err != nil {
		return fmt.Errorf("dispatching %d alerts: %w", len(batch), err)
	}

	s.logger.Info("alerts dispatched", "count", len(batch))
	return nil
}

func (s *Service) dispatch(ctx context.Context, batch []Alert) error {
	payload, err := json.Marshal(map[string][]Alert{"alerts": batch})
	if err != nil {
		return fmt.Errorf("failed to marshal alert batch: %w", err)
	}

	url := s.baseURL + "/execute_alerts"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send alert batch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("execution cluster returned status %d: %s", resp.StatusCode, string(body))
	}

	s.logger.Info("execution cluster response", "body", string(body))
	return nil
}
