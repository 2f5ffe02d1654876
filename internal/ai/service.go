package ai

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=mocks_test.go -package=ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bizdesk-server/internal/observability"

	"github.com/sony/gobreaker/v2"
)

var (
	ErrEmptyCompletion = errors.New("ai provider returned an empty completion")
	ErrProviderOpen    = errors.New("ai provider temporarily unavailable")
)

// Completer is a single-shot text completion provider.
type Completer interface {
	Name() string
	Complete(ctx context.Context, system, prompt string) (string, error)
}

type BreakerSettings struct {
	FailureThreshold uint32
	OpenTimeout      time.Duration
}

type Service struct {
	provider Completer
	breaker  *gobreaker.CircuitBreaker[string]
	timeout  time.Duration
	logger   *observability.Logger
}

func New(provider Completer, timeout time.Duration, breaker BreakerSettings, logger *observability.Logger) *Service {
	if breaker.FailureThreshold == 0 {
		breaker.FailureThreshold = 5
	}
	if breaker.OpenTimeout <= 0 {
		breaker.OpenTimeout = 30 * time.Second
	}

	s := &Service{
		provider: provider,
		timeout:  timeout,
		logger:   logger,
	}
	s.breaker = gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        provider.Name(),
		MaxRequests: 1,
		Timeout:     breaker.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breaker.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			ctx := observability.WithFields(context.Background(),
				observability.Field{Key: "provider", Value: name},
				observability.Field{Key: "from", Value: from.String()},
				observability.Field{Key: "to", Value: to.String()},
			)
			s.logger.Warn(ctx, "ai circuit breaker state changed")
		},
	})
	return s
}

// Classify asks the provider to categorize an incoming email body. Provider
// failures are returned; unreadable answers are not and yield Unclassified.
func (s *Service) Classify(ctx context.Context, body string) (Classification, error) {
	raw, err := s.complete(ctx, classifierInstructions, classifierPrompt(body))
	if err != nil {
		return Unclassified(), fmt.Errorf("failed to classify email: %w", err)
	}
	return ParseClassification(raw), nil
}

// Generate writes message text for the given context.
func (s *Service) Generate(ctx context.Context, pc PromptContext) (string, error) {
	text, err := s.complete(ctx, writerInstructions, pc.Prompt())
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}
	return text, nil
}

func (s *Service) complete(ctx context.Context, system, prompt string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "ai_provider", Value: s.provider.Name()})

	start := time.Now()
	text, err := s.breaker.Execute(func() (string, error) {
		out, err := s.provider.Complete(ctx, system, prompt)
		if err != nil {
			return "", err
		}
		out = strings.TrimSpace(out)
		if out == "" {
			return "", ErrEmptyCompletion
		}
		return out, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			err = ErrProviderOpen
		}
		s.logger.Error(ctx, "ai completion failed", err)
		return "", err
	}

	s.logger.Metrics(ctx, observability.MetricField{Key: "ai_latency_ms", Value: time.Since(start).Milliseconds()})
	return text, nil
}
