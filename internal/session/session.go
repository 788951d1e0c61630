package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/latoulicious/reactspell/internal/speller"
)

var ErrAttemptsExhausted = errors.New("no attempt succeeded")

// Speller runs one spelling attempt.
type Speller interface {
	Spell(ctx context.Context, req speller.Request) error
}

// Loop asks for a message and spells it, asking again when the attempt
// reports speller.ErrRetryRequested, at most MaxAttempts times.
type Loop struct {
	Speller        Speller
	Prompter       Prompter
	Log            zerolog.Logger
	ChannelID      string
	StartMessageID string
	// Message is used for the first attempt instead of prompting, if set.
	Message     string
	MaxAttempts int
}

func (l *Loop) Run(ctx context.Context) error {
	var lastErr error
	message := l.Message

	for attempt := 1; attempt <= l.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if message == "" {
			label := "Enter your message: "
			if lastErr != nil {
				label = "Please retry. " + label
			}
			var err error
			if message, err = l.Prompter.Prompt(label); err != nil {
				return fmt.Errorf("read message: %w", err)
			}
		}

		err := l.Speller.Spell(ctx, speller.Request{
			ChannelID:      l.ChannelID,
			StartMessageID: l.StartMessageID,
			Message:        message,
		})
		if err == nil {
			return nil
		}
		if !errors.Is(err, speller.ErrRetryRequested) {
			return err
		}

		l.Log.Warn().Err(err).Int("attempt", attempt).Int("max_attempts", l.MaxAttempts).Msg("Attempt needs a new message")
		lastErr = err
		message = ""
	}

	if lastErr == nil {
		return ErrAttemptsExhausted
	}
	return fmt.Errorf("%w after %d attempts: %w", ErrAttemptsExhausted, l.MaxAttempts, lastErr)
}
