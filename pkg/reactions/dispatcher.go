package reactions

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/latoulicious/reactspell/pkg/alphabet"
)

// API is the subset of *discordgo.Session used to place reactions and list messages.
type API interface {
	MessageReactionAdd(channelID, messageID, emojiID string, options ...discordgo.RequestOption) error
	ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string, options ...discordgo.RequestOption) ([]*discordgo.Message, error)
}

// Sleeper waits for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// Sleep is the default Sleeper.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Defaults for Discord pacing.
const (
	DefaultCallTimeout = 10 * time.Second
	DefaultPace        = time.Second
)

// Dispatcher adds reactions one at a time, pacing calls and retrying a
// rate limited call exactly once.
type Dispatcher struct {
	api         API
	log         zerolog.Logger
	sleep       Sleeper
	pace        time.Duration
	callTimeout time.Duration
}

// DispatcherOption customizes a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithSleeper replaces the function used for pacing and rate limit waits.
func WithSleeper(s Sleeper) DispatcherOption {
	return func(d *Dispatcher) { d.sleep = s }
}

// WithPace sets the delay after each successful reaction.
func WithPace(pace time.Duration) DispatcherOption {
	return func(d *Dispatcher) { d.pace = pace }
}

// WithCallTimeout bounds each individual reaction call.
func WithCallTimeout(timeout time.Duration) DispatcherOption {
	return func(d *Dispatcher) { d.callTimeout = timeout }
}

// NewDispatcher creates a Dispatcher on top of api.
func NewDispatcher(api API, log zerolog.Logger, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		api:         api,
		log:         log.With().Str("component", "dispatcher").Logger(),
		sleep:       Sleep,
		pace:        DefaultPace,
		callTimeout: DefaultCallTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch applies every reaction to the target message in order. It stops
// at the first reaction that cannot be applied; reactions already placed stay.
func (d *Dispatcher) Dispatch(ctx context.Context, channelID, messageID string, reactions []alphabet.Reaction) error {
	log := d.log.With().Str("channel_id", channelID).Str("message_id", messageID).Logger()

	for _, reaction := range reactions {
		letter := string(reaction.Letter)

		err := d.add(ctx, channelID, messageID, reaction.EmojiID)
		if err == nil {
			log.Info().Str("letter", letter).Msg("Reaction sent")
		} else {
			wait, limited := RetryAfter(err)
			if !limited {
				callErr := callError("add reaction", err, ErrRemoteCall)
				log.Error().Str("letter", letter).Int("status", callErr.Status).Err(err).Msg("Failed to add reaction")
				return callErr
			}

			log.Warn().Str("letter", letter).Dur("retry_after", wait).Msg("Rate limited, waiting before retrying")
			if err := d.sleep(ctx, wait); err != nil {
				return err
			}

			if err := d.add(ctx, channelID, messageID, reaction.EmojiID); err != nil {
				callErr := callError("add reaction", err, ErrRateLimited)
				log.Error().Str("letter", letter).Int("status", callErr.Status).Err(err).Msg("Failed to add reaction after rate limit")
				return callErr
			}
			log.Info().Str("letter", letter).Msg("Reaction sent after rate limit")
		}

		if err := d.sleep(ctx, d.pace); err != nil {
			return err
		}
	}

	return nil
}

func (d *Dispatcher) add(ctx context.Context, channelID, messageID, emojiID string) error {
	callCtx, cancel := context.WithTimeout(ctx, d.callTimeout)
	defer cancel()

	return d.api.MessageReactionAdd(channelID, messageID, emojiID,
		discordgo.WithContext(callCtx),
		discordgo.WithRetryOnRatelimit(false),
		discordgo.WithRestRetries(0),
	)
}
