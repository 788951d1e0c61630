package speller

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/latoulicious/reactspell/pkg/alphabet"
	"github.com/latoulicious/reactspell/pkg/reactions"
)

// DefaultWordDelay separates the reactions of consecutive words.
const DefaultWordDelay = 2 * time.Second

// Dispatcher places the reactions for one word on one message.
type Dispatcher interface {
	Dispatch(ctx context.Context, channelID, messageID string, reactions []alphabet.Reaction) error
}

// Resolver lists the messages that follow a starting message.
type Resolver interface {
	Resolve(ctx context.Context, channelID string, count int, startID string) ([]string, error)
}

// Request is one message to spell, starting at StartMessageID.
type Request struct {
	ChannelID      string
	StartMessageID string
	Message        string
}

// Speller spells a message word by word on consecutive channel messages.
type Speller struct {
	tables     *alphabet.Tables
	dispatcher Dispatcher
	resolver   Resolver
	log        zerolog.Logger
	sleep      reactions.Sleeper
	wordDelay  time.Duration
}

// Option customizes a Speller.
type Option func(*Speller)

// WithSleeper replaces the function used for the delay between words.
func WithSleeper(s reactions.Sleeper) Option {
	return func(sp *Speller) { sp.sleep = s }
}

// WithWordDelay sets the delay between two words.
func WithWordDelay(d time.Duration) Option {
	return func(sp *Speller) { sp.wordDelay = d }
}

func New(tables *alphabet.Tables, dispatcher Dispatcher, resolver Resolver, log zerolog.Logger, opts ...Option) *Speller {
	s := &Speller{
		tables:     tables,
		dispatcher: dispatcher,
		resolver:   resolver,
		log:        log.With().Str("component", "speller").Logger(),
		sleep:      reactions.Sleep,
		wordDelay:  DefaultWordDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Spell encodes every word, resolves one target message per word and adds
// the reactions in message order. Errors matching ErrRetryRequested leave
// Discord untouched; a *DispatchError may follow partially applied reactions.
func (s *Speller) Spell(ctx context.Context, req Request) error {
	words := strings.Fields(req.Message)
	if len(words) == 0 {
		return &RetryError{Reason: ErrEmptyMessage}
	}

	encoded, err := s.tables.EncodeAll(words)
	if err != nil {
		s.log.Warn().Err(err).Msg("Word has too many duplicated letters")
		return &RetryError{Reason: err}
	}

	targets, err := s.resolver.Resolve(ctx, req.ChannelID, len(words)-1, req.StartMessageID)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if len(targets) < len(words) {
		short := &InsufficientHistoryError{Have: len(targets), Need: len(words)}
		s.log.Warn().Err(err).Int("messages", short.Have).Int("words", short.Need).Msg("Not enough messages to react to all words")
		return &RetryError{Reason: short}
	}

	for i, word := range words {
		log := s.log.With().Str("word", word).Str("message_id", targets[i]).Logger()

		if err := s.dispatcher.Dispatch(ctx, req.ChannelID, targets[i], encoded[i]); err != nil {
			log.Error().Err(err).Msg("Failed to add reactions for word, stopping")
			return &DispatchError{Word: word, MessageID: targets[i], Err: err}
		}
		log.Info().Str("letters", alphabet.Word(encoded[i])).Msg("Reactions added for word")

		if i < len(words)-1 {
			if err := s.sleep(ctx, s.wordDelay); err != nil {
				return err
			}
		}
	}

	s.log.Info().Int("words", len(words)).Msg("Finished adding reactions to all messages")
	return nil
}
