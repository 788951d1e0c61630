package reactions

import (
	"context"
	"slices"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// MaxMessages is the largest page Discord returns for a message listing.
const MaxMessages = 100

// Resolver finds the messages that follow a starting message in a channel.
type Resolver struct {
	api         API
	log         zerolog.Logger
	callTimeout time.Duration
}

// NewResolver creates a Resolver on top of api.
func NewResolver(api API, log zerolog.Logger) *Resolver {
	return &Resolver{
		api:         api,
		log:         log.With().Str("component", "resolver").Logger(),
		callTimeout: DefaultCallTimeout,
	}
}

// Resolve returns startID followed by up to count message ids posted after
// it, oldest first. On failure the returned slice is empty.
func (r *Resolver) Resolve(ctx context.Context, channelID string, count int, startID string) ([]string, error) {
	if count <= 0 {
		return []string{startID}, nil
	}
	if count > MaxMessages {
		r.log.Warn().Int("requested", count).Int("max", MaxMessages).Msg("Clamping message count")
		count = MaxMessages
	}

	callCtx, cancel := context.WithTimeout(ctx, r.callTimeout)
	defer cancel()

	messages, err := r.api.ChannelMessages(channelID, count, "", startID, "",
		discordgo.WithContext(callCtx),
		discordgo.WithRetryOnRatelimit(false),
		discordgo.WithRestRetries(0),
	)
	if err != nil {
		callErr := callError("list messages", err, ErrRemoteCall)
		r.log.Error().Str("channel_id", channelID).Int("status", callErr.Status).Err(err).Msg("Failed to fetch messages")
		return []string{}, callErr
	}

	// Discord lists newest first.
	ids := make([]string, 0, len(messages)+1)
	for _, m := range messages {
		ids = append(ids, m.ID)
	}
	ids = append(ids, startID)
	slices.Reverse(ids)

	r.log.Debug().Str("channel_id", channelID).Int("count", len(ids)).Msg("Resolved target messages")
	return ids, nil
}
