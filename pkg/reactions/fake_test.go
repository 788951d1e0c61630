package reactions

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"
)

type reactionCall struct {
	ChannelID string
	MessageID string
	EmojiID   string
}

// fakeAPI scripts MessageReactionAdd results in call order and returns a
// fixed page for ChannelMessages.
type fakeAPI struct {
	results  []error
	calls    []reactionCall
	messages []*discordgo.Message
	listErr  error

	listChannel string
	listLimit   int
	listAfter   string
	listCalls   int
}

func (f *fakeAPI) MessageReactionAdd(channelID, messageID, emojiID string, _ ...discordgo.RequestOption) error {
	f.calls = append(f.calls, reactionCall{ChannelID: channelID, MessageID: messageID, EmojiID: emojiID})
	if len(f.results) == 0 {
		return nil
	}
	err := f.results[0]
	f.results = f.results[1:]
	return err
}

func (f *fakeAPI) ChannelMessages(channelID string, limit int, _, afterID, _ string, _ ...discordgo.RequestOption) ([]*discordgo.Message, error) {
	f.listCalls++
	f.listChannel = channelID
	f.listLimit = limit
	f.listAfter = afterID
	return f.messages, f.listErr
}

// recordingSleeper records requested waits without sleeping.
type recordingSleeper struct {
	waits []time.Duration
}

func (r *recordingSleeper) Sleep(ctx context.Context, d time.Duration) error {
	r.waits = append(r.waits, d)
	return ctx.Err()
}

func (r *recordingSleeper) total() time.Duration {
	var sum time.Duration
	for _, w := range r.waits {
		sum += w
	}
	return sum
}

func rateLimited(after time.Duration) error {
	return &discordgo.RateLimitError{RateLimit: &discordgo.RateLimit{
		TooManyRequests: &discordgo.TooManyRequests{RetryAfter: after},
		URL:             "https://discord.com/api/v9/channels/c/messages/m/reactions/e/@me",
	}}
}

func restError(status int) error {
	return &discordgo.RESTError{
		Response:     &http.Response{StatusCode: status, Status: http.StatusText(status)},
		ResponseBody: []byte(`{"message":"nope","code":0}`),
	}
}
