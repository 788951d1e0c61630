package config

import "errors"

// Configuration errors
var (
	ErrDiscordTokenNotSet = errors.New("discord token not set")
	ErrChannelNotSet      = errors.New("channel id not set")
	ErrMessageNotSet      = errors.New("starting message id not set")
	ErrInvalidBotFlag     = errors.New("DISCORD_BOT must be a boolean")
	ErrInvalidMaxAttempts = errors.New("max attempts must be a positive integer")
	ErrEmojiFile          = errors.New("cannot read emoji identifier file")
)
