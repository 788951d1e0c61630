package config

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Default file locations, relative to the working directory.
const (
	DefaultEnvFile   = ".env"
	DefaultTokenFile = "token.txt"
	DefaultEmojiFile = "emoji_ids.txt"
)

type Config struct {
	DiscordToken   string
	BotToken       bool
	ChannelID      string
	StartMessageID string
	EmojiFile      string
	LogLevel       string
	LogFormat      string
	LogOutput      string
	MaxAttempts    int
}

// SessionToken returns the value for discordgo.New, adding the bot prefix when needed.
func (c *Config) SessionToken() string {
	if c.BotToken && !strings.HasPrefix(c.DiscordToken, "Bot ") {
		return "Bot " + c.DiscordToken
	}
	return c.DiscordToken
}

// LoadConfig reads envFile (if present) into the environment and builds a
// Config from it. A missing token is not an error here; the caller may
// still prompt for one.
func LoadConfig(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	// Load environment variables from .env file
	err := godotenv.Load(envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg := &Config{
		DiscordToken:   strings.TrimSpace(os.Getenv("DISCORD_TOKEN")),
		ChannelID:      os.Getenv("DISCORD_CHANNEL_ID"),
		StartMessageID: os.Getenv("DISCORD_MESSAGE_ID"),
		EmojiFile:      envOr("EMOJI_IDS_FILE", DefaultEmojiFile),
		LogLevel:       envOr("LOG_LEVEL", "info"),
		LogFormat:      envOr("LOG_FORMAT", "console"),
		LogOutput:      envOr("LOG_OUTPUT", "stderr"),
		MaxAttempts:    3,
	}

	if v := os.Getenv("DISCORD_BOT"); v != "" {
		cfg.BotToken, err = strconv.ParseBool(v)
		if err != nil {
			return nil, ErrInvalidBotFlag
		}
	}
	if v := os.Getenv("MAX_ATTEMPTS"); v != "" {
		cfg.MaxAttempts, err = strconv.Atoi(v)
		if err != nil || cfg.MaxAttempts < 1 {
			return nil, ErrInvalidMaxAttempts
		}
	}

	if cfg.DiscordToken == "" {
		cfg.DiscordToken, err = ReadTokenFile(DefaultTokenFile)
		if err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// ReadTokenFile returns the first non-empty line of path, or "" if the
// file does not exist.
func ReadTokenFile(path string) (string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			return line, nil
		}
	}
	return "", scanner.Err()
}

// Validate checks that everything needed to contact Discord is present.
func (c *Config) Validate() error {
	switch {
	case c.DiscordToken == "":
		return ErrDiscordTokenNotSet
	case c.ChannelID == "":
		return ErrChannelNotSet
	case c.StartMessageID == "":
		return ErrMessageNotSet
	case c.MaxAttempts < 1:
		return ErrInvalidMaxAttempts
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
