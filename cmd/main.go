package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/latoulicious/reactspell/internal/config"
	"github.com/latoulicious/reactspell/internal/logging"
	"github.com/latoulicious/reactspell/internal/session"
	"github.com/latoulicious/reactspell/internal/speller"
	"github.com/latoulicious/reactspell/pkg/alphabet"
	"github.com/latoulicious/reactspell/pkg/reactions"
)

type options struct {
	envFile   string
	channelID string
	startID   string
	message   string
	emojiFile string
	logLevel  string
	logFormat string
	logOutput string
	attempts  int
	bot       bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "reactspell",
		Short:         "Spell a message with regional indicator reactions on consecutive Discord messages",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := run(cmd, opts)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
			}
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.envFile, "env-file", config.DefaultEnvFile, "dotenv file to load")
	f.StringVarP(&opts.channelID, "channel", "c", "", "channel id (DISCORD_CHANNEL_ID)")
	f.StringVarP(&opts.startID, "start", "s", "", "starting message id (DISCORD_MESSAGE_ID)")
	f.StringVarP(&opts.message, "message", "m", "", "message to spell; prompted for when empty")
	f.StringVar(&opts.emojiFile, "emoji-file", "", "file with the 26 custom emoji ids (EMOJI_IDS_FILE)")
	f.StringVar(&opts.logLevel, "log-level", "", "log level (LOG_LEVEL)")
	f.StringVar(&opts.logFormat, "log-format", "", "console or json (LOG_FORMAT)")
	f.StringVar(&opts.logOutput, "log-output", "", "stdout or stderr (LOG_OUTPUT)")
	f.IntVar(&opts.attempts, "attempts", 0, "maximum number of messages to try (MAX_ATTEMPTS)")
	f.BoolVar(&opts.bot, "bot", false, "token is a bot token (DISCORD_BOT)")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	cfg, err := config.LoadConfig(opts.envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyFlags(cmd, cfg, opts)

	log := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cfg.LogOutput,
	}, cmd.OutOrStdout(), cmd.ErrOrStderr())
	prompter := session.NewLinePrompter(cmd.InOrStdin(), cmd.OutOrStdout())

	if err := promptMissing(cfg, prompter); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ids, err := config.LoadEmojiIDs(cfg.EmojiFile)
	if err != nil {
		return err
	}
	tables, err := alphabet.NewTables(ids)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.EmojiFile, err)
	}

	// Create a new Discord session using the provided token
	dg, err := discordgo.New(cfg.SessionToken())
	if err != nil {
		return fmt.Errorf("create discord session: %w", err)
	}

	loop := newLoop(cfg, opts.message, dg, tables, prompter, log)
	return loop.Run(cmd.Context())
}

func newLoop(cfg *config.Config, message string, api reactions.API, tables *alphabet.Tables, prompter session.Prompter, log zerolog.Logger) *session.Loop {
	sp := speller.New(tables,
		reactions.NewDispatcher(api, log),
		reactions.NewResolver(api, log),
		log,
	)

	return &session.Loop{
		Speller:        sp,
		Prompter:       prompter,
		Log:            log,
		ChannelID:      cfg.ChannelID,
		StartMessageID: cfg.StartMessageID,
		Message:        message,
		MaxAttempts:    cfg.MaxAttempts,
	}
}

// applyFlags lets explicitly set flags win over the environment.
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts *options) {
	f := cmd.Flags()
	if f.Changed("channel") {
		cfg.ChannelID = opts.channelID
	}
	if f.Changed("start") {
		cfg.StartMessageID = opts.startID
	}
	if f.Changed("emoji-file") {
		cfg.EmojiFile = opts.emojiFile
	}
	if f.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if f.Changed("log-format") {
		cfg.LogFormat = opts.logFormat
	}
	if f.Changed("log-output") {
		cfg.LogOutput = opts.logOutput
	}
	if f.Changed("attempts") {
		cfg.MaxAttempts = opts.attempts
	}
	if f.Changed("bot") {
		cfg.BotToken = opts.bot
	}
}

func promptMissing(cfg *config.Config, p session.Prompter) error {
	fields := []struct {
		value *string
		label string
	}{
		{&cfg.DiscordToken, "Enter your discord token: "},
		{&cfg.ChannelID, "Enter the channel ID: "},
		{&cfg.StartMessageID, "Enter the starting message ID: "},
	}

	for _, field := range fields {
		if *field.value != "" {
			continue
		}
		v, err := p.Prompt(field.label)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		*field.value = v
	}
	return nil
}
