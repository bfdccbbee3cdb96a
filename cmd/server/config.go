package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type config struct {
	bind          string
	port          int
	prefix        string
	shareURL      string
	tlsCert       string
	tlsKey        string
	redisAddr     string
	redisPassword string
	verbose       bool

	maxRounds         int
	truthPoints       int
	fooledPoints      int
	defineTimeout     time.Duration
	voteTailTimeout   time.Duration
	scoreboardDisplay time.Duration
	finalScoreboard   time.Duration
	revealDelay       time.Duration
}

func (c *config) validate() error {
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if (c.tlsCert == "") != (c.tlsKey == "") {
		return fmt.Errorf("both --tls-cert and --tls-key must be provided together")
	}
	if c.maxRounds < 1 {
		return fmt.Errorf("invalid max rounds (must be at least 1): %d", c.maxRounds)
	}
	if c.truthPoints < 0 || c.fooledPoints < 0 {
		return fmt.Errorf("point values cannot be negative: %d, %d", c.truthPoints, c.fooledPoints)
	}
	return nil
}

func newCmd(cfg *config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("LEXIFINE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "lexifine-server",
		Short:         "Session server for a bluffing game of fabricated definitions.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: LEXIFINE_BIND)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: LEXIFINE_PORT)")
	fs.StringVar(&cfg.prefix, "prefix", "", "path to prepend to all URLs, for use behind reverse proxy (env: LEXIFINE_PREFIX)")
	fs.StringVar(&cfg.shareURL, "share-url", "http://localhost:8080", "public base URL used in lobby QR codes (env: LEXIFINE_SHARE_URL)")
	fs.StringVar(&cfg.tlsCert, "tls-cert", "", "path to tls certificate (env: LEXIFINE_TLS_CERT)")
	fs.StringVar(&cfg.tlsKey, "tls-key", "", "path to tls keyfile (env: LEXIFINE_TLS_KEY)")
	fs.StringVar(&cfg.redisAddr, "redis-addr", "", "redis address for a shared lexicon; empty uses the embedded corpus (env: LEXIFINE_REDIS_ADDR)")
	fs.StringVar(&cfg.redisPassword, "redis-password", "", "redis password (env: LEXIFINE_REDIS_PASSWORD)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: LEXIFINE_VERBOSE)")

	fs.IntVar(&cfg.maxRounds, "max-rounds", 3, "full anchor rotations per game (env: LEXIFINE_MAX_ROUNDS)")
	fs.IntVar(&cfg.truthPoints, "truth-guess-points", 5, "points for voting for the true definition (env: LEXIFINE_TRUTH_GUESS_POINTS)")
	fs.IntVar(&cfg.fooledPoints, "fooled-vote-points", 10, "points per vote a fake definition collects (env: LEXIFINE_FOOLED_VOTE_POINTS)")
	fs.DurationVar(&cfg.defineTimeout, "define-timeout", 90*time.Second, "deadline for submitting fake definitions (env: LEXIFINE_DEFINE_TIMEOUT)")
	fs.DurationVar(&cfg.voteTailTimeout, "vote-tail-timeout", 15*time.Second, "grace period once a single voter remains (env: LEXIFINE_VOTE_TAIL_TIMEOUT)")
	fs.DurationVar(&cfg.scoreboardDisplay, "scoreboard-display", 15*time.Second, "how long mid-game scoreboards are shown (env: LEXIFINE_SCOREBOARD_DISPLAY)")
	fs.DurationVar(&cfg.finalScoreboard, "final-scoreboard-display", 30*time.Second, "how long the final scoreboard is shown (env: LEXIFINE_FINAL_SCOREBOARD_DISPLAY)")
	fs.DurationVar(&cfg.revealDelay, "reveal-delay", 3500*time.Millisecond, "pause before each round's term is revealed (env: LEXIFINE_REVEAL_DELAY)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("lexifine-server v{{.Version}}\n")

	return cmd
}
