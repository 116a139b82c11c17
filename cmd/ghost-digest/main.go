// Package main provides the ghost-digest CLI entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/leluso/ghost-digest/internal/adapters/ghost"
	"github.com/leluso/ghost-digest/internal/adapters/markdown"
	"github.com/leluso/ghost-digest/internal/infra/config"
	"github.com/leluso/ghost-digest/internal/infra/log"
	"github.com/leluso/ghost-digest/internal/usecase/digest"
)

// version is injected at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the root command. Flag defaults come from the
// environment config, so a flag only has to be passed to override it.
func newRootCmd(cfg config.AppConfig) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "ghost-digest",
		Short:   "Draft a digest of recently published Ghost posts",
		Long:    "ghost-digest collects recently published posts from a Ghost site, renders them into a single digest and saves it back to the site as a draft post.",
		Version: resolveVersion(version, readBuildInfo()),
		// Cobra prints the error itself to stderr; only the usage dump on a
		// failed run is suppressed.
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDigest(cmd.Context(), cfg, dryRun)
		},
	}
	cmd.SetVersionTemplate("ghost-digest version {{.Version}}\n")

	flags := cmd.Flags()
	flags.StringVar(&cfg.Ghost.URL, "url", cfg.Ghost.URL, "Ghost site URL, e.g. https://blog.example.com")
	flags.StringVar(&cfg.Digest.Period, "period", cfg.Digest.Period, "digest period: daily, weekly or an explicit YYYY-MM-DD date")
	flags.StringSliceVar(&cfg.Digest.Tags, "tags", cfg.Digest.Tags, "tags attached to the draft")
	flags.StringSliceVar(&cfg.Digest.ExcludedTags, "excluded-tags", cfg.Digest.ExcludedTags, "posts carrying any of these tags are left out")
	flags.StringVar(&cfg.Digest.Timezone, "timezone", cfg.Digest.Timezone, "IANA timezone the date window is computed in")
	flags.StringVar(&cfg.Digest.Title, "title", cfg.Digest.Title, "digest title, the period label is appended")
	flags.BoolVar(&cfg.Digest.FullArticle, "full-article", cfg.Digest.FullArticle, "embed full article bodies instead of excerpts")
	flags.BoolVar(&cfg.Digest.Debug, "debug", cfg.Digest.Debug, "verbose logging")
	flags.BoolVar(&dryRun, "dry-run", false, "render the digest without creating a draft")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// runDigest wires the adapters into the digest service and executes one run.
// The created draft slug goes to stdout; everything else goes to the log on
// stderr.
func runDigest(ctx context.Context, cfg config.AppConfig, dryRun bool) error {
	logger := log.NewLogger(cfg.Digest.Debug).With().Str("run_id", uuid.NewString()).Logger()

	if err := cfg.Validate(); err != nil {
		logger.Error().Err(err).Msg("invalid configuration")
		return err
	}

	client, err := ghost.NewClient(cfg.Ghost.URL, cfg.Ghost.AdminKey, cfg.Ghost.Timeout)
	if err != nil {
		logger.Error().Err(err).Msg("ghost client setup failed")
		return err
	}

	service := digest.NewService(client, client, markdown.NewConverter(), logger)
	report, err := service.Run(ctx, digest.Options{
		Period:       cfg.Digest.Period,
		Tags:         cfg.Digest.Tags,
		ExcludedTags: cfg.Digest.ExcludedTags,
		Timezone:     cfg.Digest.Timezone,
		Title:        cfg.Digest.Title,
		FullArticle:  cfg.Digest.FullArticle,
		DryRun:       dryRun,
	})
	if err != nil {
		logger.Error().Err(err).Msg("digest run failed")
		return err
	}

	if report.DryRun {
		logger.Info().Str("title", report.Title).Int("posts", report.Kept).Msg("dry run finished")
		fmt.Println(report.Markdown)
		return nil
	}
	logger.Info().
		Str("title", report.Title).
		Int("posts", report.Kept).
		Str("draft_id", report.Created.ID).
		Str("draft_url", report.Created.URL).
		Msg("digest draft created")
	fmt.Println(report.Created.Slug)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the ghost-digest version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ghost-digest version %s\n", resolveVersion(version, readBuildInfo()))
		},
	}
}

func readBuildInfo() *debug.BuildInfo {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	return info
}

// resolveVersion prefers the ldflags-injected version and falls back to the
// module version recorded in build info, so go install builds report their
// tag too.
func resolveVersion(v string, info *debug.BuildInfo) string {
	if v != "dev" {
		return v
	}
	if info == nil || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return v
	}
	return info.Main.Version
}
