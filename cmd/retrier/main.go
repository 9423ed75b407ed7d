package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aleister1102/retrier/internal/backoff"
	"github.com/aleister1102/retrier/internal/config"
	"github.com/aleister1102/retrier/internal/executor"
	"github.com/aleister1102/retrier/internal/logger"
	"github.com/aleister1102/retrier/internal/replay"
	"github.com/rs/zerolog"
)

func main() {
	flags := ParseFlags()

	gCfg, err := config.LoadGlobalConfig(flags.ConfigFile)
	if err != nil {
		log.Fatalf("[FATAL] Main: Could not load config using path '%s': %v", flags.ConfigFile, err)
	}
	applyFlagOverrides(gCfg, flags)

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Main: Could not initialize logger: %v", err)
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		zLogger.Fatal().Err(err).Msg("Configuration validation failed")
	}

	engine, err := backoff.New(gCfg.BackoffConfig)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Could not construct backoff engine")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if flags.ReplayFile != "" {
		os.Exit(runReplay(flags.ReplayFile, engine, zLogger))
	}
	os.Exit(runCommand(ctx, flags.Command, gCfg, engine, zLogger))
}

// applyFlagOverrides lets command-line flags take precedence over the config file
func applyFlagOverrides(gCfg *config.GlobalConfig, flags AppFlags) {
	if flags.Algorithm != "" {
		gCfg.BackoffConfig.Algorithm = flags.Algorithm
	}
	if flags.MaxAttempts >= 0 {
		gCfg.BackoffConfig.MaxAttempts = flags.MaxAttempts
	}
	if flags.RetryOn != "" {
		gCfg.ExecutorConfig.RetryOnCodes = flags.RetryOn
	}
	if flags.SuccessOn != "" {
		gCfg.ExecutorConfig.SuccessOnCodes = flags.SuccessOn
	}
	if flags.DryRunSet {
		gCfg.ExecutorConfig.DryRun = flags.DryRun
	}
	if flags.SkipDelaySet {
		gCfg.ExecutorConfig.SkipDelay = flags.SkipDelay
	}
}

// runCommand drives the command through the retry executor and maps the
// outcome onto the process exit code.
func runCommand(ctx context.Context, argv []string, gCfg *config.GlobalConfig, engine *backoff.Engine, zLogger zerolog.Logger) int {
	classifier, err := executor.NewClassifierFromConfig(gCfg.ExecutorConfig)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Could not build exit code classifier")
	}

	retryExecutor := executor.NewExecutor(
		executor.NewOSCommandRunner(),
		classifier,
		executor.OptionsFromConfig(gCfg.ExecutorConfig),
		zLogger,
	)

	result := retryExecutor.Run(ctx, argv, engine)
	zLogger.Info().Str("result", result.String()).Msg("Retry sequence finished")
	fmt.Println(result.String())

	return exitCodeFor(result)
}

// runReplay prints the delay trace for a recorded event history. The
// give-up sentinel is printed as -1.
func runReplay(eventsPath string, engine *backoff.Engine, zLogger zerolog.Logger) int {
	events, err := replay.LoadEvents(eventsPath)
	if err != nil {
		zLogger.Error().Err(err).Msg("Could not load replay events")
		return 1
	}

	simulator := replay.NewSimulator(time.Time{}, zLogger)
	delays, replayErr := simulator.Replay(events, engine)
	for _, delay := range delays {
		if delay == backoff.GiveUp {
			fmt.Println("-1")
			continue
		}
		fmt.Printf("%g\n", delay.Seconds())
	}

	if replayErr != nil {
		zLogger.Error().Err(replayErr).Msg("Replay aborted on malformed event")
		return 1
	}
	return 0
}

// exitCodeFor maps a retry result onto the process exit code: the command's
// own exit code where one exists, 127 for launch failures, 1 otherwise.
func exitCodeFor(result executor.Result) int {
	if result.Success {
		return 0
	}

	var launchErr *executor.LaunchError
	if errors.As(result.Err, &launchErr) {
		return 127
	}

	if result.ExitCode > 0 {
		return result.ExitCode
	}
	return 1
}
