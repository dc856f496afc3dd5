package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/CameronXie/ecommerce-cli/internal/cli"
	"github.com/CameronXie/ecommerce-cli/internal/registry"
	"github.com/CameronXie/ecommerce-cli/internal/version"
)

const (
	OperatorEnv = "SHOP_OPERATOR"
	LogLevelEnv = "LOG_LEVEL"

	DefaultOperator = "owner"
	DefaultLogLevel = slog.LevelError
)

// operatorRoles maps each built-in operator to the roles granted by the access policy.
var operatorRoles = map[string][]string{
	"owner":   {"admin"},
	"clerk":   {"sales"},
	"auditor": {"reporting"},
}

func main() {
	// stdout belongs to the shell, so logs go to stderr.
	logger := slog.New(slog.NewJSONHandler(
		os.Stderr,
		&slog.HandlerOptions{Level: parseLogLevel(os.Getenv(LogLevelEnv))},
	)).With(
		slog.String("version", version.Version),
	)

	enforcer, err := newEnforcer(logger)
	if err != nil {
		log.Fatal(err)
	}

	operator := getEnv(OperatorEnv, DefaultOperator)
	logger.Info("shell_starting", "operator", operator)

	shell := cli.NewShell(
		registry.New(registry.WithLogger(logger)),
		enforcer,
		operator,
		os.Stdin,
		os.Stdout,
		logger,
	)

	if err := shell.Run(context.Background()); err != nil {
		logger.Error("shell_failed", "error", err)
		os.Exit(1)
	}
}

// getEnv returns the value of the environment variable key, or fallback when it is unset or empty.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

// parseLogLevel parses debug, info, warn or error, falling back to DefaultLogLevel.
func parseLogLevel(s string) slog.Level {
	var level slog.Level
	if s == "" || level.UnmarshalText([]byte(s)) != nil {
		return DefaultLogLevel
	}

	return level
}
