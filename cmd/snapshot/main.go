package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - migrate: create or update the local snapshot tables
// - refresh: copy every remote user and product into the local snapshot

func main() {
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)
	refreshCmd := flag.NewFlagSet("refresh", flag.ExitOnError)

	migrateTimeout := migrateCmd.Duration("timeout", time.Minute, "Abort the migration after this long")
	refreshTimeout := refreshCmd.Duration("timeout", 5*time.Minute, "Abort the refresh after this long")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flags := snapshotFlags{
		Migrate: commandFlags{cmd: migrateCmd, timeout: migrateTimeout},
		Refresh: commandFlags{cmd: refreshCmd, timeout: refreshTimeout},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type snapshotFlags struct {
	Migrate commandFlags
	Refresh commandFlags
}

type commandFlags struct {
	cmd     *flag.FlagSet
	timeout *time.Duration
}

func runSubcommand(ctx context.Context, flags *snapshotFlags) error {
	switch os.Args[1] {
	case "migrate":
		return handle(ctx, flags.Migrate, runMigrate)
	case "refresh":
		return handle(ctx, flags.Refresh, runRefresh)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handle(ctx context.Context, f commandFlags, run func(context.Context) error) error {
	if err := f.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrapf(err, "failed to parse %s flags", f.cmd.Name())
	}

	ctx, cancel := context.WithTimeout(ctx, *f.timeout)
	defer cancel()

	return run(ctx)
}

func printUsage() {
	fmt.Println("Usage: snapshot <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  migrate    Create or update the local snapshot tables")
	fmt.Println("  refresh    Copy remote users and products into the local snapshot")
	fmt.Println("")
	fmt.Println("Use 'snapshot <command> -h' for more information about a command.")
}
