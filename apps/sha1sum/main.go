//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/markkurossi/sha1sum/env"
)

const envPrefix = "SHA1SUM"

type options struct {
	config      env.Config
	logLevelStr string
	verbose     bool
	stderr      io.Writer
}

func newCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{
		stderr: stderr,
	}

	rootCmd := &cobra.Command{
		Use:   "sha1sum [flags] INPUT OUTPUT",
		Short: "writes the raw SHA-1 digest of INPUT to OUTPUT",
		Long: `sha1sum reads at most --max-input bytes from INPUT, computes their
SHA-1 digest and writes the 20 raw digest bytes to OUTPUT.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return ErrFilenames
			}
			return hashCommand(&opts.config, args[0], args[1], opts.verbose,
				cmd.OutOrStdout())
		},
	}
	rootCmd.SetOutput(stdout)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.logLevelStr, "log-level", log.WarnLevel.String(),
		"log level")
	flags.IntVar(&opts.config.MaxInput, "max-input", env.DefaultMaxInput,
		"maximum number of input bytes to hash; excess input is ignored")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"print a timing report")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "selftest",
		Short: "checks the digest against known answer vectors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return selftest(&opts.config, cmd.OutOrStdout())
		},
	})

	return rootCmd
}

func (opts *options) setup(cmd *cobra.Command) error {
	if err := SetFlagsFromEnv(cmd.Flags(), envPrefix); err != nil {
		return err
	}

	logger := log.New()
	logger.Out = opts.stderr
	logger.Formatter = &log.TextFormatter{
		FullTimestamp: true,
	}
	level, err := log.ParseLevel(opts.logLevelStr)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", opts.logLevelStr, err)
	}
	logger.Level = level

	opts.config.Log = logger.WithFields(log.Fields{
		"app": "sha1sum",
	})
	return nil
}

// SetFlagsFromEnv sets every flag not given on the command line from
// the environment variable PREFIX_FLAG_NAME, if present.
func SetFlagsFromEnv(fs *pflag.FlagSet, prefix string) (err error) {
	alreadySet := make(map[string]bool)
	fs.Visit(func(f *pflag.Flag) {
		alreadySet[f.Name] = true
	})
	fs.VisitAll(func(f *pflag.Flag) {
		if !alreadySet[f.Name] {
			key := prefix + "_" +
				strings.ToUpper(strings.Replace(f.Name, "-", "_", -1))
			val := os.Getenv(key)
			if val != "" {
				if serr := fs.Set(f.Name, val); serr != nil {
					err = fmt.Errorf("invalid value %q for %s: %v",
						val, key, serr)
				}
			}
		}
	})
	return err
}

func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	cmd := newCommand(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
