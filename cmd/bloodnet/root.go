package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"bloodnet/internal/directory/catalog"
	"bloodnet/internal/directory/service"
	"bloodnet/internal/platform/logger"
	"bloodnet/pkg/client"
)

type rootOptions struct {
	server   string
	seed     string
	timeout  time.Duration
	logLevel string
	fallback bool
	clock    func() time.Time
}

func newRootCmd(clock func() time.Time) *cobra.Command {
	opts := &rootOptions{clock: clock}

	cmd := &cobra.Command{
		Use:           "bloodnet",
		Short:         "Tamil Nadu blood donor directory",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.server, "server", "", "base URL of a running bloodnet server; empty queries the local catalog")
	flags.StringVar(&opts.seed, "seed", "", "catalog YAML file (default: embedded seed)")
	flags.DurationVar(&opts.timeout, "timeout", 10*time.Second, "timeout for remote requests")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level for query commands")
	flags.BoolVar(&opts.fallback, "fallback-local", false, "answer from the local catalog when --server is unreachable")

	cmd.AddCommand(
		newServeCmd(opts),
		newDistrictsCmd(opts),
		newDonorsCmd(opts),
		newSearchCmd(opts),
		newRecencyCmd(opts),
		newUrgentCmd(opts),
		newRequestsCmd(opts),
		newFacilitiesCmd(opts),
		newExportCmd(opts),
		newLinksCmd(),
		newLintCmd(opts),
		newTranslateCmd(),
	)
	return cmd
}

// backend resolves the data source for query commands: the remote server
// when --server is set, otherwise a service over the local catalog.
func (o *rootOptions) backend(cmd *cobra.Command) (backend, error) {
	log, _ := logger.NewWithWriter(cmd.ErrOrStderr(), o.logLevel, "console")
	if o.server == "" {
		local, err := o.local(log)
		if err != nil {
			return nil, err
		}
		return local, nil
	}

	remote := client.New(o.server, client.WithTimeout(o.timeout))
	if !o.fallback {
		return remote, nil
	}
	local, err := o.local(log)
	if err != nil {
		return nil, err
	}
	return newFailoverBackend(remote, local, log), nil
}

func (o *rootOptions) local(log *slog.Logger) (*localBackend, error) {
	c, err := catalog.Load(o.seed)
	if err != nil {
		return nil, err
	}
	svc, err := service.New(c, service.WithLogger(log))
	if err != nil {
		return nil, err
	}
	return &localBackend{service: svc, clock: o.clock}, nil
}
