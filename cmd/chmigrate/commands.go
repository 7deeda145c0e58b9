/*
Copyright 2024 Alexandre Mahdhaoui

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/alexandremahdhaoui/chmigrate/internal/util/logging"
	"github.com/alexandremahdhaoui/chmigrate/internal/util/tlsutil"
	"github.com/alexandremahdhaoui/chmigrate/pkg/api"
	"github.com/alexandremahdhaoui/chmigrate/pkg/client"
)

const (
	// EndpointEnvKey and TokenEnvKey provide defaults for --endpoint and --token.
	EndpointEnvKey = "CHMIGRATE_ENDPOINT"
	TokenEnvKey    = "CHMIGRATE_TOKEN"

	defaultEndpoint = "http://localhost:30443"
)

type globalOptions struct {
	endpoint string
	token    string
	timeout  time.Duration
	logLevel string
	tls      tlsutil.ClientConfig
}

func (o *globalOptions) client(endpoint string) (client.Client, error) {
	if endpoint == "" {
		endpoint = o.endpoint
	}

	opts := []client.Option{client.WithToken(o.token)}

	if !o.tls.Empty() {
		tlsConfig, err := tlsutil.BuildClientConfig(o.tls)
		if err != nil {
			return nil, err
		}
		opts = append(opts, client.WithTLSConfig(tlsConfig))
	}

	return client.New(endpoint, opts...), nil
}

func (o *globalOptions) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	if o.timeout <= 0 {
		return context.WithCancel(cmd.Context())
	}
	return context.WithTimeout(cmd.Context(), o.timeout)
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   Name,
		Short: "chmigrate - live migration of Cloud Hypervisor domains",
		Long: `chmigrate drives the chmigrated daemons of a pool of hosts.

A migration runs the five phases of the peer-to-peer protocol: begin on the
source, prepare on the destination, perform on the source, finish on the
destination and confirm on the source.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logging.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			_, err = logging.Setup(logging.Options{Development: true, Level: level})
			return err
		},
	}

	cmd.SetOut(out)

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.endpoint, "endpoint", envOr(EndpointEnvKey, defaultEndpoint), "chmigrated endpoint")
	flags.StringVar(&opts.token, "token", os.Getenv(TokenEnvKey), "bearer token of the chmigrated API")
	flags.DurationVar(&opts.timeout, "timeout", 0, "overall deadline of the command (0 for none)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flags.StringVar(&opts.tls.CAPath, "ca", "", "CA certificate verifying the chmigrated servers")
	flags.StringVar(&opts.tls.CertPath, "cert", "", "client certificate")
	flags.StringVar(&opts.tls.KeyPath, "key", "", "client private key")
	flags.StringVar(&opts.tls.ServerName, "tls-server-name", "", "name verified in the server certificates")

	cmd.AddCommand(
		newListCmd(opts),
		newGetCmd(opts),
		newDefineCmd(opts),
		newDestroyCmd(opts),
		newMigrateCmd(opts),
		newCertsCmd(),
		newVersionCmd(),
	)

	return cmd
}

func newListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the domains of a host",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			c, err := opts.client("")
			if err != nil {
				return err
			}

			domains, err := c.ListDomains(ctx)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tNAME\tSTATE\tJOB\tMIGRATION")
			for _, d := range domains {
				id := "-"
				if d.ID >= 0 {
					id = fmt.Sprint(d.ID)
				}

				migration := "-"
				if d.Migration != nil {
					migration = d.Migration.Role + "/" + d.Migration.Phase
				}

				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", id, d.Name, d.State, d.Job, migration)
			}

			return w.Flush()
		},
	}
}

func newGetCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get NAME",
		Short: "Show a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			c, err := opts.client("")
			if err != nil {
				return err
			}

			d, err := c.GetDomain(ctx, args[0])
			if err != nil {
				return err
			}

			b, err := yaml.Marshal(d)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}

func newDefineCmd(opts *globalOptions) *cobra.Command {
	var (
		apiSocket  string
		persistent bool
	)

	cmd := &cobra.Command{
		Use:   "define FILE",
		Short: "Register a running domain from its definition document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading definition: %w", err)
			}

			ctx, cancel := opts.context(cmd)
			defer cancel()

			c, err := opts.client("")
			if err != nil {
				return err
			}

			h, err := c.DefineDomain(ctx, api.DefineRequest{
				Definition: string(doc),
				APISocket:  apiSocket,
				Persistent: persistent,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Domain %q defined with id %d (uuid %s)\n", h.Name, h.ID, h.UUID)
			return err
		},
	}

	cmd.Flags().StringVar(&apiSocket, "api-socket", "", "API socket of the running hypervisor (default: the daemon state dir)")
	cmd.Flags().BoolVar(&persistent, "persistent", false, "keep the definition once the domain stops")

	return cmd
}

func newDestroyCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "destroy NAME",
		Short: "Stop a domain and abandon its in-flight migration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			c, err := opts.client("")
			if err != nil {
				return err
			}

			if err := c.DestroyDomain(ctx, args[0]); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Domain %q destroyed\n", args[0])
			return err
		},
	}
}

func newMigrateCmd(opts *globalOptions) *cobra.Command {
	var (
		to             string
		destName       string
		definitionFile string
		paused         bool
	)

	cmd := &cobra.Command{
		Use:   "migrate NAME --to ENDPOINT",
		Short: "Live migrate a running domain to another host",
		Long: `Live migrate a running domain from --endpoint to --to.

When a phase fails, the destination is aborted and the domain resumes on the
source.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSuffix(to, "/") == strings.TrimSuffix(opts.endpoint, "/") {
				return fmt.Errorf("--to must differ from --endpoint")
			}

			var definition string
			if definitionFile != "" {
				b, err := os.ReadFile(definitionFile)
				if err != nil {
					return fmt.Errorf("reading definition: %w", err)
				}
				definition = string(b)
			}

			ctx, cancel := opts.context(cmd)
			defer cancel()

			src, err := opts.client("")
			if err != nil {
				return err
			}

			dst, err := opts.client(to)
			if err != nil {
				return err
			}

			h, err := client.Migrate(ctx, src, dst, args[0], client.MigrateOptions{
				DestinationName: destName,
				Definition:      definition,
				Paused:          paused,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Domain %q migrated to %s as %q (id %d)\n", args[0], to, h.Name, h.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "chmigrated endpoint of the destination host")
	cmd.Flags().StringVar(&destName, "dname", "", "name of the domain on the destination")
	cmd.Flags().StringVar(&definitionFile, "xml", "", "definition document replacing the live definition")
	cmd.Flags().BoolVar(&paused, "paused", false, "leave the domain paused on the destination")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (%s) %s\n", Name, Version, CommitSHA, BuildTimestamp)
			return err
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
