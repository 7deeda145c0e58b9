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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexandremahdhaoui/chmigrate/internal/util/certutil"
)

func newCertsCmd() *cobra.Command {
	var (
		dir      string
		hosts    []string
		clients  []string
		validity time.Duration
	)

	cmd := &cobra.Command{
		Use:   "certs --dir DIR --host HOST...",
		Short: "Generate a CA and the certificates of a pool of hosts",
		Long: `Generate a CA, a serving certificate for every --host and a client
certificate for every --client.

The files are written to DIR as ca.crt, <host>.crt/<host>.key and
<client>.crt/<client>.key.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(hosts) == 0 {
				return errors.New("at least one --host is required")
			}

			if err := os.MkdirAll(dir, 0o750); err != nil {
				return err
			}

			ca, err := certutil.NewCA(validity)
			if err != nil {
				return err
			}

			caPath := filepath.Join(dir, "ca.crt")
			if err := os.WriteFile(caPath, ca.Cert(), 0o644); err != nil { //nolint:gosec // certificates are public
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), caPath)

			for _, host := range hosts {
				kp, err := ca.NewServerKeyPair(host)
				if err != nil {
					return err
				}
				if err := printKeyPair(cmd, kp, dir, host); err != nil {
					return err
				}
			}

			for _, name := range clients {
				kp, err := ca.NewClientKeyPair(name)
				if err != nil {
					return err
				}
				if err := printKeyPair(cmd, kp, dir, name); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "output directory")
	cmd.Flags().StringSliceVar(&hosts, "host", nil, "DNS name or IP address of a chmigrated host")
	cmd.Flags().StringSliceVar(&clients, "client", []string{"chmigrate"}, "common name of a client certificate")
	cmd.Flags().DurationVar(&validity, "validity", 365*24*time.Hour, "lifetime of the certificates")

	return cmd
}

func printKeyPair(cmd *cobra.Command, kp certutil.KeyPair, dir, name string) error {
	keyPath, certPath, err := kp.WriteFiles(dir, name)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", certPath, keyPath)
	return err
}
