package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"scratch_backend/internal/app"
	"scratch_backend/internal/catalog"
	"scratch_backend/internal/model"
	"scratch_backend/pkg/logger"
	"scratch_backend/pkg/pass"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "scratch",
		Short:         "Scratch card reward and settlement backend",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(serveCmd(), catalogCmd(), adminCmd())
	return root
}

func serveCmd() *cobra.Command {
	var envFile string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := app.NewApp(envFile).Run(ctx); err != nil {
				logger.Error("server stopped", "error", err)
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "path to the .env file")
	return cmd
}

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Prize catalog tools",
	}

	var file string
	validate := &cobra.Command{
		Use:   "validate",
		Short: "Load and validate a prize catalog, print per-class odds",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := os.Stat(file); err != nil {
				return fmt.Errorf("catalog file: %w", err)
			}
			set, err := catalog.LoadFile(file)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: ok\n", file)
			for _, class := range model.TicketClasses() {
				odds := set[class].Odds()
				fmt.Fprintf(out, "%-9s win rate %6.2f%%  avg wins %.4f  avg tokens %.1f  special %.4f%%\n",
					class, odds.WinRate*100, odds.ExpectedWins, odds.ExpectedTokens, odds.SpecialChance*100)
			}
			return nil
		},
	}
	validate.Flags().StringVar(&file, "file", "catalog.yaml", "catalog YAML file")
	cmd.AddCommand(validate)
	return cmd
}

func adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Operator tools",
	}

	hash := &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print a bcrypt hash usable as ADMIN_PASS",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password := ""
			if len(args) == 1 {
				password = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read password: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}
			if password == "" {
				return errors.New("empty password")
			}

			h, err := pass.HashPassword(password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), h)
			return nil
		},
	}
	cmd.AddCommand(hash)
	return cmd
}
