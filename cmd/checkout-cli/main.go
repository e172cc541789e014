package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/DanielPopoola/checkout-sdk/internal/domain"
	"github.com/DanielPopoola/checkout-sdk/internal/vault"
	"github.com/DanielPopoola/checkout-sdk/sdk"
	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "checkout-cli",
		Short:         "Drive checkout sessions against the payments backend",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("secure-token", "", "Secure token (minted from CHECKOUT_SERVER__SECRET_API_KEY when empty)")
	rootCmd.PersistentFlags().String("email", "", "Customer email")

	rootCmd.AddCommand(payCmd())
	rootCmd.AddCommand(enrollCmd())
	rootCmd.AddCommand(methodsCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, describe(err))
		os.Exit(1)
	}
}

// env loads the configuration and resolves the secure token for a command.
type env struct {
	cfg         *sdk.Config
	secureToken string
	customer    *sdk.Customer
	logger      *slog.Logger
}

func loadEnv(ctx context.Context, cmd *cobra.Command, needToken bool) (*env, error) {
	cfg, err := sdk.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger := cfg.Logger.NewLogger()

	token, _ := cmd.Flags().GetString("secure-token")
	if token == "" && needToken {
		token, err = sdk.SecureToken(ctx, cfg, cfg.Server.SecretAPIKey, sdk.WithLogger(logger))
		if err != nil {
			return nil, fmt.Errorf("mint secure token: %w", err)
		}
	}

	e := &env{cfg: cfg, secureToken: token, logger: logger}
	if email, _ := cmd.Flags().GetString("email"); email != "" {
		e.customer = &sdk.Customer{Email: email}
	}
	return e, nil
}

// tokenCollector stands in for a card form: the card was tokenized
// elsewhere and only its vault id is known.
type tokenCollector string

func (c tokenCollector) Collect(context.Context) (*vault.CollectResult, error) {
	if c == "" {
		return nil, vault.ErrIncompleteInputs
	}
	return &vault.CollectResult{
		Records: []vault.Record{{Fields: domain.CardFields{SkyflowID: string(c)}}},
	}, nil
}

func describe(err error) string {
	if ce, ok := domain.IsCheckoutError(err); ok {
		if ce.Err != nil {
			return fmt.Sprintf("%s: %s (%v)", ce.Code, ce.Message, ce.Err)
		}
		return fmt.Sprintf("%s: %s", ce.Code, ce.Message)
	}
	return err.Error()
}
