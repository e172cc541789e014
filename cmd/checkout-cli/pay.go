package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/DanielPopoola/checkout-sdk/internal/domain"
	"github.com/DanielPopoola/checkout-sdk/sdk"
	"github.com/spf13/cobra"
)

func payCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pay [amount]",
		Short: "Run a payment with a saved card, a payment method or a card token",
		Args:  cobra.ExactArgs(1),
		RunE:  runPay,
	}

	cmd.Flags().String("card", "", "Saved card id")
	cmd.Flags().String("method", "", "Payment method, e.g. SPEI")
	cmd.Flags().String("card-token", "", "Vault id of a freshly tokenized card")
	cmd.Flags().String("currency", domain.DefaultCurrency, "Currency code")
	cmd.Flags().String("return-url", "", "URL the 3DS challenge returns to")

	return cmd
}

func runPay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	amount, err := domain.ParseAmount(args[0])
	if err != nil {
		return err
	}

	e, err := loadEnv(ctx, cmd, true)
	if err != nil {
		return err
	}
	if e.customer == nil {
		return domain.NewError(domain.ErrCodeInvalidEmail)
	}

	lite, err := sdk.NewLite(e.cfg, sdk.WithLogger(e.logger))
	if err != nil {
		return err
	}

	cardToken, _ := cmd.Flags().GetString("card-token")
	returnURL, _ := cmd.Flags().GetString("return-url")
	if err := lite.Create(ctx, sdk.CreateOptions{
		ReturnURL:   returnURL,
		SecureToken: e.secureToken,
		Customer:    e.customer,
		Collector:   tokenCollector(cardToken),
	}); err != nil {
		return err
	}

	lite.On(sdk.EventShow3DS, func(ev sdk.Event) {
		ch := ev.(sdk.Show3DS).Challenge
		fmt.Printf("Complete the challenge at:\n  %s\nPress Enter when done.\n", ch.RedirectURL)
		go func() {
			_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
			ch.Complete()
		}()
	})

	card, _ := cmd.Flags().GetString("card")
	method, _ := cmd.Flags().GetString("method")
	currency, _ := cmd.Flags().GetString("currency")

	tx, err := lite.Payment(ctx, &sdk.PaymentRequest{
		Customer: *e.customer,
		Cart: domain.Cart{
			Total: amount,
			Items: []domain.Item{{
				Description: "checkout-cli payment",
				Name:        "checkout-cli payment",
				Quantity:    1,
				PriceUnit:   amount,
				AmountTotal: amount,
			}},
		},
		Currency:      currency,
		Card:          card,
		PaymentMethod: method,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Transaction %s: %s (provider %s)\n", tx.ID, tx.TransactionStatus, tx.Provider)
	return nil
}
