package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/DanielPopoola/checkout-sdk/sdk"
	"github.com/spf13/cobra"
)

func methodsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "methods",
		Short: "List the merchant's active payment methods",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			e, err := loadEnv(ctx, cmd, false)
			if err != nil {
				return err
			}
			lite, err := sdk.NewLite(e.cfg, sdk.WithLogger(e.logger))
			if err != nil {
				return err
			}

			methods, err := lite.GetPaymentMethods(ctx)
			if err != nil {
				return err
			}

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(methods)
			}
			for _, m := range methods {
				fmt.Printf("%-4d %-20s %-12s %s\n", m.Priority, m.PaymentMethod, m.Category, m.Label)
			}
			return nil
		},
	}

	cmd.Flags().BoolP("json", "j", false, "Output as JSON")

	return cmd
}
