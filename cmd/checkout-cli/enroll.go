package main

import (
	"fmt"

	"github.com/DanielPopoola/checkout-sdk/sdk"
	"github.com/spf13/cobra"
)

func enrollCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enroll [card-token]",
		Short: "Save a tokenized card for the customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			e, err := loadEnv(ctx, cmd, true)
			if err != nil {
				return err
			}

			enrollment, err := sdk.NewEnrollment(e.cfg, sdk.WithLogger(e.logger))
			if err != nil {
				return err
			}
			if err := enrollment.Create(ctx, sdk.CreateOptions{
				SecureToken: e.secureToken,
				Customer:    e.customer,
				Collector:   tokenCollector(args[0]),
			}); err != nil {
				return err
			}

			saved, err := enrollment.SaveCustomerCard(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("%s (%s)\n", enrollment.State().Message, saved.SkyflowID)

			list, _ := cmd.Flags().GetBool("list")
			if !list {
				return nil
			}
			cards, err := enrollment.GetCustomerCards(ctx)
			if err != nil {
				return err
			}
			for _, c := range cards.Cards {
				fmt.Printf("  %s  %s  %s/%s\n", c.Fields.SkyflowID, c.Fields.CardScheme, c.Fields.ExpirationMonth, c.Fields.ExpirationYear)
			}
			return nil
		},
	}

	cmd.Flags().Bool("list", false, "List the customer's cards afterwards")

	return cmd
}
