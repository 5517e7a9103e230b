package main

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/services"
)

const confirmPath = "/pickup/confirm"

var errTokenMismatch = errors.New("token does not match order")

// RootCmd assembles pickupctl and its subcommands.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pickupctl",
		Short: "Operator tool for customer pickup confirmation links",
		Long: `pickupctl derives and checks the capability tokens embedded in
pickup confirmation links, so operators can resend or debug a link
without going through the storefront.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(TokenCmd())
	root.AddCommand(LinkCmd())
	root.AddCommand(VerifyCmd())

	return root
}

// TokenCmd prints the token of one order.
func TokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token <order-id>",
		Short: "Print the pickup token of an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := kernel.NewOrderID(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), services.NewCapabilityToken().Derive(id))
			return nil
		},
	}
}

// LinkCmd prints the confirmation link a customer receives.
func LinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link <order-id>",
		Short: "Print the pickup confirmation link of an order",
		Long: `Print the pickup confirmation link of an order.

The base URL defaults to PUBLIC_BASE_URL.

Usage:
  pickupctl link 1001
  pickupctl link 1001 --base-url https://pickup.example.com`,
		Args: cobra.ExactArgs(1),
		RunE: runLink,
	}

	cmd.Flags().String("base-url", os.Getenv("PUBLIC_BASE_URL"), "Public base URL of the pickup service")

	return cmd
}

func runLink(cmd *cobra.Command, args []string) error {
	baseURL, _ := cmd.Flags().GetString("base-url")
	link, err := confirmationLink(baseURL, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), link)
	return nil
}

func confirmationLink(baseURL, rawOrderID string) (string, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return "", errors.New("base url is required: pass --base-url or set PUBLIC_BASE_URL")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return "", fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}

	id, err := kernel.NewOrderID(rawOrderID)
	if err != nil {
		return "", err
	}

	query := url.Values{}
	query.Set("order_id", id.String())
	query.Set("token", services.NewCapabilityToken().Derive(id))
	return baseURL + confirmPath + "?" + query.Encode(), nil
}

// VerifyCmd checks a token presented by a customer.
func VerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <order-id> <token>",
		Short: "Check whether a token belongs to an order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := kernel.NewOrderID(args[0])
			if err != nil {
				return err
			}

			if !services.NewCapabilityToken().Verify(id, strings.TrimSpace(args[1])) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s order %s\n", color.New(color.FgRed).Sprint("INVALID"), id)
				return errTokenMismatch
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s order %s\n", color.New(color.FgGreen).Sprint("OK"), id)
			return nil
		},
	}
}
