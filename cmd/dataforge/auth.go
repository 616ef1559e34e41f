package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCommand(a *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				var err error
				if password, err = readSecret(cmd, "Password: "); err != nil {
					return err
				}
			}

			if err := a.session.Login(cmd.Context(), email, password); err != nil {
				return err
			}

			identity, _ := a.session.Identity()
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", identity.Email)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password (prompted when omitted)")
	cmd.MarkFlagRequired("email")
	return cmd
}

func newRegisterCommand(a *app) *cobra.Command {
	var email, password, name string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				var err error
				if password, err = readSecret(cmd, "Password: "); err != nil {
					return err
				}
			}

			if err := a.session.Register(cmd.Context(), email, password, name); err != nil {
				return err
			}

			identity, _ := a.session.Identity()
			fmt.Fprintf(cmd.OutOrStdout(), "Registered and logged in as %s\n", identity.Email)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password (prompted when omitted)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "display name (optional)")
	cmd.MarkFlagRequired("email")
	return cmd
}

func newLogoutCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.session.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func newWhoamiCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the identity decoded from the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}

			identity, _ := a.session.Identity()
			fmt.Fprintf(cmd.OutOrStdout(), "ID:    %d\n", identity.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Email: %s\n", identity.Email)
			if identity.Name != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Name:  %s\n", identity.Name)
			}
			return nil
		},
	}
}
