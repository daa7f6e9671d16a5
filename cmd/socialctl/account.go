package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) signupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signup <username> <email>",
		Short: "Create an account and sign in as it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := c.social.SignUp(args[0], args[1])
			if err != nil {
				return err
			}
			if err := c.writeSession(u.Username); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Signed up as %s\n", u.Username)
			return nil
		},
	}
}

func (c *cli) loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <username> <email>",
		Short: "Sign in with a username and the email it was registered with",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := c.social.LogIn(args[0], args[1])
			if err != nil {
				return err
			}
			if err := c.writeSession(u.Username); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Signed in as %s\n", u.Username)
			return nil
		},
	}
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.clearSession(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "👋 Signed out")
			return nil
		},
	}
}

func (c *cli) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			username, err := c.currentUser()
			if err != nil {
				return err
			}
			if username == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "🤷 Not signed in")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), username)
			return nil
		},
	}
}
