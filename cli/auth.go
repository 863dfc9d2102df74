package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"FitBuddyGo/config"
	"FitBuddyGo/models"
)

func newLoginCommand(deps *Deps) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to your FitBuddy account",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := deps.API.Login(cmd.Context(), models.LoginRequest{
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}
			if err := deps.Store.SaveIdentity(user); err != nil {
				return err
			}
			deps.API.SetToken(user.Token)
			config.Logger.Infow("登录成功", "userID", user.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", user.GetDisplayName())
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCommand(deps *Deps) *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new FitBuddy account",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := deps.API.Register(cmd.Context(), models.RegisterRequest{
				Username: username,
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}
			if err := deps.Store.SaveIdentity(user); err != nil {
				return err
			}
			deps.API.SetToken(user.Token)
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s\n", user.GetDisplayName())
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "display name")
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the saved identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := deps.Store.ClearIdentity(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}
