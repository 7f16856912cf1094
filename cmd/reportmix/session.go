package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gauthierbraillon/reportmix/internal/logging"
	"github.com/gauthierbraillon/reportmix/pkg/session"
)

// newSessionCmd creates the session subcommand.
func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage login sessions",
		Long:  "Issue, verify and revoke session tokens. Sessions are stored in the session directory and survive restarts.",
	}

	cmd.AddCommand(newSessionLoginCmd())
	cmd.AddCommand(newSessionVerifyCmd())
	cmd.AddCommand(newSessionLogoutCmd())

	return cmd
}

func loadSessionStore(cmd *cobra.Command) (*app, session.Store, error) {
	a, err := loadApp(cmd)
	if err != nil {
		return nil, nil, err
	}
	return a, session.NewFileStore(a.cfg.Session.Dir), nil
}

func newSessionLoginCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print a session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, store, err := loadSessionStore(cmd)
			if err != nil {
				return err
			}

			creds := session.Credentials{Username: a.cfg.Auth.Username, Password: a.cfg.Auth.Password}
			sess, err := session.Login(cmd.Context(), store, creds, username, password)
			if err != nil {
				return err
			}

			a.log.WithFields(logging.Fields{"session_id": sess.ID, "username": sess.Username}).Info("session issued")
			fmt.Fprintln(cmd.OutOrStdout(), sess.Token)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newSessionVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <token>",
		Short: "Check whether a session token is valid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := loadSessionStore(cmd)
			if err != nil {
				return err
			}

			ok, err := store.Validate(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("session is not valid")
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Session is valid.")
			return nil
		},
	}
}

func newSessionLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout <token>",
		Short: "Revoke a session token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := loadSessionStore(cmd)
			if err != nil {
				return err
			}

			if err := store.Revoke(cmd.Context(), args[0]); err != nil {
				if errors.Is(err, session.ErrNotFound) {
					return errors.New("session is not valid")
				}
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}
