package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/stellarnotes/internal/service"
)

func newUserCommand(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users that annotations can belong to",
	}

	cmd.AddCommand(newUserAddCommand(out))
	cmd.AddCommand(newUserDeleteCommand(out))
	return cmd
}

func newUserAddCommand(out io.Writer) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a user if the username is free",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
				return usageError("--username and --password are required")
			}

			rt, err := newRuntime(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.Close()

			created, err := service.NewUserService(rt.DB).Ensure(username, password)
			if err != nil {
				return err
			}
			if !created {
				_, err = fmt.Fprintf(out, "user %s already exists\n", strings.TrimSpace(username))
				return err
			}
			_, err = fmt.Fprintf(out, "created user %s\n", strings.TrimSpace(username))
			return err
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&password, "password", "", "Password, stored as a bcrypt hash")
	return cmd
}

func newUserDeleteCommand(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <username>",
		Short: "Delete a user together with their annotations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.Close()

			if err := service.NewUserService(rt.DB).Delete(args[0]); err != nil {
				if errors.Is(err, service.ErrUserNotFound) {
					return notFoundError(fmt.Sprintf("user %s not found", args[0]))
				}
				return err
			}
			_, err = fmt.Fprintf(out, "deleted user %s\n", args[0])
			return err
		},
	}
}
