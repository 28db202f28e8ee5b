package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"gin-user-rpc/internal/core/logger"
	"gin-user-rpc/pkg/client"
	"gin-user-rpc/pkg/contract"
)

type rootOpts struct {
	addr    string
	timeout time.Duration
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOpts{}
	cmd := &cobra.Command{
		Use:           "usersctl",
		Short:         "Manage users through the user API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.addr, "addr", client.DefaultBaseURL, "user API base URL")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "per-call timeout")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log requests")

	cmd.AddCommand(
		newListCmd(opts),
		newGetCmd(opts),
		newCreateCmd(opts),
		newUpdateCmd(opts),
		newDeleteCmd(opts),
	)
	return cmd
}

// run builds the client, bounds the call by --timeout and prints the result.
func (o *rootOpts) run(cmd *cobra.Command, call func(ctx context.Context, c *client.Client) (any, error)) error {
	level := "warn"
	if o.verbose {
		level = "debug"
	}
	l, cleanup := logger.Build(logger.Options{Level: level, Stdout: cmd.ErrOrStderr()})
	defer cleanup()

	c, err := client.New(o.addr, client.WithLogger(l.Named("client")))
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), o.timeout)
	defer cancel()

	out, err := call(ctx, c)
	if err != nil {
		return describe(err)
	}
	return printJSON(cmd.OutOrStdout(), out)
}

func describe(err error) error {
	var se *client.StatusError
	if errors.As(err, &se) {
		if len(se.Body.Issues) == 0 {
			return fmt.Errorf("%s (HTTP %d)", se.Body.Error, se.StatusCode)
		}
		msg := se.Body.Error
		for _, is := range se.Body.Issues {
			msg += fmt.Sprintf("\n  %s: %s", is.Field, is.Message)
		}
		return errors.New(msg)
	}
	if client.IsTransport(err) {
		return fmt.Errorf("request failed: %w", err)
	}
	return err
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid user id %q", s)
	}
	return id, nil
}

func newListCmd(o *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.ListUsers(ctx)
			})
		},
	}
}

func newGetCmd(o *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return o.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.GetUser(ctx, id)
			})
		},
	}
}

func newCreateCmd(o *rootOpts) *cobra.Command {
	var in contract.CreateUserInput
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.CreateUser(ctx, in)
			})
		},
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "user name")
	cmd.Flags().StringVar(&in.Email, "email", "", "user email")
	return cmd
}

func newUpdateCmd(o *rootOpts) *cobra.Command {
	var name, email string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a user's name and/or email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			var in contract.UpdateUserInput
			if cmd.Flags().Changed("name") {
				in.Name = &name
			}
			if cmd.Flags().Changed("email") {
				in.Email = &email
			}
			return o.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.UpdateUser(ctx, id, in)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&email, "email", "", "new email")
	return cmd
}

func newDeleteCmd(o *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return o.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.DeleteUser(ctx, id)
			})
		},
	}
}

