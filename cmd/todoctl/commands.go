package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"gofiber-todo/domain/dto"
	"gofiber-todo/domain/services"
	"gofiber-todo/infrastructure/persistence"
)

// runtime dependencies ที่ทุก command ใช้
type runtime struct {
	db    *gorm.DB
	users services.UserService
	tasks services.TaskService
}

type loader func() (*runtime, func(), error)

func newRootCmd(load loader) *cobra.Command {
	root := &cobra.Command{
		Use:           "todoctl",
		Short:         "Administrative commands for the todo service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newMigrateCmd(load),
		newCreateUserCmd(load),
		newDeleteUserCmd(load),
		newTasksCmd(load),
	)
	return root
}

// withRuntime เปิด runtime ให้ command แล้วปิดเมื่อจบ
func withRuntime(load loader, fn func(cmd *cobra.Command, rt *runtime) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		rt, cleanup, err := load()
		if err != nil {
			return err
		}
		if cleanup != nil {
			defer cleanup()
		}
		return fn(cmd, rt)
	}
}

func newMigrateCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: withRuntime(load, func(cmd *cobra.Command, rt *runtime) error {
			if err := persistence.Migrate(rt.db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "database schema is up to date")
			return nil
		}),
	}
}

func newCreateUserCmd(load loader) *cobra.Command {
	var username, password, email string

	cmd := &cobra.Command{
		Use:   "createuser",
		Short: "Create a user account",
		RunE: withRuntime(load, func(cmd *cobra.Command, rt *runtime) error {
			user, err := rt.users.Register(cmd.Context(), &dto.RegisterRequest{
				Username:  username,
				Email:     email,
				Password1: password,
				Password2: password,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created user %s (%s)\n", user.Username, user.ID)
			return nil
		}),
	}

	cmd.Flags().StringVar(&username, "username", "", "username (required)")
	cmd.Flags().StringVar(&password, "password", "", "password (required)")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newDeleteUserCmd(load loader) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "deleteuser",
		Short: "Delete a user and all of their tasks",
		RunE: withRuntime(load, func(cmd *cobra.Command, rt *runtime) error {
			user, err := rt.users.GetByUsername(cmd.Context(), username)
			if err != nil {
				return err
			}
			if err := rt.users.DeleteUser(cmd.Context(), user.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted user %s\n", user.Username)
			return nil
		}),
	}

	cmd.Flags().StringVar(&username, "username", "", "username (required)")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func newTasksCmd(load loader) *cobra.Command {
	var username, search string

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List the tasks of a user",
		RunE: withRuntime(load, func(cmd *cobra.Command, rt *runtime) error {
			user, err := rt.users.GetByUsername(cmd.Context(), username)
			if err != nil {
				if errors.Is(err, services.ErrUserNotFound) {
					return fmt.Errorf("user %q: %w", username, err)
				}
				return err
			}

			tasks, incomplete, err := rt.tasks.ListTasks(cmd.Context(), user.ID, search)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDONE\tTITLE")
			for _, t := range tasks {
				done := " "
				if t.Complete {
					done = "x"
				}
				fmt.Fprintf(w, "%d\t[%s]\t%s\n", t.ID, done, t.Title)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d incomplete\n", incomplete)
			return nil
		}),
	}

	cmd.Flags().StringVar(&username, "username", "", "username (required)")
	cmd.Flags().StringVar(&search, "search", "", "filter by title")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}
