package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"smartscore/backend/config"
	"smartscore/backend/services"
	"smartscore/backend/utils"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

type adminOptions struct {
	userID   string
	username string
	password string
}

type courseOptions struct {
	prune bool
}

type seedResult struct {
	added   int
	skipped int
	removed int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "seed",
		Short:        "Seed the SmartScore database",
		SilenceUsage: true,
	}

	var admin adminOptions
	var courses courseOptions

	root.AddCommand(
		newAdminCmd(&admin),
		newCoursesCmd(&courses),
		newAllCmd(&admin, &courses),
	)
	return root
}

func addAdminFlags(cmd *cobra.Command, opts *adminOptions) {
	cmd.Flags().StringVar(&opts.userID, "user-id", "admin", "User ID of the admin account")
	cmd.Flags().StringVar(&opts.username, "username", "admin", "Admin username")
	cmd.Flags().StringVar(&opts.password, "password", "admin123", "Admin password")
}

func addCourseFlags(cmd *cobra.Command, opts *courseOptions) {
	cmd.Flags().BoolVar(&opts.prune, "prune", false, "Remove retired semester 1 electives")
}

func newAdminCmd(opts *adminOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Create the admin account if it does not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(db *gorm.DB, logger *log.Logger) error {
				return seedAdmin(cmd.Context(), services.NewUserService(db, logger), *opts, cmd)
			})
		},
	}
	addAdminFlags(cmd, opts)
	return cmd
}

func newCoursesCmd(opts *courseOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "Insert the MCA course catalogue, skipping codes already present",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(db *gorm.DB, logger *log.Logger) error {
				return runCourses(cmd, services.NewRosterService(db, logger), *opts)
			})
		},
	}
	addCourseFlags(cmd, opts)
	return cmd
}

func newAllCmd(admin *adminOptions, courses *courseOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Seed the admin account and the course catalogue",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(db *gorm.DB, logger *log.Logger) error {
				if err := seedAdmin(cmd.Context(), services.NewUserService(db, logger), *admin, cmd); err != nil {
					return err
				}
				return runCourses(cmd, services.NewRosterService(db, logger), *courses)
			})
		},
	}
	addAdminFlags(cmd, admin)
	addCourseFlags(cmd, courses)
	return cmd
}

func withDB(fn func(db *gorm.DB, logger *log.Logger) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logger := utils.InitLogger(utils.LoggerConfig{Format: cfg.LogFormat})

	db, err := utils.InitDB(cfg)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	return fn(db, logger)
}

func seedAdmin(ctx context.Context, users *services.UserService, opts adminOptions, cmd *cobra.Command) error {
	created, err := users.EnsureAdmin(ctx, opts.userID, opts.username, opts.password)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if created {
		cmd.Printf("User '%s' created successfully\n", opts.username)
	} else {
		cmd.Printf("User '%s' already exists\n", opts.username)
	}
	return nil
}

func runCourses(cmd *cobra.Command, roster *services.RosterService, opts courseOptions) error {
	res, err := seedCourses(cmd.Context(), roster, opts.prune)
	if err != nil {
		return err
	}
	cmd.Printf("Courses: %d added, %d skipped, %d removed\n", res.added, res.skipped, res.removed)
	return nil
}

// seedCourses inserts the catalogue and, with prune, deletes retired codes.
// Codes already in the table are left untouched.
func seedCourses(ctx context.Context, roster *services.RosterService, prune bool) (seedResult, error) {
	var res seedResult

	if prune {
		for _, code := range retiredCourses {
			err := roster.DeleteCourse(ctx, code)
			if err == nil {
				res.removed++
				continue
			}
			if services.KindOf(err) != services.KindNotFound {
				return res, err
			}
		}
	}

	for _, course := range mcaCourses {
		err := roster.CreateCourse(ctx, &course)
		switch {
		case err == nil:
			res.added++
		case services.KindOf(err) == services.KindDuplicateKey:
			res.skipped++
		default:
			return res, err
		}
	}
	return res, nil
}
