package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"FitBuddyGo/models"
)

func newProfileCommand(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show your personalization profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := deps.requireUser()
			if err != nil {
				return err
			}
			profile, err := deps.Profile.Load(cmd.Context(), user)
			if err != nil {
				return err
			}
			renderProfile(cmd.OutOrStdout(), profile)
			return nil
		},
	}

	cmd.AddCommand(newProfileSetCommand(deps))
	return cmd
}

func newProfileSetCommand(deps *Deps) *cobra.Command {
	var (
		username     string
		age          int
		gender       string
		goal         string
		targetWeight float64
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := deps.requireUser()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			// 在现有资料上套用改动后整体保存（后端为 upsert 语义）
			profile, err := deps.Profile.Load(ctx, user)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("username") {
				profile.Username = username
			}
			if cmd.Flags().Changed("age") {
				if age <= 0 {
					profile.Age = nil
				} else {
					profile.Age = &age
				}
			}
			if cmd.Flags().Changed("gender") {
				profile.Gender = gender
			}
			if cmd.Flags().Changed("goal") {
				g := models.PrimaryGoal(strings.ToUpper(goal))
				if !g.IsValid() {
					return fmt.Errorf("invalid goal %q, expected one of LOSE_WEIGHT, BUILD_MUSCLE, IMPROVE_FITNESS, MAINTAIN_HEALTH", goal)
				}
				profile.PrimaryGoal = g
			}
			if cmd.Flags().Changed("target-weight") {
				if targetWeight <= 0 {
					profile.TargetWeight = nil
				} else {
					profile.TargetWeight = &targetWeight
				}
			}

			saved, err := deps.Profile.Save(ctx, user.ID, profile)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile saved")
			renderProfile(cmd.OutOrStdout(), *saved)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "display name")
	cmd.Flags().IntVar(&age, "age", 0, "age (0 clears)")
	cmd.Flags().StringVar(&gender, "gender", "", "gender")
	cmd.Flags().StringVar(&goal, "goal", "", "primary goal: LOSE_WEIGHT|BUILD_MUSCLE|IMPROVE_FITNESS|MAINTAIN_HEALTH")
	cmd.Flags().Float64Var(&targetWeight, "target-weight", 0, "target weight (0 clears)")
	return cmd
}
