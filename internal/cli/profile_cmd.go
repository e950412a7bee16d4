package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/npellerin/foulee/internal/cli/formatter"
	"github.com/npellerin/foulee/internal/domain"
	"github.com/npellerin/foulee/internal/planner"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the runner profile",
	}
	cmd.AddCommand(newProfileSetCmd(app), newProfileShowCmd(app))
	return cmd
}

func newProfileSetCmd(app *App) *cobra.Command {
	var (
		name       string
		level      string
		mode       string
		goal       string
		target     string
		days       string
		dayMin     int
		dayMax     int
		spacingMin int
		spacingMax int
		vdot       float64
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Create or update the runner profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if level == "" && app.interactive() {
				if err := runProfileWizard(&name, &level, &goal, &target, &days); err != nil {
					return err
				}
			}
			if level == "" {
				return fmt.Errorf("--level is required (beginner, reprise, intermediate, advanced, expert)")
			}

			p := &domain.Profile{
				Name:         name,
				Level:        domain.ParseLevel(level),
				Mode:         domain.ParseMode(mode),
				Goal:         domain.ParseDistance(goal),
				TargetRun:    planner.ParseLenientDate(target),
				TrainingDays: domain.ParseDaySet(strings.Split(days, ",")),
				DayCountMin:  dayMin,
				DayCountMax:  dayMax,
				SpacingMin:   spacingMin,
				SpacingMax:   spacingMax,
			}
			if vdot > 0 {
				p.VDOT = &vdot
			}

			if err := app.Profiles.Save(ctx, p); err != nil {
				return err
			}
			fmt.Println(formatter.Bold("Profile saved."))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Runner name")
	cmd.Flags().StringVar(&level, "level", "", "Experience level (beginner, reprise, intermediate, advanced, expert)")
	cmd.Flags().StringVar(&mode, "mode", "run", "Training mode (run, trail, bike, walk)")
	cmd.Flags().StringVar(&goal, "goal", "", "Goal race distance (5k, 10k, half, marathon)")
	cmd.Flags().StringVar(&target, "target", "", "Goal race date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&days, "days", "", "Mandatory training days, comma separated (e.g. tue,sun)")
	cmd.Flags().IntVar(&dayMin, "day-min", 0, "Minimum sessions per week")
	cmd.Flags().IntVar(&dayMax, "day-max", 0, "Maximum sessions per week")
	cmd.Flags().IntVar(&spacingMin, "spacing-min", 0, "Minimum days between sessions")
	cmd.Flags().IntVar(&spacingMax, "spacing-max", 0, "Maximum days between sessions")
	cmd.Flags().Float64Var(&vdot, "vdot", 0, "VDOT fitness index")

	return cmd
}

func runProfileWizard(name, level, goal, target, days *string) error {
	dayOptions := make([]huh.Option[string], 0, len(domain.AllDays))
	for _, d := range domain.AllDays {
		dayOptions = append(dayOptions, huh.NewOption(d.String(), strings.ToLower(d.String())))
	}
	var selectedDays []string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(name),
			huh.NewSelect[string]().
				Title("Experience level").
				Options(
					huh.NewOption("Beginner", "beginner"),
					huh.NewOption("Returning after a break", "reprise"),
					huh.NewOption("Intermediate", "intermediate"),
					huh.NewOption("Advanced", "advanced"),
					huh.NewOption("Expert", "expert"),
				).
				Value(level),
			huh.NewSelect[string]().
				Title("Goal race").
				Options(
					huh.NewOption("5K", "5k"),
					huh.NewOption("10K", "10k"),
					huh.NewOption("Half marathon", "half"),
					huh.NewOption("Marathon", "marathon"),
					huh.NewOption("No race planned", ""),
				).
				Value(goal),
			huh.NewInput().
				Title("Race date (YYYY-MM-DD, blank for none)").
				Placeholder("2026-06-14").
				Validate(validateOptionalDate).
				Value(target),
			huh.NewMultiSelect[string]().
				Title("Days you must train on").
				Options(dayOptions...).
				Value(&selectedDays),
		),
	).WithTheme(fouleeHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}
	*days = strings.Join(selectedDays, ",")
	return nil
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display the stored profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profiles.Get(context.Background())
			if err != nil {
				return err
			}

			rows := [][]string{
				{"Name", p.Name},
				{"Level", string(p.Level)},
				{"Mode", string(p.Mode)},
				{"Goal", goalOrNone(p.Goal)},
				{"Race date", dateOrNone(p)},
				{"Training days", strings.Join(p.TrainingDays.Strings(), ", ")},
				{"Sessions/week", fmt.Sprintf("%d-%d", p.DayCountMin, p.DayCountMax)},
				{"Spacing", fmt.Sprintf("%d-%d days", p.SpacingMin, p.SpacingMax)},
				{"VDOT", vdotOrNone(p.VDOT)},
			}

			fmt.Println(formatter.Header("profile"))
			for _, row := range rows {
				fmt.Printf("%s %s\n", formatter.Dim(fmt.Sprintf("%-14s", row[0])), formatter.Bold(row[1]))
			}
			return nil
		},
	}
}

func goalOrNone(d domain.Distance) string {
	if d == "" {
		return "none"
	}
	return string(d)
}

func dateOrNone(p *domain.Profile) string {
	if p.TargetRun == nil {
		return "none"
	}
	return p.TargetRun.Format("2006-01-02")
}

func vdotOrNone(v *float64) string {
	if v == nil {
		return "unknown"
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}
