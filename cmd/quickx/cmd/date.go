package cmd

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/msto63/quickx/foundation/utils/datex"
	"github.com/msto63/quickx/foundation/utils/timex"
)

func newDateCommand(a *app) *cobra.Command {
	dateCmd := &cobra.Command{
		Use:   "date",
		Short: "Calendar date arithmetic",
		Long: `Calendar date arithmetic on ISO dates (2006-01-02).

Every date argument also accepts "today" in the configured timezone.`,
	}

	dateCmd.AddCommand(
		newWeekdayStepCommand(a, "next", "Next occurrence of a weekday after the date", datex.Next, datex.NextOrSame),
		newWeekdayStepCommand(a, "previous", "Previous occurrence of a weekday before the date", datex.Previous, datex.PreviousOrSame),
		newAddBusinessDaysCommand(a),
		newBusinessDaysCommand(a),
		newWeekCommand(a),
		newMonthCommand(a),
	)
	return dateCmd
}

type weekdayStep func(civil.Date, time.Weekday) civil.Date

func newWeekdayStepCommand(a *app, name, short string, strict, orSame weekdayStep) *cobra.Command {
	var allowSame bool

	c := &cobra.Command{
		Use:   name + " <date> <weekday>",
		Short: short,
		Args:  cobra.ExactArgs(2),
	}
	c.RunE = a.run("date."+name, func(cmd *cobra.Command, args []string) error {
		d, err := a.parseDate(args[0])
		if err != nil {
			return err
		}
		wd, err := timex.ParseWeekday(args[1])
		if err != nil {
			return err
		}

		step := strict
		if allowSame {
			step = orSame
		}
		fmt.Fprintln(cmd.OutOrStdout(), datex.ToISOString(step(d, wd)))
		return nil
	})
	c.Flags().BoolVar(&allowSame, "or-same", false, "return the date itself when it already falls on the weekday")
	return c
}

func newAddBusinessDaysCommand(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "add-business-days <date> <n>",
		Short: "Step n business days forward (or backward for negative n)",
		Args:  cobra.ExactArgs(2),
	}
	c.RunE = a.run("date.add-business-days", func(cmd *cobra.Command, args []string) error {
		d, err := a.parseDate(args[0])
		if err != nil {
			return err
		}
		n, err := parseInt("add-business-days", "n", args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), datex.ToISOString(datex.AddBusinessDays(d, n)))
		return nil
	})
	// negative counts must not be taken for flags
	c.Flags().SetInterspersed(false)
	return c
}

func newBusinessDaysCommand(a *app) *cobra.Command {
	var (
		inclusive bool
		list      bool
	)

	c := &cobra.Command{
		Use:   "business-days <from> <to>",
		Short: "Count (or list) the business days between two dates",
		Long: `Counts the Monday to Friday days between two dates. The order of the
arguments does not matter. With --list every business day of the closed range
is printed instead, in ascending order.`,
		Args: cobra.ExactArgs(2),
	}
	c.RunE = a.run("date.business-days", func(cmd *cobra.Command, args []string) error {
		from, err := a.parseDate(args[0])
		if err != nil {
			return err
		}
		to, err := a.parseDate(args[1])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if list {
			for d := range datex.BusinessDays(from, to) {
				fmt.Fprintln(out, datex.ToISOString(d))
			}
			return nil
		}
		fmt.Fprintln(out, datex.BusinessDaysBetween(from, to, inclusive))
		return nil
	})
	c.Flags().BoolVar(&inclusive, "inclusive", false, "count both end dates")
	c.Flags().BoolVar(&list, "list", false, "list the business days of the closed range")
	return c
}

func newWeekCommand(a *app) *cobra.Command {
	var start string

	c := &cobra.Command{
		Use:   "week <date>",
		Short: "Show the week containing the date",
		Args:  cobra.ExactArgs(1),
	}
	c.RunE = a.run("date.week", func(cmd *cobra.Command, args []string) error {
		d, err := a.parseDate(args[0])
		if err != nil {
			return err
		}
		ws, err := a.weekStart(start)
		if err != nil {
			return err
		}

		st := newCalendarStyles(lipgloss.NewRenderer(cmd.OutOrStdout()))
		first := datex.StartOfWeek(d, ws)
		fmt.Fprintln(cmd.OutOrStdout(), st.title.Render(fmt.Sprintf("%s to %s", datex.ToISOString(first), datex.ToISOString(datex.EndOfWeek(d, ws)))))
		fmt.Fprintln(cmd.OutOrStdout(), renderWeekHeader(st, ws))
		fmt.Fprintln(cmd.OutOrStdout(), renderWeek(st, first, d, nil))
		return nil
	})
	c.Flags().StringVar(&start, "start", "", "first day of the week (default: week_start setting)")
	return c
}

func newMonthCommand(a *app) *cobra.Command {
	var start string

	c := &cobra.Command{
		Use:   "month <date>",
		Short: "Show the month containing the date",
		Args:  cobra.ExactArgs(1),
	}
	c.RunE = a.run("date.month", func(cmd *cobra.Command, args []string) error {
		d, err := a.parseDate(args[0])
		if err != nil {
			return err
		}
		ws, err := a.weekStart(start)
		if err != nil {
			return err
		}

		first, last := datex.FirstDayOfMonth(d), datex.LastDayOfMonth(d)
		st := newCalendarStyles(lipgloss.NewRenderer(cmd.OutOrStdout()))
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, st.title.Render(fmt.Sprintf("%s %d", d.Month, d.Year)))
		fmt.Fprintln(out, renderWeekHeader(st, ws))
		for w := datex.StartOfWeek(first, ws); !w.After(last); w = w.AddDays(7) {
			fmt.Fprintln(out, renderWeek(st, w, d, &d.Month))
		}
		fmt.Fprintf(out, "first: %s  last: %s  business days: %d\n",
			datex.ToISOString(first), datex.ToISOString(last), datex.BusinessDaysBetween(first, last, true))
		return nil
	})
	c.Flags().StringVar(&start, "start", "", "first day of the week (default: week_start setting)")
	return c
}

// weekStart returns the flag value when given, otherwise the configured day
func (a *app) weekStart(flag string) (time.Weekday, error) {
	if flag == "" {
		return a.settings.WeekStart, nil
	}
	return timex.ParseWeekday(flag)
}
