package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/quickx/foundation/utils/timex"
)

func newTimeCommand(a *app) *cobra.Command {
	timeCmd := &cobra.Command{
		Use:   "time",
		Short: "Instant arithmetic",
		Long: `Instant arithmetic on RFC 3339 timestamps (2006-01-02T15:04:05Z07:00).

Every timestamp argument also accepts "now" in the configured timezone.
Results are printed with seven fractional digits.`,
	}

	timeCmd.AddCommand(
		newConvertCommand(a),
		newIntervalCommand(a, "truncate", "Round down to a multiple of the interval", timex.Truncate),
		newIntervalCommand(a, "round", "Round to the nearest multiple of the interval (ties to even)", timex.Round),
		newUnixCommand(a),
	)
	return timeCmd
}

func newConvertCommand(a *app) *cobra.Command {
	var from, to string

	c := &cobra.Command{
		Use:   "convert <timestamp>",
		Short: "Convert a timestamp to another timezone",
		Long: `Without --from the moment itself is shown in the target zone. With
--from the wall clock of the timestamp is read as a time in that zone first,
so "2024-01-15T09:00:00Z --from Europe/Berlin" means 09:00 in Berlin.`,
		Args: cobra.ExactArgs(1),
	}
	c.RunE = a.run("time.convert", func(cmd *cobra.Command, args []string) error {
		t, err := a.parseInstant(args[0])
		if err != nil {
			return err
		}

		target := to
		if target == "" {
			target = a.location().String()
		}

		var converted time.Time
		if from == "" {
			converted, err = timex.ConvertToTimeZone(t, target)
		} else {
			converted, err = timex.ConvertTimeZoneByID(t, from, target)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), timex.ToISOString(converted))
		return nil
	})
	c.Flags().StringVar(&from, "from", "", "timezone the wall clock is read in")
	c.Flags().StringVar(&to, "to", "", "target timezone (default: timezone setting)")
	return c
}

type intervalFunc func(time.Time, time.Duration) (time.Time, error)

func newIntervalCommand(a *app, name, short string, fn intervalFunc) *cobra.Command {
	c := &cobra.Command{
		Use:   name + " <timestamp> <interval>",
		Short: short,
		Args:  cobra.ExactArgs(2),
	}
	c.RunE = a.run("time."+name, func(cmd *cobra.Command, args []string) error {
		t, err := a.parseInstant(args[0])
		if err != nil {
			return err
		}
		d, err := parseDuration(name, args[1])
		if err != nil {
			return err
		}
		result, err := fn(t, d)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), timex.ToISOString(result))
		return nil
	})
	// negative intervals must reach the library check
	c.Flags().SetInterspersed(false)
	return c
}

func newUnixCommand(a *app) *cobra.Command {
	var millis bool

	c := &cobra.Command{
		Use:   "unix <timestamp>",
		Short: "Seconds (or milliseconds) since the Unix epoch",
		Args:  cobra.ExactArgs(1),
	}
	c.RunE = a.run("time.unix", func(cmd *cobra.Command, args []string) error {
		t, err := a.parseInstant(args[0])
		if err != nil {
			return err
		}
		if millis {
			fmt.Fprintln(cmd.OutOrStdout(), timex.ToUnixMilliseconds(t))
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), timex.ToUnixSeconds(t))
		}
		return nil
	})
	c.Flags().BoolVar(&millis, "ms", false, "milliseconds instead of seconds")
	return c
}
