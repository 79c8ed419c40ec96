package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/quickx/foundation/core/errors"
	"github.com/msto63/quickx/foundation/utils/mathx"
	"github.com/msto63/quickx/foundation/utils/stringx"
)

var roundingModes = []mathx.RoundingMode{
	mathx.RoundingModeHalfUp,
	mathx.RoundingModeHalfEven,
	mathx.RoundingModeHalfDown,
	mathx.RoundingModeUp,
	mathx.RoundingModeDown,
}

func newMathCommand(a *app) *cobra.Command {
	mathCmd := &cobra.Command{
		Use:   "math",
		Short: "Decimal rounding",
	}

	var mode string
	roundCmd := &cobra.Command{
		Use:   "round <value> [digits]",
		Short: "Round a decimal to a number of fractional digits",
		Long: `Rounds exactly, without binary floating point, so 1.005 with two digits
gives 1.01. Ties go away from zero unless --mode says otherwise. Use -- before
negative values.`,
		Args: cobra.RangeArgs(1, 2),
	}
	roundCmd.RunE = a.run("math.round", func(cmd *cobra.Command, args []string) error {
		d, err := mathx.NewDecimal(args[0])
		if err != nil {
			return err
		}
		digits := 0
		if len(args) == 2 {
			if digits, err = parseInt("round", "digits", args[1]); err != nil {
				return err
			}
		}
		m, ok := stringx.ToEnumIgnoreCase(mode, roundingModes)
		if !ok {
			return errors.InvalidInput(module, "round", "mode", mode, "expected half-up, half-even, half-down, up or down")
		}

		var result mathx.Decimal
		if m == mathx.RoundingModeHalfUp {
			result, err = mathx.RoundKeepDigits(d, digits)
			if err != nil {
				return err
			}
		} else {
			result = d.Round(digits, m)
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.StringFixed(digits))
		return nil
	})
	roundCmd.Flags().StringVar(&mode, "mode", mathx.RoundingModeHalfUp.String(), "rounding mode")

	mathCmd.AddCommand(roundCmd)
	return mathCmd
}
