package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding"

	"github.com/msto63/quickx/foundation/core/i18n"
	"github.com/msto63/quickx/foundation/utils/stringx"
)

func newTextCommand(a *app) *cobra.Command {
	textCmd := &cobra.Command{
		Use:   "text",
		Short: "String shaping",
	}

	textCmd.AddCommand(
		newSliceCommand(a, "left", "First n characters", stringx.Left, stringx.LeftOrError),
		newSliceCommand(a, "right", "Last n characters", stringx.Right, stringx.RightOrError),
		newBetweenCommand(a),
		newBase64Command(a),
		newLinesCommand(a),
		newFormatCommand(a),
	)
	return textCmd
}

func newSliceCommand(a *app, name, short string, lenient func(string, int) string, strict func(string, int) (string, error)) *cobra.Command {
	var strictMode bool

	c := &cobra.Command{
		Use:   name + " <text> <n>",
		Short: short,
		Long: short + `. Lengths count characters, not bytes. Without --strict a
length beyond the text returns the whole text.`,
		Args: cobra.ExactArgs(2),
	}
	c.RunE = a.run("text."+name, func(cmd *cobra.Command, args []string) error {
		n, err := parseInt(name, "n", args[1])
		if err != nil {
			return err
		}

		result := lenient(args[0], n)
		if strictMode {
			if result, err = strict(args[0], n); err != nil {
				return err
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	})
	c.Flags().BoolVar(&strictMode, "strict", false, "fail when n exceeds the text length")
	c.Flags().SetInterspersed(false)
	return c
}

func newBetweenCommand(a *app) *cobra.Command {
	var strictMode bool

	c := &cobra.Command{
		Use:   "between <text> <start> <end>",
		Short: "Text between the first start delimiter and the next end delimiter",
		Args:  cobra.ExactArgs(3),
	}
	c.RunE = a.run("text.between", func(cmd *cobra.Command, args []string) error {
		result := stringx.Between(args[0], args[1], args[2])
		if strictMode {
			var err error
			if result, err = stringx.BetweenOrError(args[0], args[1], args[2]); err != nil {
				return err
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	})
	c.Flags().BoolVar(&strictMode, "strict", false, "fail when a delimiter is missing")
	return c
}

func newBase64Command(a *app) *cobra.Command {
	var encName string

	base64Cmd := &cobra.Command{
		Use:   "base64",
		Short: "Base64 with a selectable text encoding",
	}
	base64Cmd.PersistentFlags().StringVar(&encName, "encoding", "utf-8", "text encoding (WHATWG name such as utf-16le or iso-8859-1)")

	lookup := func() (encoding.Encoding, error) {
		return stringx.LookupEncoding(encName)
	}

	encodeCmd := &cobra.Command{
		Use:   "encode <text>",
		Short: "Encode text to base64",
		Args:  cobra.ExactArgs(1),
	}
	encodeCmd.RunE = a.run("text.base64.encode", func(cmd *cobra.Command, args []string) error {
		enc, err := lookup()
		if err != nil {
			return err
		}
		out, err := stringx.ToBase64(args[0], enc)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	})

	decodeCmd := &cobra.Command{
		Use:   "decode <base64>",
		Short: "Decode base64 to text",
		Args:  cobra.ExactArgs(1),
	}
	decodeCmd.RunE = a.run("text.base64.decode", func(cmd *cobra.Command, args []string) error {
		enc, err := lookup()
		if err != nil {
			return err
		}
		out, err := stringx.FromBase64(args[0], enc)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	})

	base64Cmd.AddCommand(encodeCmd, decodeCmd)
	return base64Cmd
}

func newLinesCommand(a *app) *cobra.Command {
	var normalize bool

	c := &cobra.Command{
		Use:   "lines <text>",
		Short: "Split text on any line ending",
		Long: `Prints every line of the text with its number. With --normalize the
text is printed quoted with all line endings replaced by the newline setting.`,
		Args: cobra.ExactArgs(1),
	}
	c.RunE = a.run("text.lines", func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if normalize {
			fmt.Fprintf(out, "%q\n", stringx.NormalizeLineEndings(args[0], a.settings.Newline))
			return nil
		}
		for i, line := range stringx.SplitLines(args[0]) {
			fmt.Fprintf(out, "%d: %s\n", i+1, line)
		}
		return nil
	})
	c.Flags().BoolVar(&normalize, "normalize", false, "normalize line endings instead of splitting")
	return c
}

func newFormatCommand(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "format <template> [args...]",
		Short: "Composite formatting such as \"{0,-8}|{1:N2}\"",
		Long: `Fills {index[,alignment][:format]} placeholders with the arguments,
using the current culture for numbers. Arguments that parse as integers or
decimals are formatted as numbers.`,
		Args: cobra.MinimumNArgs(1),
	}
	c.RunE = a.run("text.format", func(cmd *cobra.Command, args []string) error {
		values := make([]interface{}, len(args)-1)
		for i, arg := range args[1:] {
			values[i] = formatArgument(arg)
		}
		out, err := stringx.FormatWithLocale(i18n.Current(), args[0], values...)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	})
	c.Flags().SetInterspersed(false)
	return c
}

func formatArgument(s string) interface{} {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if strings.ContainsAny(s, "0123456789") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}
