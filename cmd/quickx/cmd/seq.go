package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/quickx/foundation/utils/seqx"
)

func newSeqCommand(a *app) *cobra.Command {
	seqCmd := &cobra.Command{
		Use:   "seq",
		Short: "Sequence shaping over the given items",
	}

	pageCmd := &cobra.Command{
		Use:   "page <page> <size> [items...]",
		Short: "Items of one 1-based page",
		Args:  cobra.MinimumNArgs(2),
	}
	pageCmd.RunE = a.run("seq.page", func(cmd *cobra.Command, args []string) error {
		page, err := parseInt("page", "page", args[0])
		if err != nil {
			return err
		}
		size, err := parseInt("page", "size", args[1])
		if err != nil {
			return err
		}
		items, err := seqx.Page(seqx.FromSlice(args[2:]), page, size)
		if err != nil {
			return err
		}
		for item := range items {
			fmt.Fprintln(cmd.OutOrStdout(), item)
		}
		return nil
	})
	pageCmd.Flags().SetInterspersed(false)

	batchCmd := &cobra.Command{
		Use:   "batch <size> [items...]",
		Short: "Group items into batches of size",
		Args:  cobra.MinimumNArgs(1),
	}
	batchCmd.RunE = a.run("seq.batch", func(cmd *cobra.Command, args []string) error {
		size, err := parseInt("batch", "size", args[0])
		if err != nil {
			return err
		}
		batches, err := seqx.Batch(seqx.FromSlice(args[1:]), size)
		if err != nil {
			return err
		}
		indexed, err := seqx.WithIndex(batches)
		if err != nil {
			return err
		}
		for i, batch := range indexed {
			fmt.Fprintf(cmd.OutOrStdout(), "%d: %s\n", i+1, strings.Join(batch, " "))
		}
		return nil
	})
	batchCmd.Flags().SetInterspersed(false)

	seqCmd.AddCommand(pageCmd, batchCmd)
	return seqCmd
}
