package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func NewRandomCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "random",
		Short:        "Print one quote chosen at random",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := newReader(rootOpts).Random(cmd.Context())
			if err != nil {
				return err
			}
			return newPrinter(rootOpts, cmd.OutOrStdout()).quote(q)
		},
	}
}

func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "get <id>",
		Short:        "Print the quote with the given id",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q: must be a number", args[0])
			}
			q, err := newReader(rootOpts).Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return newPrinter(rootOpts, cmd.OutOrStdout()).quote(q)
		},
	}
}

type searchOptions struct {
	category string
	query    string
}

func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:          "search",
		Short:        "List quotes filtered by category and text",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			qs, err := newReader(rootOpts).Search(cmd.Context(), opts.category, opts.query)
			if err != nil {
				return err
			}
			return newPrinter(rootOpts, cmd.OutOrStdout()).quotes(qs)
		},
	}

	cmd.Flags().StringVarP(&opts.category, "category", "c", "", "exact category, case-insensitive")
	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "substring of text, source, category, explanation or original")

	return cmd
}

func NewCategoriesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "categories",
		Short:        "List distinct categories in catalog order",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := newReader(rootOpts).Categories(cmd.Context())
			if err != nil {
				return err
			}
			return newPrinter(rootOpts, cmd.OutOrStdout()).categories(cs)
		},
	}
}
