package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"numevo/internal/config"
	"numevo/internal/evo"
)

func newProfilesCmd() *cobra.Command {
	var show string
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List built-in run profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if show != "" {
				profile, err := config.Builtin(show)
				if err != nil {
					return err
				}
				data, err := profile.Marshal()
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			}
			for _, name := range config.BuiltinNames() {
				profile, err := config.Builtin(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-14s %s\n", name, profile.Description)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&show, "show", "", "Print one profile as YAML, ready to edit and pass to run --config")
	return cmd
}

func newPoliciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "policies",
		Short: "List policy names per family",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, family := range evo.ListFamilies() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", family, strings.Join(evo.ListPolicies(family), ", "))
			}
			return nil
		},
	}
}
