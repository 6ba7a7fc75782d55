package main

import (
	"fmt"

	"github.com/cristianoliveira/g-project/cmd"
	"github.com/cristianoliveira/g-project/internal/version"
	"github.com/spf13/cobra"
)

type versionClient interface {
	Version() string
	Platform() string
}

type buildInfo struct{}

func (buildInfo) Version() string  { return version.String() }
func (buildInfo) Platform() string { return version.Platform() }

// NewVersionCmd creates the version command with explicit dependencies.
func NewVersionCmd(client versionClient) *cobra.Command {
	if client == nil {
		panic("NewVersionCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show the current version of g-project.`,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			fmt.Fprintf(c.OutOrStdout(), "g-project version %s %s\n", client.Version(), client.Platform())
			return nil
		},
	}
}

var versionCmd = NewVersionCmd(buildInfo{})

func init() {
	cmd.RootCmd.AddCommand(versionCmd)
}
