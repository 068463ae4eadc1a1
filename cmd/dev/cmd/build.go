package cmd

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/gophertribe/devtool/build"
)

func BuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the vdev cli",
		RunE: func(cmd *cobra.Command, args []string) error {
			version := cmd.Flag("version").Value.String()
			os := cmd.Flag("os").Value.String()
			arch := cmd.Flag("arch").Value.String()

			// virtual devices need no cgo or hardware toolchains,
			// cross builds go through plain GOOS/GOARCH
			return build.GoBuild("dist/vdev", "./cmd/vdev", build.GoBuildOpts{
				Version:       version,
				InjectVersion: true,
				EnableCgo:     false,
				Arch:          arch,
				OS:            os,
			})
		},
	}
	cmd.Flags().String("version", "latest", "version of the cli")
	cmd.Flags().String("os", runtime.GOOS, "os to build for")
	cmd.Flags().String("arch", runtime.GOARCH, "arch to build for")

	return cmd
}
