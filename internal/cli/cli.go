package cli

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	cpuProfilePath string
	memProfileDir  string
)

func rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tsteg",
		Short:         "Texture-adaptive keyed steganography for images",
		Long:          "tsteg hides secret payloads in the visually busy regions of images, choosing carrier pixels in a secret-key-derived pseudorandom order",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			startProfilers()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			stopProfilers()
		},
	}

	rootCmd.PersistentFlags().StringVar(&cpuProfilePath, "cpu-profile", "", "Dump CPU profile into the supplied file")
	rootCmd.PersistentFlags().StringVar(&memProfileDir, "mem-profile-dir", "", "Dump memory profiles into the supplied directory")

	rootCmd.AddCommand(ImageCommands(), ServeAppCommand())
	return rootCmd
}

func Execute() {
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		stopProfilers()
		os.Exit(0)
	}()

	if err := rootCommand().Execute(); err != nil {
		stopProfilers()
		PrintError(err)
		os.Exit(1)
	}
}

func startProfilers() {
	if cpuProfilePath != "" {
		cpuProfileFile, err := os.Create(cpuProfilePath)
		if err != nil {
			log.Fatal(err)
		}
		StartCPUProfiler(cpuProfileFile)
	}
	if memProfileDir != "" {
		StartMemoryProfiler(memProfileDir)
	}
}

func stopProfilers() {
	if cpuProfilePath != "" {
		StopCPUProfiler()
	}
	if memProfileDir != "" {
		StopMemoryProfiler()
	}
}
