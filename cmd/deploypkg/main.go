package main

import (
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/endpointops/deploypkg/contracts"
	"github.com/endpointops/deploypkg/core"
	"github.com/endpointops/deploypkg/logging"
	"github.com/endpointops/deploypkg/shell"
)

const applicationsDirectory = "/Applications"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	exitCode := contracts.ExitSuccess
	var jamf bool

	command := &cobra.Command{
		Use:           "deploypkg [flags] <url> [sha256] [display-name] [identity] [minimum-os] [pkg|dmg]",
		Short:         "Fetch and install a pkg or dmg artifact on this machine",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(command *cobra.Command, args []string) {
			request := parseInstallRequest(args, jamf)
			logging.Init(request.DisplayName, logging.DefaultLogPath)
			exitCode = install(request)
		},
	}
	command.Flags().BoolVar(&jamf, "jamf", false,
		"skip the three reserved parameters the management platform prepends")
	command.SetArgs(args)

	if err := command.Execute(); err != nil {
		log.Error(err)
		return contracts.ExitMissingInput
	}
	return exitCode
}

func install(request contracts.InstallRequest) int {
	filesystem := shell.NewDiskFileSystem()
	mounter := shell.NewHdiutilMounter()

	reaper := core.NewReaper(mounter, filesystem)
	defer reaper.Release()
	releaseOnInterrupt(reaper)

	runner := core.NewRunner(core.Capabilities{
		Versions:   shell.NewSystemVersionReader(),
		Receipts:   shell.NewPackageReceiptDatabase(),
		Downloader: shell.NewHTTPDownloader(),
		Digests:    shell.NewSHA256Digest(),
		Signatures: shell.NewGatekeeperChecker(),
		Installer:  shell.NewMacPackageInstaller(),
		Mounter:    mounter,
		Copier:     shell.NewDittoCopier(),
		Quarantine: shell.NewXattrQuarantineStripper(),
		FileSystem: filesystem,
	}, reaper, applicationsDirectory)

	outcome, err := runner.Run(request)
	if err != nil {
		log.Error(err)
		return contracts.ExitCode(err)
	}
	log.Infof("%s: %s", request.DisplayName, outcome)
	return contracts.ExitSuccess
}

// releaseOnInterrupt guarantees mount detach and scratch removal even
// when the management agent kills the run mid-flight.
func releaseOnInterrupt(reaper *core.Reaper) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		received := <-signals
		log.Warnf("interrupted (%s); cleaning up", received)
		reaper.Release()
		os.Exit(1)
	}()
}
