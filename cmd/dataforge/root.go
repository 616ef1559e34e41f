package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dataforge-io/dataforge-go/core/catalog"
	"github.com/dataforge-io/dataforge-go/core/clientconfig"
	"github.com/dataforge-io/dataforge-go/core/gateway"
	"github.com/dataforge-io/dataforge-go/core/logger"
	"github.com/dataforge-io/dataforge-go/core/reports"
	"github.com/dataforge-io/dataforge-go/core/session"
	"github.com/dataforge-io/dataforge-go/core/tokenstore"
	"github.com/dataforge-io/dataforge-go/core/upload"
)

// app wires the orchestration core for the CLI commands. Built once in the
// root command's PersistentPreRunE.
type app struct {
	cfg     clientconfig.Config
	log     *slog.Logger
	store   *tokenstore.FileStore
	session *session.Manager
	gateway *gateway.Client
}

func (a *app) catalogLoader() *catalog.Loader {
	return catalog.NewLoader(a.gateway)
}

func (a *app) uploadOrchestrator() *upload.Orchestrator {
	return upload.NewOrchestrator(a.gateway, upload.WithTimeout(a.cfg.UploadTimeout))
}

func (a *app) reportController() *reports.Controller {
	return reports.NewController(a.gateway)
}

// requireAuth initializes the session from the token store and fails with a
// login hint when no usable token is held.
func (a *app) requireAuth() error {
	if !a.session.CheckAuth() {
		return fmt.Errorf("not logged in, run 'dataforge login' first")
	}
	return nil
}

func newRootCommand() *cobra.Command {
	a := &app{}
	var configPath string

	root := &cobra.Command{
		Use:   "dataforge",
		Short: "DataForge analytics client",
		Long: "Command-line client for the DataForge analytics service: upload tabular\n" +
			"data files, generate reports from templates, and view the results.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := clientconfig.Load(configPath)
			if err != nil {
				return err
			}

			store, err := tokenstore.NewFileStore(cfg.TokenPath)
			if err != nil {
				return err
			}

			log := logger.New(cmd.ErrOrStderr(), cfg.LogLevel)

			// On forced logout the CLI has no login screen to navigate to,
			// so the navigation signal becomes a hint on stderr.
			nav := session.NavigatorFunc(func() {
				fmt.Fprintln(cmd.ErrOrStderr(), "Session ended. Run 'dataforge login' to sign in again.")
			})

			a.cfg = cfg
			a.log = log
			a.store = store
			a.session = session.NewManager(store, cfg.BaseURL, session.WithNavigator(nav))
			a.gateway = gateway.New(cfg.BaseURL, a.session,
				gateway.WithTimeout(cfg.Timeout),
				gateway.WithLogger(log),
			)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default: user config dir)")

	root.AddCommand(
		newLoginCommand(a),
		newRegisterCommand(a),
		newLogoutCommand(a),
		newWhoamiCommand(a),
		newTemplatesCommand(a),
		newUploadCommand(a),
		newReportCommand(a),
		newReportsCommand(a),
		newInspectCommand(),
	)
	return root
}

// readSecret reads a password from standard input when not supplied by flag.
func readSecret(cmd *cobra.Command, prompt string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	var secret string
	if _, err := fmt.Fscanln(cmd.InOrStdin(), &secret); err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return secret, nil
}
