package checkdeadlines

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"amlak/internal/application/permit/usecases"
	"amlak/internal/domain/shared/events"
	"amlak/internal/infrastructure/config"
	"amlak/internal/infrastructure/database"
	"amlak/internal/infrastructure/email"
	"amlak/internal/infrastructure/notify"
	"amlak/internal/infrastructure/repository"
	"amlak/internal/shared/logger"
)

var env string

// NewCommand builds the one-shot deadline sweep command. It mirrors what
// the in-process scheduler does periodically, for cron-style deployments.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-deadlines",
		Short: "Run a single approval deadline sweep",
		Long:  `Examine all open pending approvals, escalate the overdue ones, and print the examined/redirected counts.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, env != "production"); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	eventDispatcher := events.NewInMemoryEventDispatcher(100)
	if err := eventDispatcher.Start(); err != nil {
		return fmt.Errorf("failed to start event dispatcher: %w", err)
	}
	defer eventDispatcher.Stop()

	gdb := database.Get()
	log := logger.NewLogger()

	permitRepo := repository.NewPermitRepository(gdb)
	workflowRepo := repository.NewWorkflowRepository(gdb)
	approvalRepo := repository.NewPendingApprovalRepository(gdb)
	notificationRepo := repository.NewNotificationRepository(gdb)
	userRepo := repository.NewUserRepository(gdb)

	var emailSender notify.EmailSender
	if cfg.Email.Enabled {
		emailSender = email.NewSMTPEmailService(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUsername,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
			BaseURL:     cfg.Server.BaseURL,
		})
	}
	notifier := notify.NewWorkflowNotifier(notificationRepo, userRepo, emailSender, log)

	sweepUC := usecases.NewCheckDeadlinesUseCase(
		approvalRepo, workflowRepo, permitRepo, userRepo, notifier, eventDispatcher, log)

	result, err := sweepUC.Execute(context.Background())
	if err != nil {
		return fmt.Errorf("deadline sweep failed: %w", err)
	}

	fmt.Printf("examined: %d\nredirected: %d\n", result.Examined, result.Redirected)
	return nil
}
