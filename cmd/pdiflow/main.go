package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rcamargo/pdiflow/internal/cli"
	"github.com/rcamargo/pdiflow/internal/config"
	"github.com/rcamargo/pdiflow/internal/db"
	"github.com/rcamargo/pdiflow/internal/genai"
	"github.com/rcamargo/pdiflow/internal/mail"
	"github.com/rcamargo/pdiflow/internal/repository"
	"github.com/rcamargo/pdiflow/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// The weekly summaries may live in a separate store.
	summaryDB := database
	if cfg.SummaryDBPath != cfg.DBPath {
		summaryDB, err = db.OpenDB(cfg.SummaryDBPath)
		if err != nil {
			return fmt.Errorf("opening summary database: %w", err)
		}
		defer summaryDB.Close()
	}

	// Wire repositories
	personRepo := repository.NewSQLitePersonRepo(database)
	answerRepo := repository.NewSQLiteAnswerRepo(database)
	interactionRepo := repository.NewSQLiteInteractionRepo(database)
	summaryRepo := repository.NewSQLiteSummaryRepo(summaryDB)

	// Wire the generation client
	genCfg := genai.LoadConfig(cfg.GenEndpoint)
	var observer genai.Observer = genai.NoopObserver{}
	if cfg.GenLogCalls {
		observer = genai.NewLogObserver(os.Stderr)
	}
	genClient := genai.NewClient(genCfg, observer)

	mailer := mail.NewClient(mail.Config{
		ClientID:     cfg.MailClientID,
		ClientSecret: cfg.MailClientSecret,
		TenantID:     cfg.MailTenantID,
		Sender:       cfg.MailSender,
	})

	// Wire services
	answerSvc := service.NewAnswerService(answerRepo)

	app := &cli.App{
		Auth:       service.NewAuthService(personRepo),
		Answers:    answerSvc,
		Contexts:   service.NewContextService(personRepo, interactionRepo, summaryRepo),
		Plans:      service.NewPlanService(genClient, answerSvc, mailer),
		Persons:    personRepo,
		TrackerURL: cfg.TrackerURL,
	}

	// Detect interactive terminal for the session entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
