package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/dgray/goalsmith/internal/cli"
	"github.com/dgray/goalsmith/internal/db"
	"github.com/dgray/goalsmith/internal/extract"
	"github.com/dgray/goalsmith/internal/intelligence"
	"github.com/dgray/goalsmith/internal/llm"
	"github.com/dgray/goalsmith/internal/repository"
	"github.com/dgray/goalsmith/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	database, err := db.OpenDB(db.DefaultPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	goalRepo := repository.NewSQLiteGoalRepo(database)
	analysisRepo := repository.NewSQLiteAnalysisRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	analyzer := extract.NewAnalyzer()

	// The model client stays nil unless enabled; every intelligence path has
	// a deterministic local fallback.
	var llmClient llm.LLMClient
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			if llmCfg.LogFile != "" {
				observer = llm.NewRollingLogObserver(llmCfg.LogFile)
			} else {
				observer = llm.NewLogObserver(os.Stderr)
			}
		}
		llmClient = llm.NewOllamaClient(llmCfg, observer)
	}

	criteria := intelligence.NewCriteriaService(llmClient, analyzer)
	planner := intelligence.NewPlanner(analyzer, criteria, llmClient)

	app := &cli.App{
		Analyses: service.NewAnalysisService(analyzer, analysisRepo),
		Goals:    service.NewGoalService(goalRepo, planner, uow),
		Criteria: criteria,
		Refine:   intelligence.NewRefineService(llmClient),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
