// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/rowctx"
	"github.com/poiesic/rowctx/ai"
	"github.com/poiesic/rowctx/ai/openai"
	"github.com/poiesic/rowctx/core"
	"github.com/poiesic/rowctx/ingestion"
	"github.com/poiesic/rowctx/search"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:   "rowctx",
		Usage:  "Lexical context retrieval over tabular records",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "retrieve",
				Usage:     "Retrieve the rows most relevant to a question and emit a prompt",
				ArgsUsage: "<csv-file> <question>",
				Action:    retrieveCommand,
				Flags:     retrievalFlags(),
			},
			{
				Name:      "ask",
				Usage:     "Retrieve relevant rows and answer the question with a language model",
				ArgsUsage: "<csv-file> <question>",
				Action:    askCommand,
				Flags: append(retrievalFlags(),
					&cli.StringFlag{
						Name:  "llm-host",
						Usage: "Completion service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:     "llm-model",
						Usage:    "Completion model name",
						Required: true,
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func retrievalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "sample-size",
			Usage: "Number of rows to sample from large files (0 disables sampling)",
			Value: 1000,
		},
		&cli.IntFlag{
			Name:    "top-k",
			Aliases: []string{"k"},
			Usage:   "Number of relevant rows to retrieve",
			Value:   5,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output JSON file",
			Value:   "retrieval_results.json",
		},
		&cli.StringFlag{
			Name:  "rules",
			Usage: "Optional YAML file overriding the expansion and boost rules",
		},
	}
}

// retrieval holds everything a command needs after the pipeline has run.
type retrieval struct {
	question string
	results  []core.RankedDocument
	prompt   string
}

type retrievedRow struct {
	Content  string        `json:"content"`
	Metadata core.Metadata `json:"metadata"`
	Score    float64       `json:"score"`
}

type resultFile struct {
	Question      string         `json:"question"`
	RetrievedRows []retrievedRow `json:"retrieved_rows"`
	Prompt        string         `json:"prompt"`
}

func retrieveCommand(c *cli.Context) error {
	run, err := runRetrieval(c)
	if err != nil {
		return err
	}

	fmt.Println(run.prompt)

	return writeResults(c.String("output"), run)
}

func askCommand(c *cli.Context) error {
	run, err := runRetrieval(c)
	if err != nil {
		return err
	}

	cfg := ai.NewConfig(
		ai.WithHost(c.String("llm-host")),
		ai.WithModel(c.String("llm-model")),
	)
	answerer, err := openai.NewAnswerer(cfg)
	if err != nil {
		return fmt.Errorf("failed to create answerer: %w", err)
	}

	answer, err := answerer.Answer(context.Background(), run.prompt)
	if err != nil {
		return fmt.Errorf("answer generation failed: %w", err)
	}

	fmt.Println(answer)

	return writeResults(c.String("output"), run)
}

func runRetrieval(c *cli.Context) (*retrieval, error) {
	csvFile := c.Args().Get(0)
	question := c.Args().Get(1)
	if csvFile == "" || question == "" {
		return nil, fmt.Errorf("usage: %s <csv-file> <question>", c.Command.Name)
	}

	var retrieverOpts []rowctx.RetrieverOption
	if rulesPath := c.String("rules"); rulesPath != "" {
		rules, err := search.LoadRules(rulesPath)
		if err != nil {
			return nil, err
		}
		retrieverOpts = append(retrieverOpts, rowctx.WithRules(rules))
	}

	retriever, err := rowctx.NewRetriever(retrieverOpts...)
	if err != nil {
		return nil, err
	}

	loader, err := ingestion.NewLoader(ingestion.WithSampleSize(c.Int("sample-size")))
	if err != nil {
		return nil, err
	}
	docs, err := loader.LoadCSV(csvFile)
	if err != nil {
		return nil, err
	}
	if err := retriever.AddDocuments(docs...); err != nil {
		return nil, err
	}

	sidecar, err := ingestion.LoadSidecar(csvFile)
	if err != nil {
		if !errors.Is(err, ingestion.ErrNoSidecar) {
			slog.Warn("ignoring unreadable sidecar descriptor", "err", err)
		}
		sidecar = core.Metadata{}
	}

	results := retriever.Retrieve(question, c.Int("top-k"))
	promptText := retriever.FormatContext(results, question, sidecar)

	return &retrieval{
		question: question,
		results:  results,
		prompt:   promptText,
	}, nil
}

func writeResults(path string, run *retrieval) error {
	out := resultFile{
		Question:      run.question,
		RetrievedRows: make([]retrievedRow, 0, len(run.results)),
		Prompt:        run.prompt,
	}
	for _, result := range run.results {
		out.RetrievedRows = append(out.RetrievedRows, retrievedRow{
			Content:  result.Document.Content,
			Metadata: result.Document.Metadata,
			Score:    result.Score,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	slog.Info("results saved", "path", path, "rows", len(out.RetrievedRows))
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
