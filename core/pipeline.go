package core

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/oxhq/pycov/harness"
	"github.com/oxhq/pycov/inspect"
	"github.com/oxhq/pycov/pytest"
)

// Publisher persists an HTML report tree under an identifier and returns
// the landing page path, or "" when publishing failed. Implemented by
// report.Publisher; failures are non-fatal to the pipeline.
type Publisher interface {
	Publish(htmlDir, id string) string
}

// Pipeline runs the full analysis sequence: inspect the target, generate
// the harness, run pytest under coverage, parse the output and publish the
// HTML report. One Analyze call is one complete unit of work.
type Pipeline struct {
	cfg       Config
	inspector *inspect.Inspector
	runner    pytest.Runner
	publisher Publisher
	log       *zap.Logger
}

// NewPipeline wires a pipeline from its parts. A nil runner gets the real
// pytest subprocess runner; a nil publisher disables report publishing; a
// nil logger disables logging.
func NewPipeline(cfg Config, runner pytest.Runner, publisher Publisher, log *zap.Logger) *Pipeline {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	if runner == nil {
		runner = &pytest.ExecRunner{Bin: cfg.PytestBin, Timeout: cfg.Timeout}
	}
	return &Pipeline{
		cfg:       cfg,
		inspector: inspect.New(log),
		runner:    runner,
		publisher: publisher,
		log:       log,
	}
}

// Analyze runs test cases against sourceFile under coverage and returns a
// fully populated result. It never returns an error: a missing file, a
// timed-out run and any unexpected failure each produce their own result
// variant with zeroed counters and a descriptive interpretation.
func (p *Pipeline) Analyze(ctx context.Context, sourceFile string, testCases []string, id string) CoverageResult {
	if id == "" {
		id = DefaultID
	}
	total := len(testCases)

	ws, err := NewWorkspace()
	if err != nil {
		return p.errorResult(id, total, err)
	}
	defer ws.Remove()

	if _, err := os.Stat(sourceFile); err != nil {
		return CoverageResult{
			ID:             id,
			TestsFailed:    total,
			TotalTests:     total,
			Interpretation: "Error: Python file not found",
			ErrorDetails:   []string{fmt.Sprintf("File not found: %s", sourceFile)},
		}
	}

	funcName := p.inspector.TargetFunction(sourceFile)
	p.log.Debug("analysis started",
		zap.String("id", id),
		zap.String("source", sourceFile),
		zap.String("target", funcName),
		zap.Int("tests", total))

	harnessPath, err := harness.Generate(sourceFile, funcName, testCases, ws.Dir)
	if err != nil {
		return p.errorResult(id, total, err)
	}

	out, err := p.runner.Run(ctx, pytest.Invocation{
		HarnessPath:      harnessPath,
		SourceFile:       sourceFile,
		WorkspaceDir:     ws.Dir,
		CoverageJSONPath: ws.CoverageJSONPath(),
		HTMLDir:          ws.HTMLDir(),
	})
	if errors.Is(err, pytest.ErrTimeout) {
		return CoverageResult{
			ID:             id,
			TestsFailed:    total,
			TotalTests:     total,
			Interpretation: fmt.Sprintf("Timeout - execution exceeded %.0f seconds", p.cfg.Timeout.Seconds()),
			ErrorDetails:   []string{"Timeout"},
		}
	}
	if err != nil {
		return p.errorResult(id, total, err)
	}

	counts := pytest.ParseCounts(out.Combined, total)
	cov := pytest.ParseCoverage(ws.CoverageJSONPath(), sourceFile)

	htmlPath := ""
	if p.publisher != nil {
		htmlPath = p.publisher.Publish(ws.HTMLDir(), id)
	}

	return CoverageResult{
		ID:                id,
		TestsPassed:       counts.Passed,
		TestsFailed:       counts.Failed,
		TotalTests:        total,
		LineCoverage:      cov.LinePercent,
		StatementCoverage: cov.StatementPercent,
		BranchCoverage:    cov.BranchPercent,
		StatementsCovered: cov.StatementsCovered,
		StatementsTotal:   cov.StatementsTotal,
		Interpretation:    Interpret(counts.Passed, counts.Failed, cov.LinePercent, cov.BranchPercent),
		ErrorDetails:      pytest.ExtractFailures(out.Combined),
		HTMLReportPath:    htmlPath,
	}
}

// errorResult is the unexpected-failure variant: the error message is
// captured verbatim into the interpretation and details.
func (p *Pipeline) errorResult(id string, total int, err error) CoverageResult {
	p.log.Warn("analysis failed", zap.String("id", id), zap.Error(err))
	return CoverageResult{
		ID:             id,
		TestsFailed:    total,
		TotalTests:     total,
		Interpretation: fmt.Sprintf("Error: %s", err),
		ErrorDetails:   []string{err.Error()},
	}
}
