// Package report publishes HTML coverage reports and renders results for
// human consumption.
package report

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Publisher copies HTML report trees to a stable, identifier-keyed location.
// Publishing is non-fatal: any failure returns an empty path.
type Publisher struct {
	outputDir string
	log       *zap.Logger
}

// NewPublisher creates a publisher rooted at outputDir.
func NewPublisher(outputDir string, log *zap.Logger) *Publisher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Publisher{outputDir: outputDir, log: log}
}

// Publish replaces <outputDir>/<id> with the tree at htmlDir and returns the
// path to its landing page. Two runs with the same identifier overwrite each
// other; the destination reflects the last writer.
func (p *Publisher) Publish(htmlDir, id string) string {
	if _, err := os.Stat(htmlDir); err != nil {
		return ""
	}

	target := filepath.Join(p.outputDir, id)
	if err := os.RemoveAll(target); err != nil {
		p.log.Warn("could not replace existing report", zap.String("target", target), zap.Error(err))
		return ""
	}
	if err := os.MkdirAll(target, 0o755); err != nil {
		p.log.Warn("could not create report directory", zap.String("target", target), zap.Error(err))
		return ""
	}
	if err := os.CopyFS(target, os.DirFS(htmlDir)); err != nil {
		p.log.Warn("could not copy report", zap.String("target", target), zap.Error(err))
		return ""
	}

	return filepath.Join(target, "index.html")
}
