package reporters

import (
	"fmt"

	"github.com/dylanblandino12/moodys-data-quality-lab/core"
)

func CreateReporter(reportFormat string, outputDir string, artifactPrefix string) (core.Reporter, error) {
	if reportFormat == "xlsx" {
		return XlsxSummaryReporter{ArtifactPrefix: artifactPrefix, OutputDir: outputDir}, nil
	}
	if reportFormat == "json" {
		return JsonReporter{ArtifactPrefix: artifactPrefix, OutputDir: outputDir}, nil
	}

	return nil, fmt.Errorf("unknown report format: %s", reportFormat)
}
