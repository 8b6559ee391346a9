// Package insights turns an AnalysisSummary into the narrative text for
// the wrapped story. The Gemini generator asks the model for the whole
// narrative as one JSON document; the local fallback produces
// deterministic text from the analysis itself and never fails.
package insights

import (
	"context"

	"github.com/sirupsen/logrus"

	"adeyosola/bank-wrapped/internal/models"
)

var log = logrus.New()

// SetLogger sets the logger used by this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Generator produces narrative insights from a summary. Implementations
// may call external services; callers must treat any error as "use the
// local fallback instead".
type Generator interface {
	Generate(ctx context.Context, summary models.AnalysisSummary) (*models.Insights, error)
}
