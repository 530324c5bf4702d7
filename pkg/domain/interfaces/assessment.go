package interfaces

import (
	"context"

	"github.com/adopt-lab/harbinger/pkg/domain/model"
	"github.com/adopt-lab/harbinger/pkg/domain/types"
)

type AssessmentRepository interface {
	// Create stores a new assessment
	Create(ctx context.Context, assessment *model.Assessment) (*model.Assessment, error)

	// Get retrieves an assessment by ID
	Get(ctx context.Context, id types.AssessmentID) (*model.Assessment, error)

	// List retrieves all assessments
	List(ctx context.Context) ([]*model.Assessment, error)
}
