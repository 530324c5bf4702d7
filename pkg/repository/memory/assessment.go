package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/adopt-lab/harbinger/pkg/domain/model"
	"github.com/adopt-lab/harbinger/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type assessmentRepository struct {
	mu          sync.RWMutex
	assessments map[types.AssessmentID]*model.Assessment
}

func newAssessmentRepository() *assessmentRepository {
	return &assessmentRepository{
		assessments: make(map[types.AssessmentID]*model.Assessment),
	}
}

func (r *assessmentRepository) Create(ctx context.Context, assessment *model.Assessment) (*model.Assessment, error) {
	if assessment.ID == "" {
		return nil, goerr.New("assessment ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.assessments[assessment.ID]; exists {
		return nil, goerr.New("assessment already exists", goerr.V("id", assessment.ID))
	}

	now := time.Now().UTC()
	created := copyAssessment(assessment)
	if created.CreatedAt.IsZero() {
		created.CreatedAt = now
	}
	created.UpdatedAt = now

	r.assessments[created.ID] = created
	return copyAssessment(created), nil
}

func (r *assessmentRepository) Get(ctx context.Context, id types.AssessmentID) (*model.Assessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	assessment, exists := r.assessments[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "assessment not found", goerr.V("id", id))
	}

	return copyAssessment(assessment), nil
}

func (r *assessmentRepository) List(ctx context.Context) ([]*model.Assessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	assessments := make([]*model.Assessment, 0, len(r.assessments))
	for _, assessment := range r.assessments {
		assessments = append(assessments, copyAssessment(assessment))
	}

	sort.Slice(assessments, func(i, j int) bool {
		return assessments[i].CreatedAt.Before(assessments[j].CreatedAt)
	})

	return assessments, nil
}

// copyAssessment returns a deep copy to prevent external modification
func copyAssessment(assessment *model.Assessment) *model.Assessment {
	copied := *assessment

	if assessment.KeyRisks != nil {
		copied.KeyRisks = make([]model.KeyRisk, len(assessment.KeyRisks))
		for i, risk := range assessment.KeyRisks {
			copied.KeyRisks[i] = risk
			if risk.Tags != nil {
				copied.KeyRisks[i].Tags = make([]string, len(risk.Tags))
				copy(copied.KeyRisks[i].Tags, risk.Tags)
			}
		}
	}
	if assessment.ComplianceRequirements != nil {
		copied.ComplianceRequirements = make([]string, len(assessment.ComplianceRequirements))
		copy(copied.ComplianceRequirements, assessment.ComplianceRequirements)
	}
	if assessment.BusinessGoals != nil {
		copied.BusinessGoals = make([]string, len(assessment.BusinessGoals))
		copy(copied.BusinessGoals, assessment.BusinessGoals)
	}

	return &copied
}
