package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/adopt-lab/harbinger/pkg/domain/types"
)

func TestSeverity_Score(t *testing.T) {
	gt.Number(t, types.SeverityCritical.Score()).Equal(90)
	gt.Number(t, types.SeverityHigh.Score()).Equal(70)
	gt.Number(t, types.SeverityMedium.Score()).Equal(50)
	gt.Number(t, types.SeverityLow.Score()).Equal(50)
}

func TestSeverity_IsValid(t *testing.T) {
	for _, s := range types.AllSeverities() {
		gt.Bool(t, s.IsValid()).True()
	}
	gt.Bool(t, types.Severity("extreme").IsValid()).False()
}

func TestRiskCategory_TrainingEligible(t *testing.T) {
	gt.Bool(t, types.CategoryCompliance.TrainingEligible()).True()
	gt.Bool(t, types.CategoryOrganizational.TrainingEligible()).True()
	gt.Bool(t, types.CategoryOperational.TrainingEligible()).True()
	gt.Bool(t, types.CategoryTechnical.TrainingEligible()).True()
	gt.Bool(t, types.CategoryFinancial.TrainingEligible()).False()
}
