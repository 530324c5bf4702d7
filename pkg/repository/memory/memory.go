package memory

import (
	"github.com/adopt-lab/harbinger/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

type Memory struct {
	alert      *alertRepository
	strategy   *strategyRepository
	assessment *assessmentRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		alert:      newAlertRepository(),
		strategy:   newStrategyRepository(),
		assessment: newAssessmentRepository(),
	}
}

func (m *Memory) Alert() interfaces.AlertRepository {
	return m.alert
}

func (m *Memory) Strategy() interfaces.StrategyRepository {
	return m.strategy
}

func (m *Memory) Assessment() interfaces.AssessmentRepository {
	return m.assessment
}

func (m *Memory) Close() error {
	return nil
}
