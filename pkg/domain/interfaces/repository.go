package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Alert() AlertRepository
	Strategy() StrategyRepository
	Assessment() AssessmentRepository

	Close() error
}
