package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/adopt-lab/harbinger/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
)

type Firestore struct {
	client     *firestore.Client
	alert      *alertRepository
	strategy   *strategyRepository
	assessment *assessmentRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix prefixes all collection names. Used to isolate
// test data from production collections.
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.alert.collectionPrefix = prefix
		f.strategy.collectionPrefix = prefix
		f.assessment.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID))
	}

	f := &Firestore{
		client:     client,
		alert:      newAlertRepository(client),
		strategy:   newStrategyRepository(client),
		assessment: newAssessmentRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Alert() interfaces.AlertRepository {
	return f.alert
}

func (f *Firestore) Strategy() interfaces.StrategyRepository {
	return f.strategy
}

func (f *Firestore) Assessment() interfaces.AssessmentRepository {
	return f.assessment
}

func (f *Firestore) Close() error {
	return f.client.Close()
}
