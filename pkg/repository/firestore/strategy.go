package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/adopt-lab/harbinger/pkg/domain/model"
	"github.com/adopt-lab/harbinger/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type strategyDocument struct {
	ID               string                    `firestore:"id"`
	OrganizationName string                    `firestore:"organization_name"`
	Platform         string                    `firestore:"platform"`
	Phase            string                    `firestore:"phase"`
	AssessmentID     string                    `firestore:"assessment_id"`
	ProgressTracking *progressTrackingDocument `firestore:"progress_tracking"`
	RiskAnalysis     *riskAnalysisDocument     `firestore:"risk_analysis"`
	Milestones       []milestoneDocument       `firestore:"milestones"`
	CreatedAt        time.Time                 `firestore:"created_at"`
	UpdatedAt        time.Time                 `firestore:"updated_at"`
}

type progressTrackingDocument struct {
	ProgressPercent int       `firestore:"progress_percent"`
	LastUpdated     time.Time `firestore:"last_updated"`
}

type riskAnalysisDocument struct {
	RiskScore       int                      `firestore:"risk_score"`
	IdentifiedRisks []identifiedRiskDocument `firestore:"identified_risks"`
}

type identifiedRiskDocument struct {
	Name        string `firestore:"name"`
	Description string `firestore:"description"`
	Severity    string `firestore:"severity"`
	Status      string `firestore:"status"`
}

type milestoneDocument struct {
	Name       string    `firestore:"name"`
	Status     string    `firestore:"status"`
	TargetDate time.Time `firestore:"target_date"`
}

type strategyRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newStrategyRepository(client *firestore.Client) *strategyRepository {
	return &strategyRepository{
		client: client,
	}
}

func (r *strategyRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_strategies"
	}
	return "strategies"
}

func (r *strategyRepository) Create(ctx context.Context, strategy *model.Strategy) (*model.Strategy, error) {
	if strategy.ID == "" {
		return nil, goerr.New("strategy ID is required")
	}

	now := time.Now().UTC()
	doc := toStrategyDocument(strategy)
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now
	}
	doc.UpdatedAt = now

	ref := r.client.Collection(r.collection()).Doc(strategy.ID.String())
	if _, err := ref.Create(ctx, doc); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, goerr.New("strategy already exists", goerr.V("id", strategy.ID))
		}
		return nil, goerr.Wrap(err, "failed to create strategy", goerr.V("id", strategy.ID))
	}

	return fromStrategyDocument(doc), nil
}

func (r *strategyRepository) Get(ctx context.Context, id types.StrategyID) (*model.Strategy, error) {
	snap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "strategy not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get strategy", goerr.V("id", id))
	}

	var doc strategyDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode strategy", goerr.V("id", id))
	}

	return fromStrategyDocument(&doc), nil
}

func (r *strategyRepository) List(ctx context.Context) ([]*model.Strategy, error) {
	iter := r.client.Collection(r.collection()).OrderBy("created_at", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var strategies []*model.Strategy
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate strategies")
		}

		var doc strategyDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode strategy", goerr.V("doc", snap.Ref.ID))
		}
		strategies = append(strategies, fromStrategyDocument(&doc))
	}

	return strategies, nil
}

func toStrategyDocument(strategy *model.Strategy) *strategyDocument {
	doc := &strategyDocument{
		ID:               strategy.ID.String(),
		OrganizationName: strategy.OrganizationName,
		Platform:         strategy.Platform,
		Phase:            strategy.Phase,
		AssessmentID:     strategy.AssessmentID.String(),
		CreatedAt:        strategy.CreatedAt,
		UpdatedAt:        strategy.UpdatedAt,
	}

	if strategy.ProgressTracking != nil {
		doc.ProgressTracking = &progressTrackingDocument{
			ProgressPercent: strategy.ProgressTracking.ProgressPercent,
			LastUpdated:     strategy.ProgressTracking.LastUpdated,
		}
	}
	if strategy.RiskAnalysis != nil {
		analysis := &riskAnalysisDocument{
			RiskScore: strategy.RiskAnalysis.RiskScore,
		}
		for _, risk := range strategy.RiskAnalysis.IdentifiedRisks {
			analysis.IdentifiedRisks = append(analysis.IdentifiedRisks, identifiedRiskDocument{
				Name:        risk.Name,
				Description: risk.Description,
				Severity:    risk.Severity.String(),
				Status:      risk.Status,
			})
		}
		doc.RiskAnalysis = analysis
	}
	for _, m := range strategy.Milestones {
		doc.Milestones = append(doc.Milestones, milestoneDocument(m))
	}

	return doc
}

func fromStrategyDocument(doc *strategyDocument) *model.Strategy {
	strategy := &model.Strategy{
		ID:               types.StrategyID(doc.ID),
		OrganizationName: doc.OrganizationName,
		Platform:         doc.Platform,
		Phase:            doc.Phase,
		AssessmentID:     types.AssessmentID(doc.AssessmentID),
		CreatedAt:        doc.CreatedAt,
		UpdatedAt:        doc.UpdatedAt,
	}

	if doc.ProgressTracking != nil {
		strategy.ProgressTracking = &model.ProgressTracking{
			ProgressPercent: doc.ProgressTracking.ProgressPercent,
			LastUpdated:     doc.ProgressTracking.LastUpdated,
		}
	}
	if doc.RiskAnalysis != nil {
		analysis := &model.RiskAnalysis{
			RiskScore: doc.RiskAnalysis.RiskScore,
		}
		for _, risk := range doc.RiskAnalysis.IdentifiedRisks {
			analysis.IdentifiedRisks = append(analysis.IdentifiedRisks, model.IdentifiedRisk{
				Name:        risk.Name,
				Description: risk.Description,
				Severity:    types.Severity(risk.Severity),
				Status:      risk.Status,
			})
		}
		strategy.RiskAnalysis = analysis
	}
	for _, m := range doc.Milestones {
		strategy.Milestones = append(strategy.Milestones, model.Milestone(m))
	}

	return strategy
}
