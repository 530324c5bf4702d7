package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/adopt-lab/harbinger/pkg/domain/interfaces"
	"github.com/adopt-lab/harbinger/pkg/domain/model"
	"github.com/adopt-lab/harbinger/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type alertDocument struct {
	ID                  string                       `firestore:"id"`
	SourceType          string                       `firestore:"source_type"`
	SourceID            string                       `firestore:"source_id"`
	SourceName          string                       `firestore:"source_name"`
	RiskCategory        string                       `firestore:"risk_category"`
	Severity            string                       `firestore:"severity"`
	RiskScore           int                          `firestore:"risk_score"`
	TriggerReason       string                       `firestore:"trigger_reason"`
	RiskDescription     string                       `firestore:"risk_description"`
	PotentialImpact     string                       `firestore:"potential_impact"`
	MitigationSteps     []mitigationStepDocument     `firestore:"mitigation_steps"`
	ComplianceDraft     *complianceDraftDocument     `firestore:"compliance_draft"`
	StrategyAdjustments []strategyAdjustmentDocument `firestore:"strategy_adjustments"`
	RecommendedTraining []trainingModuleDocument     `firestore:"recommended_training"`
	Status              string                       `firestore:"status"`
	CreatedAt           time.Time                    `firestore:"created_at"`
	UpdatedAt           time.Time                    `firestore:"updated_at"`
}

type mitigationStepDocument struct {
	Step     string `firestore:"step"`
	Priority string `firestore:"priority"`
	Owner    string `firestore:"owner"`
	Timeline string `firestore:"timeline"`
	Status   string `firestore:"status"`
}

type complianceDraftDocument struct {
	Title     string                 `firestore:"title"`
	Framework string                 `firestore:"framework"`
	Sections  []draftSectionDocument `firestore:"sections"`
}

type draftSectionDocument struct {
	Heading string `firestore:"heading"`
	Body    string `firestore:"body"`
}

type strategyAdjustmentDocument struct {
	Area       string `firestore:"area"`
	Adjustment string `firestore:"adjustment"`
	Rationale  string `firestore:"rationale"`
}

type trainingModuleDocument struct {
	Title         string `firestore:"title"`
	Audience      string `firestore:"audience"`
	Objective     string `firestore:"objective"`
	DurationHours int    `firestore:"duration_hours"`
}

type alertRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newAlertRepository(client *firestore.Client) *alertRepository {
	return &alertRepository{
		client: client,
	}
}

func (r *alertRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_alerts"
	}
	return "alerts"
}

func (r *alertRepository) Create(ctx context.Context, alert *model.RiskAlert) (*model.RiskAlert, error) {
	if alert.ID == "" {
		return nil, goerr.New("alert ID is required")
	}

	now := time.Now().UTC()
	doc := toAlertDocument(alert)
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now
	}
	doc.UpdatedAt = now
	doc.Status = types.AlertStatus(doc.Status).Normalize().String()

	ref := r.client.Collection(r.collection()).Doc(alert.ID.String())
	if _, err := ref.Create(ctx, doc); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, goerr.New("alert already exists", goerr.V("id", alert.ID))
		}
		return nil, goerr.Wrap(err, "failed to create alert", goerr.V("id", alert.ID))
	}

	return fromAlertDocument(doc), nil
}

func (r *alertRepository) Get(ctx context.Context, id types.AlertID) (*model.RiskAlert, error) {
	snap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "alert not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get alert", goerr.V("id", id))
	}

	var doc alertDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode alert", goerr.V("id", id))
	}

	return fromAlertDocument(&doc), nil
}

func (r *alertRepository) List(ctx context.Context, opts interfaces.AlertListOptions) ([]*model.RiskAlert, error) {
	query := r.client.Collection(r.collection()).Query
	if opts.SourceType != "" {
		query = query.Where("source_type", "==", opts.SourceType.String())
	}
	if opts.SourceID != "" {
		query = query.Where("source_id", "==", opts.SourceID)
	}
	if opts.Status != "" {
		query = query.Where("status", "==", opts.Status.String())
	}
	query = query.OrderBy("created_at", firestore.Desc)

	iter := query.Documents(ctx)
	defer iter.Stop()

	var alerts []*model.RiskAlert
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate alerts")
		}

		var doc alertDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode alert", goerr.V("doc", snap.Ref.ID))
		}
		alerts = append(alerts, fromAlertDocument(&doc))
	}

	return alerts, nil
}

func (r *alertRepository) Update(ctx context.Context, alert *model.RiskAlert) (*model.RiskAlert, error) {
	ref := r.client.Collection(r.collection()).Doc(alert.ID.String())

	snap, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "alert not found", goerr.V("id", alert.ID))
		}
		return nil, goerr.Wrap(err, "failed to get alert", goerr.V("id", alert.ID))
	}

	var existing alertDocument
	if err := snap.DataTo(&existing); err != nil {
		return nil, goerr.Wrap(err, "failed to decode alert", goerr.V("id", alert.ID))
	}

	doc := toAlertDocument(alert)
	doc.CreatedAt = existing.CreatedAt
	doc.UpdatedAt = time.Now().UTC()

	if _, err := ref.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to update alert", goerr.V("id", alert.ID))
	}

	return fromAlertDocument(doc), nil
}

func toAlertDocument(alert *model.RiskAlert) *alertDocument {
	doc := &alertDocument{
		ID:              alert.ID.String(),
		SourceType:      alert.SourceType.String(),
		SourceID:        alert.SourceID,
		SourceName:      alert.SourceName,
		RiskCategory:    alert.RiskCategory.String(),
		Severity:        alert.Severity.String(),
		RiskScore:       alert.RiskScore,
		TriggerReason:   alert.TriggerReason.String(),
		RiskDescription: alert.RiskDescription,
		PotentialImpact: alert.PotentialImpact,
		Status:          alert.Status.String(),
		CreatedAt:       alert.CreatedAt,
		UpdatedAt:       alert.UpdatedAt,
	}

	for _, step := range alert.MitigationSteps {
		doc.MitigationSteps = append(doc.MitigationSteps, mitigationStepDocument(step))
	}
	for _, adj := range alert.StrategyAdjustments {
		doc.StrategyAdjustments = append(doc.StrategyAdjustments, strategyAdjustmentDocument(adj))
	}
	for _, mod := range alert.RecommendedTraining {
		doc.RecommendedTraining = append(doc.RecommendedTraining, trainingModuleDocument(mod))
	}
	if alert.ComplianceDraft != nil {
		draft := &complianceDraftDocument{
			Title:     alert.ComplianceDraft.Title,
			Framework: alert.ComplianceDraft.Framework,
		}
		for _, sec := range alert.ComplianceDraft.Sections {
			draft.Sections = append(draft.Sections, draftSectionDocument(sec))
		}
		doc.ComplianceDraft = draft
	}

	return doc
}

func fromAlertDocument(doc *alertDocument) *model.RiskAlert {
	alert := &model.RiskAlert{
		ID:              types.AlertID(doc.ID),
		SourceType:      types.SourceType(doc.SourceType),
		SourceID:        doc.SourceID,
		SourceName:      doc.SourceName,
		RiskCategory:    types.RiskCategory(doc.RiskCategory),
		Severity:        types.Severity(doc.Severity),
		RiskScore:       doc.RiskScore,
		TriggerReason:   types.RiskTrigger(doc.TriggerReason),
		RiskDescription: doc.RiskDescription,
		PotentialImpact: doc.PotentialImpact,
		Status:          types.AlertStatus(doc.Status),
		CreatedAt:       doc.CreatedAt,
		UpdatedAt:       doc.UpdatedAt,
	}

	for _, step := range doc.MitigationSteps {
		alert.MitigationSteps = append(alert.MitigationSteps, model.MitigationStep(step))
	}
	for _, adj := range doc.StrategyAdjustments {
		alert.StrategyAdjustments = append(alert.StrategyAdjustments, model.StrategyAdjustment(adj))
	}
	for _, mod := range doc.RecommendedTraining {
		alert.RecommendedTraining = append(alert.RecommendedTraining, model.TrainingModule(mod))
	}
	if doc.ComplianceDraft != nil {
		draft := &model.ComplianceDraft{
			Title:     doc.ComplianceDraft.Title,
			Framework: doc.ComplianceDraft.Framework,
		}
		for _, sec := range doc.ComplianceDraft.Sections {
			draft.Sections = append(draft.Sections, model.DraftSection(sec))
		}
		alert.ComplianceDraft = draft
	}

	return alert
}
