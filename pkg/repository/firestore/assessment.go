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

type assessmentDocument struct {
	ID                     string            `firestore:"id"`
	OrganizationName       string            `firestore:"organization_name"`
	Platform               string            `firestore:"platform"`
	MaturityLevel          string            `firestore:"maturity_level"`
	AIAssessmentScore      int               `firestore:"ai_assessment_score"`
	KeyRisks               []keyRiskDocument `firestore:"key_risks"`
	ComplianceRequirements []string          `firestore:"compliance_requirements"`
	BusinessGoals          []string          `firestore:"business_goals"`
	CreatedAt              time.Time         `firestore:"created_at"`
	UpdatedAt              time.Time         `firestore:"updated_at"`
}

type keyRiskDocument struct {
	Description string   `firestore:"description"`
	Tags        []string `firestore:"tags"`
}

type assessmentRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newAssessmentRepository(client *firestore.Client) *assessmentRepository {
	return &assessmentRepository{
		client: client,
	}
}

func (r *assessmentRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_assessments"
	}
	return "assessments"
}

func (r *assessmentRepository) Create(ctx context.Context, assessment *model.Assessment) (*model.Assessment, error) {
	if assessment.ID == "" {
		return nil, goerr.New("assessment ID is required")
	}

	now := time.Now().UTC()
	doc := toAssessmentDocument(assessment)
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now
	}
	doc.UpdatedAt = now

	ref := r.client.Collection(r.collection()).Doc(assessment.ID.String())
	if _, err := ref.Create(ctx, doc); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, goerr.New("assessment already exists", goerr.V("id", assessment.ID))
		}
		return nil, goerr.Wrap(err, "failed to create assessment", goerr.V("id", assessment.ID))
	}

	return fromAssessmentDocument(doc), nil
}

func (r *assessmentRepository) Get(ctx context.Context, id types.AssessmentID) (*model.Assessment, error) {
	snap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "assessment not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get assessment", goerr.V("id", id))
	}

	var doc assessmentDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode assessment", goerr.V("id", id))
	}

	return fromAssessmentDocument(&doc), nil
}

func (r *assessmentRepository) List(ctx context.Context) ([]*model.Assessment, error) {
	iter := r.client.Collection(r.collection()).OrderBy("created_at", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var assessments []*model.Assessment
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate assessments")
		}

		var doc assessmentDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode assessment", goerr.V("doc", snap.Ref.ID))
		}
		assessments = append(assessments, fromAssessmentDocument(&doc))
	}

	return assessments, nil
}

func toAssessmentDocument(assessment *model.Assessment) *assessmentDocument {
	doc := &assessmentDocument{
		ID:                     assessment.ID.String(),
		OrganizationName:       assessment.OrganizationName,
		Platform:               assessment.Platform,
		MaturityLevel:          assessment.MaturityLevel,
		AIAssessmentScore:      assessment.AIAssessmentScore,
		ComplianceRequirements: assessment.ComplianceRequirements,
		BusinessGoals:          assessment.BusinessGoals,
		CreatedAt:              assessment.CreatedAt,
		UpdatedAt:              assessment.UpdatedAt,
	}

	for _, risk := range assessment.KeyRisks {
		doc.KeyRisks = append(doc.KeyRisks, keyRiskDocument(risk))
	}

	return doc
}

func fromAssessmentDocument(doc *assessmentDocument) *model.Assessment {
	assessment := &model.Assessment{
		ID:                     types.AssessmentID(doc.ID),
		OrganizationName:       doc.OrganizationName,
		Platform:               doc.Platform,
		MaturityLevel:          doc.MaturityLevel,
		AIAssessmentScore:      doc.AIAssessmentScore,
		ComplianceRequirements: doc.ComplianceRequirements,
		BusinessGoals:          doc.BusinessGoals,
		CreatedAt:              doc.CreatedAt,
		UpdatedAt:              doc.UpdatedAt,
	}

	for _, risk := range doc.KeyRisks {
		assessment.KeyRisks = append(assessment.KeyRisks, model.KeyRisk(risk))
	}

	return assessment
}
