package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/hireloop/hireloop-api/internal/domain/entity"
	"github.com/hireloop/hireloop-api/internal/domain/repository"
	"github.com/hireloop/hireloop-api/pkg/helpers"
	"github.com/hireloop/hireloop-api/pkg/mailer"
)

// CandidateService covers candidate registration, profile updates, resume
// upload, and search. Elasticsearch, GCS, and the mail publisher are
// best-effort collaborators; a nil client disables that concern.
type CandidateService struct {
	Candidates repository.CandidateRepository
	Cities     repository.CityRepository
	Logger     *logrus.Logger
	ES         *elasticsearch.Client
	ESIndex    string
	GCS        *storage.Client
	GCSBucket  string
	Mail       *helpers.RabbitPublisher
}

func NewCandidateService(candidates repository.CandidateRepository, cities repository.CityRepository, logger *logrus.Logger, es *elasticsearch.Client, esIndex string, gcs *storage.Client, gcsBucket string, mail *helpers.RabbitPublisher) *CandidateService {
	return &CandidateService{
		Candidates: candidates,
		Cities:     cities,
		Logger:     logger,
		ES:         es,
		ESIndex:    esIndex,
		GCS:        gcs,
		GCSBucket:  gcsBucket,
		Mail:       mail,
	}
}

type RegisterCandidateInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	CityID      *string
	Headline    *string
	LinkedinURL *string
}

func (s *CandidateService) Register(ctx context.Context, in RegisterCandidateInput) (*entity.Candidate, error) {
	s.Logger.WithFields(logrus.Fields{"email": in.Email}).Debug("registering candidate")

	if err := checkUniqueness(ctx, uniqueCheck{
		resource: "Candidate",
		fields:   map[string]any{"email": in.Email},
		conflict: func(ctx context.Context) (string, error) {
			existing, err := s.Candidates.Find(ctx, repository.CandidateFilter{Email: &in.Email})
			if err != nil || existing == nil {
				return "", err
			}
			return existing.ID(), nil
		},
	}); err != nil {
		return nil, err
	}
	if err := s.checkCityRef(ctx, in.CityID); err != nil {
		return nil, err
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	cand, err := s.Candidates.Create(ctx, entity.CandidateDraft{
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		CityID:       in.CityID,
		Headline:     in.Headline,
		LinkedinURL:  in.LinkedinURL,
	})
	if err != nil {
		return nil, err
	}

	s.publishWelcome(ctx, cand)
	_ = s.indexCandidate(ctx, cand)

	s.Logger.WithFields(logrus.Fields{"candidate_id": cand.ID()}).Debug("candidate registered")
	return cand, nil
}

type UpdateCandidateInput struct {
	FirstName   *string
	LastName    *string
	CityID      *string
	Headline    *string
	LinkedinURL *string
}

func (s *CandidateService) UpdateProfile(ctx context.Context, id string, in UpdateCandidateInput) (*entity.Candidate, error) {
	s.Logger.WithFields(logrus.Fields{"candidate_id": id}).Debug("updating candidate profile")

	cand, err := s.Candidates.Find(ctx, repository.CandidateFilter{ID: &id})
	if err != nil {
		return nil, err
	}
	if cand == nil {
		return nil, &OperationNotValidError{Reason: "Candidate not found.", ID: id}
	}
	if err := s.checkCityRef(ctx, in.CityID); err != nil {
		return nil, err
	}

	if in.FirstName != nil {
		cand.SetFirstName(*in.FirstName)
	}
	if in.LastName != nil {
		cand.SetLastName(*in.LastName)
	}
	if in.CityID != nil {
		cand.SetCityID(*in.CityID)
	}
	if in.Headline != nil {
		cand.SetHeadline(*in.Headline)
	}
	if in.LinkedinURL != nil {
		cand.SetLinkedinURL(*in.LinkedinURL)
	}

	updated, err := s.Candidates.Update(ctx, cand)
	if err != nil {
		return nil, err
	}
	_ = s.indexCandidate(ctx, updated)

	s.Logger.WithFields(logrus.Fields{"candidate_id": id}).Debug("candidate profile updated")
	return updated, nil
}

func (s *CandidateService) Get(ctx context.Context, id string) (*entity.Candidate, error) {
	cand, err := s.Candidates.Find(ctx, repository.CandidateFilter{ID: &id})
	if err != nil {
		return nil, err
	}
	if cand == nil {
		return nil, &OperationNotValidError{Reason: "Candidate not found.", ID: id}
	}
	return cand, nil
}

func (s *CandidateService) List(ctx context.Context, f repository.CandidateFilter) ([]*entity.Candidate, int, error) {
	items, err := s.Candidates.FindMany(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.Candidates.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// UploadResume stores the CV in GCS and records the object URL on the profile.
func (s *CandidateService) UploadResume(ctx context.Context, id string, r io.Reader, filename, contentType string) (string, error) {
	cand, err := s.Candidates.Find(ctx, repository.CandidateFilter{ID: &id})
	if err != nil {
		return "", err
	}
	if cand == nil {
		return "", &OperationNotValidError{Reason: "Candidate not found.", ID: id}
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("resumes", id, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}

	cand.SetResumeURL(url)
	if _, err := s.Candidates.Update(ctx, cand); err != nil {
		return "", err
	}
	_ = s.indexCandidate(ctx, cand)
	return url, nil
}

func (s *CandidateService) checkCityRef(ctx context.Context, cityID *string) error {
	if cityID == nil {
		return nil
	}
	return checkReferences(ctx, refCheck{
		resource: "City",
		id:       *cityID,
		found: func(ctx context.Context) (bool, error) {
			city, err := s.Cities.Find(ctx, repository.CityFilter{ID: cityID})
			return city != nil, err
		},
	})
}

func (s *CandidateService) publishWelcome(ctx context.Context, cand *entity.Candidate) {
	if s.Mail == nil {
		return
	}
	job := mailer.EmailJob{
		To:       cand.Email(),
		Template: "welcome",
		Data: map[string]any{
			"FirstName": cand.FirstName(),
		},
	}
	if err := s.Mail.PublishJSON(ctx, job); err != nil {
		s.Logger.WithError(err).WithField("candidate_id", cand.ID()).Warn("welcome email publish failed")
	}
}

func (s *CandidateService) indexCandidate(ctx context.Context, cand *entity.Candidate) error {
	if s.ES == nil || s.ESIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":        cand.ID(),
		"email":     cand.Email(),
		"firstName": cand.FirstName(),
		"lastName":  cand.LastName(),
	}
	if v, ok := cand.Headline(); ok {
		doc["headline"] = v
	}
	if v, ok := cand.CityID(); ok {
		doc["cityId"] = v
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: cand.ID(), Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		s.Logger.WithError(err).WithField("candidate_id", cand.ID()).Warn("es index failed")
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		s.Logger.WithField("status", res.Status()).WithField("candidate_id", cand.ID()).Warn("es index response error")
	}
	return nil
}

// Search performs a multi_match over name, headline, and email.
func (s *CandidateService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"firstName^2", "lastName^2", "headline", "email"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
