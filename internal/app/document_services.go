package app

import (
	"context"
	"fmt"

	"github.com/overcast-software/career-caddy-api/internal/domain/documents"
	"github.com/overcast-software/career-caddy-api/internal/pkg/logger"
)

// documentService implements the DocumentService interface for managing
// resumes, scores and cover letters
type documentService struct {
	resumeRepo      documents.ResumeRepository
	scoreRepo       documents.ScoreRepository
	coverLetterRepo documents.CoverLetterRepository
	logger          logger.Logger
}

// NewDocumentService creates a new instance of DocumentService
func NewDocumentService(
	resumeRepo documents.ResumeRepository,
	scoreRepo documents.ScoreRepository,
	coverLetterRepo documents.CoverLetterRepository,
	logger logger.Logger,
) (documents.DocumentService, error) {
	return &documentService{
		resumeRepo:      resumeRepo,
		scoreRepo:       scoreRepo,
		coverLetterRepo: coverLetterRepo,
		logger:          logger,
	}, nil
}

func (s *documentService) CreateResume(ctx context.Context, resume *documents.Resume) error {
	if err := s.resumeRepo.Create(ctx, resume); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *documentService) ListResumes(ctx context.Context, query *documents.ResumeQuery) ([]*documents.Resume, error) {
	resumes, err := s.resumeRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return resumes, nil
}

func (s *documentService) GetResumeByID(ctx context.Context, resumeID uint) (*documents.Resume, error) {
	resume, err := s.resumeRepo.GetByID(ctx, resumeID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return resume, nil
}

func (s *documentService) UpdateResume(ctx context.Context, resume *documents.Resume) error {
	if err := s.resumeRepo.UpdateByID(ctx, resume); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *documentService) DeleteResumeByID(ctx context.Context, resumeID uint) error {
	if err := s.resumeRepo.DeleteByID(ctx, resumeID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *documentService) CreateScore(ctx context.Context, score *documents.Score) error {
	if err := s.scoreRepo.Create(ctx, score); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *documentService) ListScores(ctx context.Context, query *documents.ScoreQuery) ([]*documents.Score, error) {
	scores, err := s.scoreRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return scores, nil
}

func (s *documentService) GetScoreByID(ctx context.Context, scoreID uint) (*documents.Score, error) {
	score, err := s.scoreRepo.GetByID(ctx, scoreID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return score, nil
}

func (s *documentService) UpdateScore(ctx context.Context, score *documents.Score) error {
	if err := s.scoreRepo.UpdateByID(ctx, score); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *documentService) DeleteScoreByID(ctx context.Context, scoreID uint) error {
	if err := s.scoreRepo.DeleteByID(ctx, scoreID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *documentService) CreateCoverLetter(ctx context.Context, coverLetter *documents.CoverLetter) error {
	if err := s.coverLetterRepo.Create(ctx, coverLetter); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *documentService) ListCoverLetters(ctx context.Context, query *documents.CoverLetterQuery) ([]*documents.CoverLetter, error) {
	coverLetters, err := s.coverLetterRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return coverLetters, nil
}

func (s *documentService) GetCoverLetterByID(ctx context.Context, coverLetterID uint) (*documents.CoverLetter, error) {
	coverLetter, err := s.coverLetterRepo.GetByID(ctx, coverLetterID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return coverLetter, nil
}

func (s *documentService) UpdateCoverLetter(ctx context.Context, coverLetter *documents.CoverLetter) error {
	if err := s.coverLetterRepo.UpdateByID(ctx, coverLetter); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *documentService) DeleteCoverLetterByID(ctx context.Context, coverLetterID uint) error {
	if err := s.coverLetterRepo.DeleteByID(ctx, coverLetterID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// ingestService implements the IngestService interface for first-or-create
// resume ingestion
type ingestService struct {
	resumeRepo documents.ResumeRepository
	logger     logger.Logger
}

// NewIngestService creates a new instance of IngestService
func NewIngestService(resumeRepo documents.ResumeRepository, logger logger.Logger) (documents.IngestService, error) {
	return &ingestService{
		resumeRepo: resumeRepo,
		logger:     logger,
	}, nil
}

// IngestResume stores resume content for a user, deduplicating on identical
// content. Re-ingesting the same material returns the stored resume instead
// of a duplicate row.
func (s *ingestService) IngestResume(ctx context.Context, userID *uint, content, filePath string) (*documents.Resume, bool, error) {
	if content == "" {
		return nil, false, fmt.Errorf("resume content must not be empty")
	}

	existing, err := s.resumeRepo.FirstByUserAndContent(ctx, userID, content)
	if err != nil {
		return nil, false, fmt.Errorf("%w", err)
	}
	if existing != nil {
		s.logger.Info("Resume content already ingested as id ", existing.ID)
		return existing, false, nil
	}

	resume := &documents.Resume{
		Content:  content,
		FilePath: filePath,
		UserID:   userID,
	}
	if err := s.resumeRepo.Create(ctx, resume); err != nil {
		return nil, false, fmt.Errorf("%w", err)
	}

	s.logger.Info("Ingested resume with id ", resume.ID)
	return resume, true, nil
}
