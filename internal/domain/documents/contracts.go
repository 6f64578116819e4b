package documents

import (
	"context"
)

// ResumeRepository defines the interface for Resume-related persistence operations
type ResumeRepository interface {
	Create(ctx context.Context, resume *Resume) error
	List(ctx context.Context, query *ResumeQuery) ([]*Resume, error)
	GetByID(ctx context.Context, resumeID uint) (*Resume, error)
	// FirstByUserAndContent finds an existing resume with identical content
	// for the user, for ingest dedup. Returns nil without error when absent.
	FirstByUserAndContent(ctx context.Context, userID *uint, content string) (*Resume, error)
	UpdateByID(ctx context.Context, resume *Resume) error
	DeleteByID(ctx context.Context, resumeID uint) error
}

// ScoreRepository defines the interface for Score-related persistence operations
type ScoreRepository interface {
	Create(ctx context.Context, score *Score) error
	List(ctx context.Context, query *ScoreQuery) ([]*Score, error)
	GetByID(ctx context.Context, scoreID uint) (*Score, error)
	UpdateByID(ctx context.Context, score *Score) error
	DeleteByID(ctx context.Context, scoreID uint) error
}

// CoverLetterRepository defines the interface for CoverLetter-related persistence operations
type CoverLetterRepository interface {
	Create(ctx context.Context, coverLetter *CoverLetter) error
	List(ctx context.Context, query *CoverLetterQuery) ([]*CoverLetter, error)
	GetByID(ctx context.Context, coverLetterID uint) (*CoverLetter, error)
	UpdateByID(ctx context.Context, coverLetter *CoverLetter) error
	DeleteByID(ctx context.Context, coverLetterID uint) error
}

// DocumentService defines methods for managing resumes, scores and cover letters
type DocumentService interface {
	CreateResume(ctx context.Context, resume *Resume) error
	ListResumes(ctx context.Context, query *ResumeQuery) ([]*Resume, error)
	GetResumeByID(ctx context.Context, resumeID uint) (*Resume, error)
	UpdateResume(ctx context.Context, resume *Resume) error
	DeleteResumeByID(ctx context.Context, resumeID uint) error

	CreateScore(ctx context.Context, score *Score) error
	ListScores(ctx context.Context, query *ScoreQuery) ([]*Score, error)
	GetScoreByID(ctx context.Context, scoreID uint) (*Score, error)
	UpdateScore(ctx context.Context, score *Score) error
	DeleteScoreByID(ctx context.Context, scoreID uint) error

	CreateCoverLetter(ctx context.Context, coverLetter *CoverLetter) error
	ListCoverLetters(ctx context.Context, query *CoverLetterQuery) ([]*CoverLetter, error)
	GetCoverLetterByID(ctx context.Context, coverLetterID uint) (*CoverLetter, error)
	UpdateCoverLetter(ctx context.Context, coverLetter *CoverLetter) error
	DeleteCoverLetterByID(ctx context.Context, coverLetterID uint) error
}

// IngestService defines methods for turning raw resume material into stored
// resumes.
type IngestService interface {
	// IngestResume stores resume content for a user, deduplicating on
	// identical content (first-or-create). The boolean reports whether a new
	// resume was created.
	IngestResume(ctx context.Context, userID *uint, content, filePath string) (*Resume, bool, error)
}
