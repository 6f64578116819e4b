// Package documents defines the entities and contracts for application
// material: resumes, resume-to-post fit scores, and cover letters.
package documents
