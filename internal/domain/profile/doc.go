// Package profile holds the resume-building blocks a user assembles into
// resumes: summaries, work experiences, educations, certifications and the
// description lines attached to experiences. Experiences, educations and
// certifications link to resumes through join tables so one entry can appear
// on several resumes.
package profile
