// Package postings defines the entities and contracts for the job market
// side of the system: companies, the job posts they publish, and the scrapes
// that captured those posts.
package postings
