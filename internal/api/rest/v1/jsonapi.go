package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/overcast-software/career-caddy-api/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// ContentType is the JSON:API media type
const ContentType = "application/vnd.api+json"

// Resource type names as they appear on the wire
const (
	TypeUsers          = "users"
	TypeCompanies      = "companies"
	TypeJobPosts       = "job-posts"
	TypeScrapes        = "scrapes"
	TypeResumes        = "resumes"
	TypeScores         = "scores"
	TypeCoverLetters   = "cover-letters"
	TypeApplications   = "applications"
	TypeStatuses       = "statuses"
	TypeSummaries      = "summaries"
	TypeExperiences    = "experiences"
	TypeEducations     = "educations"
	TypeCertifications = "certifications"
	TypeDescriptions   = "descriptions"
)

// DefaultPageSize caps collection responses unless the client pages explicitly
const DefaultPageSize = 50

// Links holds the self/related link pair of a resource or relationship
type Links struct {
	Self    string `json:"self,omitempty"`
	Related string `json:"related,omitempty"`
}

// ResourceIdentifier is the (type, id) pair used in relationship linkage
type ResourceIdentifier struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Relationship carries linkage data and navigation links. Data is either a
// *ResourceIdentifier, a []*ResourceIdentifier or absent.
type Relationship struct {
	Links *Links      `json:"links,omitempty"`
	Data  interface{} `json:"data,omitempty"`
}

// Resource is a single JSON:API resource object. IDs are decimal strings and
// attribute keys snake_case.
type Resource struct {
	Type          string                   `json:"type"`
	ID            string                   `json:"id"`
	Attributes    map[string]interface{}   `json:"attributes,omitempty"`
	Relationships map[string]*Relationship `json:"relationships,omitempty"`
	Links         *Links                   `json:"links,omitempty"`
}

// Document is a top-level JSON:API document. Data is a *Resource for single
// responses and a []*Resource for collections.
type Document struct {
	Data     interface{} `json:"data"`
	Included []*Resource `json:"included,omitempty"`
}

// ErrorObject is one error entry in an error document
type ErrorObject struct {
	Detail string `json:"detail"`
}

// ErrorDocument is the JSON:API error envelope
type ErrorDocument struct {
	Errors []ErrorObject `json:"errors"`
}

// resourcePayload is the request body shape for create and update
type resourcePayload struct {
	Data struct {
		Type          string                 `json:"type"`
		ID            string                 `json:"id"`
		Attributes    map[string]interface{} `json:"attributes"`
		Relationships map[string]struct {
			Data *ResourceIdentifier `json:"data"`
		} `json:"relationships"`
	} `json:"data"`
}

// writeError responds with a JSON:API error document
func writeError(ctx *gin.Context, status int, detail string) {
	ctx.JSON(status, ErrorDocument{Errors: []ErrorObject{{Detail: detail}}})
}

// writeDocument responds with a JSON:API document
func writeDocument(ctx *gin.Context, status int, doc *Document) {
	ctx.Header("Content-Type", ContentType)
	ctx.JSON(status, doc)
}

// formatID renders a numeric ID as the decimal string the wire format uses
func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// pathID extracts and parses the :id route parameter, responding 404 itself
// when it is not a positive integer
func pathID(ctx *gin.Context) (uint, bool) {
	id := strutil.ConvertToUint(ctx.Param("id"))
	if id == 0 {
		writeError(ctx, http.StatusNotFound, fmt.Sprintf("invalid resource id %q", ctx.Param("id")))
		return 0, false
	}
	return id, true
}

// pagination holds resolved page[number]/page[size] query parameters
type pagination struct {
	Number int
	Size   int
}

// parsePage resolves page[number] (1-based, default 1) and page[size]
// (default 50). Malformed values fall back to the defaults.
func parsePage(ctx *gin.Context) pagination {
	page := pagination{Number: 1, Size: DefaultPageSize}

	if number := ctx.Query("page[number]"); number != "" {
		if parsed := strutil.ConvertToInt(number); parsed > 0 {
			page.Number = parsed
		}
	}
	if size := ctx.Query("page[size]"); size != "" {
		if parsed := strutil.ConvertToInt(size); parsed > 0 {
			page.Size = parsed
		}
	}
	return page
}

// Limit returns the page size as a repository limit
func (p pagination) Limit() int {
	return p.Size
}

// Offset returns the number of records preceding the page
func (p pagination) Offset() int {
	return (p.Number - 1) * p.Size
}

// includeSet resolves the include query parameter. When the client sends no
// include parameter every first-level relationship is included, matching the
// original API's behavior.
type includeSet struct {
	all   bool
	names map[string]bool
}

// parseInclude reads the include query parameter into an includeSet
func parseInclude(ctx *gin.Context) includeSet {
	raw, present := ctx.GetQuery("include")
	if !present {
		return includeSet{all: true}
	}

	names := map[string]bool{}
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			names[name] = true
		}
	}
	return includeSet{names: names}
}

// Has reports whether a relationship name should be included
func (s includeSet) Has(name string) bool {
	return s.all || s.names[name]
}

// Empty reports whether nothing is to be included
func (s includeSet) Empty() bool {
	return !s.all && len(s.names) == 0
}

// includeCollector accumulates included resources, de-duplicated by
// (type, id)
type includeCollector struct {
	seen      map[ResourceIdentifier]bool
	resources []*Resource
}

func newIncludeCollector() *includeCollector {
	return &includeCollector{seen: map[ResourceIdentifier]bool{}}
}

// Add appends a resource unless the same (type, id) is already collected
func (c *includeCollector) Add(resource *Resource) {
	key := ResourceIdentifier{Type: resource.Type, ID: resource.ID}
	if c.seen[key] {
		return
	}
	c.seen[key] = true
	c.resources = append(c.resources, resource)
}

// Resources returns the collected resources in insertion order
func (c *includeCollector) Resources() []*Resource {
	return c.resources
}

// resourceSelfLink builds the canonical self URL of a resource
func resourceSelfLink(typeName string, id uint) string {
	return fmt.Sprintf("%s/%s/%s", BasePath, typeName, formatID(id))
}

// relationshipLinks builds the self/related link pair of a named relationship
func relationshipLinks(typeName string, id uint, relName string) *Links {
	self := resourceSelfLink(typeName, id)
	return &Links{
		Self:    fmt.Sprintf("%s/relationships/%s", self, relName),
		Related: fmt.Sprintf("%s/%s", self, relName),
	}
}

// toOneRelationship builds a relationship with FK-based linkage. A nil FK
// yields explicit null data.
func toOneRelationship(typeName string, id uint, relName, targetType string, targetID *uint) *Relationship {
	rel := &Relationship{Links: relationshipLinks(typeName, id, relName)}
	if targetID != nil {
		rel.Data = &ResourceIdentifier{Type: targetType, ID: formatID(*targetID)}
	}
	return rel
}

// toManyRelationship builds a relationship carrying navigation links only;
// linkage data is served by the relationship endpoint
func toManyRelationship(typeName string, id uint, relName string) *Relationship {
	return &Relationship{Links: relationshipLinks(typeName, id, relName)}
}

// attrString reads a string attribute, tolerating absence
func attrString(attrs map[string]interface{}, key string) string {
	if value, ok := attrs[key].(string); ok {
		return value
	}
	return ""
}

// attrBool reads a boolean attribute, tolerating absence
func attrBool(attrs map[string]interface{}, key string) bool {
	if value, ok := attrs[key].(bool); ok {
		return value
	}
	return false
}

// attrIntPtr reads a numeric attribute as *int, nil when absent
func attrIntPtr(attrs map[string]interface{}, key string) *int {
	if value, ok := attrs[key].(float64); ok {
		parsed := int(value)
		return &parsed
	}
	return nil
}

// attrTime reads a timestamp attribute accepting RFC3339 or a bare date.
// Absent, null and empty values yield nil; a value that is present but
// unparseable is an error, so a bad timestamp cannot silently clear a
// stored one.
func attrTime(attrs map[string]interface{}, key string) (*time.Time, error) {
	raw, present := attrs[key]
	if !present || raw == nil {
		return nil, nil
	}
	value, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("invalid %s", key)
	}
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed, nil
		}
	}
	return nil, fmt.Errorf("invalid %s", key)
}

// relationshipID extracts a to-one FK from a payload's relationships
func (p *resourcePayload) relationshipID(name string) *uint {
	rel, ok := p.Data.Relationships[name]
	if !ok || rel.Data == nil {
		return nil
	}
	id := strutil.ConvertToUint(rel.Data.ID)
	if id == 0 {
		return nil
	}
	return &id
}

// bindPayload parses a JSON:API request body, responding 400 itself on
// malformed input or a mismatched resource type
func bindPayload(ctx *gin.Context, expectedType string) (*resourcePayload, bool) {
	payload := &resourcePayload{}
	if err := ctx.ShouldBindJSON(payload); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return nil, false
	}
	if payload.Data.Type != "" && payload.Data.Type != expectedType {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("resource type %q does not match endpoint type %q", payload.Data.Type, expectedType))
		return nil, false
	}
	return payload, true
}
