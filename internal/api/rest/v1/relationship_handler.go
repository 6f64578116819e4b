package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// relationshipHandler serves the relationship linkage and related-resource
// endpoints shared by every resource type
type relationshipHandler struct {
	resolver *relatedResolver
}

func newRelationshipHandler(resolver *relatedResolver) *relationshipHandler {
	return &relationshipHandler{resolver: resolver}
}

// Linkage serves GET /<type>/:id/relationships/:rel with (type, id) pairs
func (h *relationshipHandler) Linkage(typeName string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, ok := pathID(ctx)
		if !ok {
			return
		}
		relName := ctx.Param("rel")

		resources, toOne, err := h.resolver.resolve(ctx, typeName, id, relName)
		if errors.Is(err, errUnknownRelationship) {
			writeError(ctx, http.StatusNotFound, fmt.Sprintf("%s have no relationship %q", typeName, relName))
			return
		}
		if err != nil {
			writeError(ctx, http.StatusNotFound, err.Error())
			return
		}

		if toOne {
			var data interface{}
			if len(resources) > 0 {
				data = &ResourceIdentifier{Type: resources[0].Type, ID: resources[0].ID}
			}
			writeDocument(ctx, http.StatusOK, &Document{Data: data})
			return
		}

		identifiers := make([]*ResourceIdentifier, len(resources))
		for i, resource := range resources {
			identifiers[i] = &ResourceIdentifier{Type: resource.Type, ID: resource.ID}
		}
		writeDocument(ctx, http.StatusOK, &Document{Data: identifiers})
	}
}

// Related serves GET /<type>/:id/<rel> with full resource objects
func (h *relationshipHandler) Related(typeName, relName string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, ok := pathID(ctx)
		if !ok {
			return
		}

		resources, toOne, err := h.resolver.resolve(ctx, typeName, id, relName)
		if err != nil {
			writeError(ctx, http.StatusNotFound, err.Error())
			return
		}

		if toOne {
			var data interface{}
			if len(resources) > 0 {
				data = resources[0]
			}
			writeDocument(ctx, http.StatusOK, &Document{Data: data})
			return
		}

		if resources == nil {
			resources = []*Resource{}
		}
		writeDocument(ctx, http.StatusOK, &Document{Data: resources})
	}
}
