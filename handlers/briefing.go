package handlers

import (
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/sriramindia007/finflux-leadmanagement-sub000/briefing"
	"github.com/sriramindia007/finflux-leadmanagement-sub000/db"
	"github.com/sriramindia007/finflux-leadmanagement-sub000/types"
)

type briefingRequest struct {
	Recommendation types.RecommendationResult `json:"recommendation"`
	Explanation    []string                   `json:"explanation"`
}

// LeadBriefing drafts a visit note for a lead, optionally folding in a slot
// recommendation the client already obtained.
func LeadBriefing(c *gin.Context, firestoreClient *firestore.Client, openaiClient *openai.Client) {
	lead, err := db.GetLead(firestoreClient, c.Param("id"))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// body is optional
	var req briefingRequest
	_ = c.ShouldBindJSON(&req)

	note, err := briefing.BuildVisitBriefing(c.Request.Context(), openaiClient, lead, req.Recommendation, req.Explanation)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"leadId": lead.ID, "briefing": note})
}
