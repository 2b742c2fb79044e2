package routes

import (
	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"

	"github.com/sriramindia007/finflux-leadmanagement-sub000/handlers"
)

func SetupRouter(firestoreClient *firestore.Client, openaiClient *openai.Client) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Finflux lead management API",
		})
	})

	// api routes
	api := r.Group("/api/v1")
	{
		api.POST("/leads", func(c *gin.Context) {
			handlers.CreateLead(c, firestoreClient)
		})
		api.GET("/leads", func(c *gin.Context) {
			handlers.ListLeads(c, firestoreClient)
		})
		api.GET("/leads/:id", func(c *gin.Context) {
			handlers.GetLead(c, firestoreClient)
		})
		api.PATCH("/leads/:id", func(c *gin.Context) {
			handlers.UpdateLead(c, firestoreClient)
		})
		api.PATCH("/leads/:id/status", func(c *gin.Context) {
			handlers.UpdateLeadStatus(c, firestoreClient)
		})
		api.DELETE("/leads/:id", func(c *gin.Context) {
			handlers.DeleteLead(c, firestoreClient)
		})
		api.POST("/leads/bulk", func(c *gin.Context) {
			handlers.BulkUploadLeads(c, firestoreClient)
		})
		api.POST("/leads/:id/briefing", func(c *gin.Context) {
			handlers.LeadBriefing(c, firestoreClient, openaiClient)
		})

		api.POST("/prequalify", handlers.Prequalify)
		api.GET("/pincode/:code", handlers.LookupPincode)

		api.POST("/visits/recommend", func(c *gin.Context) {
			handlers.RecommendVisit(c, firestoreClient)
		})
		api.POST("/visits/explain", func(c *gin.Context) {
			handlers.ExplainVisitSlot(c, firestoreClient)
		})
	}

	return r
}
