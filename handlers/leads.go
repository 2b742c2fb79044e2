package handlers

import (
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/sriramindia007/finflux-leadmanagement-sub000/db"
	"github.com/sriramindia007/finflux-leadmanagement-sub000/prequalify"
	"github.com/sriramindia007/finflux-leadmanagement-sub000/types"
)

type createLeadRequest struct {
	Name           string  `json:"name" binding:"required"`
	Phone          string  `json:"phone" binding:"required"`
	Pincode        string  `json:"pincode"`
	CentreID       string  `json:"centreId"`
	Age            int     `json:"age"`
	MonthlyIncome  float64 `json:"monthlyIncome"`
	ExistingLoans  int     `json:"existingLoans"`
	HasBankAccount bool    `json:"hasBankAccount"`
	YearsInArea    int     `json:"yearsInArea"`
	Source         string  `json:"source"`
	Notes          string  `json:"notes"`
}

// CreateLead registers a new lead, runs prequalification and stores the result.
func CreateLead(c *gin.Context, client *firestore.Client) {
	var req createLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prequal := prequalify.Evaluate(types.PrequalInput{
		Age:            req.Age,
		MonthlyIncome:  req.MonthlyIncome,
		ExistingLoans:  req.ExistingLoans,
		HasBankAccount: req.HasBankAccount,
		YearsInArea:    req.YearsInArea,
	})

	now := time.Now().UTC()
	lead := types.Lead{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Phone:          req.Phone,
		Pincode:        req.Pincode,
		CentreID:       req.CentreID,
		Age:            req.Age,
		MonthlyIncome:  req.MonthlyIncome,
		ExistingLoans:  req.ExistingLoans,
		HasBankAccount: req.HasBankAccount,
		YearsInArea:    req.YearsInArea,
		Source:         req.Source,
		Notes:          req.Notes,
		Status:         types.LeadStatusNew,
		PrequalBand:    prequal.Band,
		PrequalScore:   prequal.Score,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := db.CreateLead(client, lead); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"lead":             lead,
		"prequalification": prequal,
	})
}

// ListLeads returns all leads, optionally filtered by ?status=.
func ListLeads(c *gin.Context, client *firestore.Client) {
	leadStatus := c.Query("status")
	if leadStatus != "" && !types.IsLeadStatus(leadStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status " + leadStatus})
		return
	}

	leads, err := db.ListLeads(client, leadStatus)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if leads == nil {
		leads = []types.Lead{}
	}
	c.JSON(http.StatusOK, gin.H{"leads": leads, "count": len(leads)})
}

// GetLead returns one lead by ID.
func GetLead(c *gin.Context, client *firestore.Client) {
	lead, err := db.GetLead(client, c.Param("id"))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, lead)
}

type patchLeadRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Pincode  *string `json:"pincode"`
	CentreID *string `json:"centreId"`
	Source   *string `json:"source"`
	Notes    *string `json:"notes"`
}

// UpdateLead merges the provided fields into a lead.
func UpdateLead(c *gin.Context, client *firestore.Client) {
	var req patchLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Pincode != nil {
		fields["pincode"] = *req.Pincode
	}
	if req.CentreID != nil {
		fields["centreId"] = *req.CentreID
	}
	if req.Source != nil {
		fields["source"] = *req.Source
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
		return
	}

	if err := db.UpdateLead(client, c.Param("id"), fields); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateLeadStatus moves a lead through the qualification workflow, rejecting
// transitions the status machine does not allow.
func UpdateLeadStatus(c *gin.Context, client *firestore.Client) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !types.IsLeadStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status " + req.Status})
		return
	}

	lead, err := db.GetLead(client, c.Param("id"))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !types.CanTransition(lead.Status, req.Status) {
		c.JSON(http.StatusConflict, gin.H{
			"error": "cannot move lead from " + lead.Status + " to " + req.Status,
		})
		return
	}

	if err := db.UpdateLeadStatus(client, lead.ID, req.Status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": lead.ID, "status": req.Status})
}

// DeleteLead removes a lead.
func DeleteLead(c *gin.Context, client *firestore.Client) {
	if err := db.DeleteLead(client, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
