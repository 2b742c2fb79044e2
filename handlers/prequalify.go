package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sriramindia007/finflux-leadmanagement-sub000/prequalify"
	"github.com/sriramindia007/finflux-leadmanagement-sub000/types"
)

// Prequalify runs the weighted-rule evaluator over intake data without
// creating a lead. Used by the intake screen for instant feedback.
func Prequalify(c *gin.Context) {
	var input types.PrequalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prequalify.Evaluate(input))
}
