package handlers

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"github.com/sriramindia007/finflux-leadmanagement-sub000/pincode"
)

var pincodePattern = regexp.MustCompile(`^[1-9][0-9]{5}$`)

// LookupPincode resolves a six-digit Indian postal code to a locality and
// coordinates.
func LookupPincode(c *gin.Context) {
	code := c.Param("code")
	if !pincodePattern.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pincode must be six digits"})
		return
	}

	info, err := pincode.Lookup(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, info)
}
