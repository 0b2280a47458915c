package handlers

import (
	"net/http"
	"regexp"
	"time"

	"homeserve/utils"

	"github.com/gin-gonic/gin"
)

var phoneInputPattern = regexp.MustCompile(`^[0-9]{10}$`)

const authTokenTTL = 72 * time.Hour

// RequestOTPHandler generates a verification code for a phone number and
// hands it to the SMS collaborator.
func RequestOTPHandler(c *gin.Context) {
	var input struct {
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if !phoneInputPattern.MatchString(input.Phone) {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "phone must be a 10-digit number")
		return
	}

	if err := utils.InitiatePhoneOTP(input.Phone); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to send verification code", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "verification code sent"})
}

// VerifyOTPHandler verifies the code and issues an auth token bound to the
// phone number.
func VerifyOTPHandler(c *gin.Context) {
	var input struct {
		Phone string `json:"phone"`
		Code  string `json:"code"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := utils.VerifyPhoneOTP(input.Phone, input.Code); err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "verification failed", err.Error())
		return
	}

	token, err := utils.GenerateToken(input.Phone, authTokenTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
