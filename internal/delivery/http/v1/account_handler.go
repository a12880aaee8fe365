package v1

import (
	"net/http"

	"alumni-directory-backend/internal/delivery/http/response"
	"alumni-directory-backend/internal/domain"
	"alumni-directory-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	accountUC domain.AccountUsecase
	commandUC domain.AlumniCommandUsecase
	queryUC   domain.AlumniQueryUsecase
	avatarUC  domain.AvatarUsecase
}

// NewAccountHandler registers the caller's own account routes.
func NewAccountHandler(
	protected *gin.RouterGroup,
	accountUC domain.AccountUsecase,
	commandUC domain.AlumniCommandUsecase,
	queryUC domain.AlumniQueryUsecase,
	avatarUC domain.AvatarUsecase,
	uploadLimiter gin.HandlerFunc,
) {
	handler := &AccountHandler{
		accountUC: accountUC,
		commandUC: commandUC,
		queryUC:   queryUC,
		avatarUC:  avatarUC,
	}

	account := protected.Group("/account")
	{
		account.GET("/me", handler.GetMe)
		account.PUT("/initial-settings", handler.UpdateInitialSettings)
		account.PUT("/profile", handler.UpdateProfile)
		account.POST("/avatar/upload-url", uploadLimiter, handler.CreateAvatarUploadURL)
		account.POST("/avatar/complete", handler.CompleteAvatar)
		account.PUT("/linked-email", handler.LinkEmail)
		account.DELETE("/linked-email", handler.UnlinkEmail)
		account.DELETE("", handler.DeleteAccount)
	}
}

// InitialSettingsRequest is the one-time academic registration.
// duration_years is accepted for older clients and ignored.
type InitialSettingsRequest struct {
	Name           string `json:"name"`
	StudentID      string `json:"student_id"`
	EnrollmentYear int    `json:"enrollment_year"`
	Department     string `json:"department"`
	DurationYears  *int   `json:"duration_years,omitempty"`
}

type UploadURLRequest struct {
	FileName    string `json:"file_name" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
}

type CompleteAvatarRequest struct {
	AvatarURL string `json:"avatar_url" binding:"required"`
}

type LinkEmailRequest struct {
	Email string `json:"email" binding:"required"`
}

type DeleteAccountResponse struct {
	Deleted bool `json:"deleted"`
}

func currentUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(string(domain.KeyUserID))
	if userID == "" {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return "", false
	}
	return userID, true
}

// GetMe godoc
// @Summary Get own account
// @Description Returns the caller with academic data, derived role/status and alumni profile
// @Tags Account
// @Produce json
// @Success 200 {object} domain.User
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /account/me [get]
// @Security BearerAuth
func (h *AccountHandler) GetMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.queryUC.GetMyProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	if user == nil {
		c.Error(apperror.NotFound("User not found"))
		return
	}

	response.Success(c, http.StatusOK, "Account retrieved", user)
}

// UpdateInitialSettings godoc
// @Summary Register academic data
// @Description Sets name, student ID, enrollment year and department. Program duration and role are derived server-side.
// @Tags Account
// @Accept json
// @Produce json
// @Param request body InitialSettingsRequest true "Academic data"
// @Success 200 {object} domain.User
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /account/initial-settings [put]
// @Security BearerAuth
func (h *AccountHandler) UpdateInitialSettings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req InitialSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	user, err := h.commandUC.UpdateInitialSettings(c.Request.Context(), userID, domain.InitialSettingsInput{
		Name:           req.Name,
		StudentID:      req.StudentID,
		EnrollmentYear: req.EnrollmentYear,
		Department:     domain.Department(req.Department),
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Initial settings saved", user)
}

// UpdateProfile godoc
// @Summary Create or update alumni profile
// @Description Upserts the caller's directory profile. The company list replaces the stored one.
// @Tags Account
// @Accept json
// @Produce json
// @Param request body domain.AlumniProfileInput true "Profile data"
// @Success 200 {object} domain.AlumniProfile
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /account/profile [put]
// @Security BearerAuth
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req domain.AlumniProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	profile, err := h.commandUC.UpdateAlumniProfile(c.Request.Context(), userID, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Alumni profile saved", profile)
}

// CreateAvatarUploadURL godoc
// @Summary Request avatar upload URL
// @Description Issues a presigned PUT URL valid for a few minutes. Finish with /account/avatar/complete.
// @Tags Account
// @Accept json
// @Produce json
// @Param request body UploadURLRequest true "File info"
// @Success 200 {object} domain.UploadURL
// @Failure 400 {object} response.Response
// @Failure 429 {object} response.Response
// @Router /account/avatar/upload-url [post]
// @Security BearerAuth
func (h *AccountHandler) CreateAvatarUploadURL(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("file_name and content_type are required"))
		return
	}

	upload, err := h.avatarUC.CreateUploadURL(c.Request.Context(), userID, req.FileName, req.ContentType)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Upload URL created", upload)
}

// CompleteAvatar godoc
// @Summary Attach uploaded avatar
// @Description Points the profile at the uploaded file and removes the previous avatar
// @Tags Account
// @Accept json
// @Produce json
// @Param request body CompleteAvatarRequest true "Uploaded file URL"
// @Success 200 {object} domain.AlumniProfile
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /account/avatar/complete [post]
// @Security BearerAuth
func (h *AccountHandler) CompleteAvatar(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CompleteAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("avatar_url is required"))
		return
	}

	profile, err := h.commandUC.UpdateAvatar(c.Request.Context(), userID, req.AvatarURL)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Avatar updated", profile)
}

// LinkEmail godoc
// @Summary Link a personal email
// @Description Links a secondary address used to sign in after the school mailbox expires
// @Tags Account
// @Accept json
// @Produce json
// @Param request body LinkEmailRequest true "Email"
// @Success 200 {object} domain.User
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /account/linked-email [put]
// @Security BearerAuth
func (h *AccountHandler) LinkEmail(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req LinkEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("email is required"))
		return
	}

	user, err := h.accountUC.LinkEmail(c.Request.Context(), userID, req.Email)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Email linked", user)
}

// UnlinkEmail godoc
// @Summary Unlink personal email
// @Tags Account
// @Produce json
// @Success 200 {object} domain.User
// @Router /account/linked-email [delete]
// @Security BearerAuth
func (h *AccountHandler) UnlinkEmail(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.accountUC.UnlinkEmail(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Email unlinked", user)
}

// DeleteAccount godoc
// @Summary Delete own account
// @Description Deletes the account together with the alumni profile and avatar
// @Tags Account
// @Produce json
// @Success 200 {object} DeleteAccountResponse
// @Router /account [delete]
// @Security BearerAuth
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	deleted, err := h.accountUC.DeleteAccount(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Account deleted", DeleteAccountResponse{Deleted: deleted})
}
