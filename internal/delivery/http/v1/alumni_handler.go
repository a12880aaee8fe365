package v1

import (
	"net/http"
	"strconv"

	"alumni-directory-backend/internal/delivery/http/response"
	"alumni-directory-backend/internal/domain"
	"alumni-directory-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AlumniHandler struct {
	queryUC domain.AlumniQueryUsecase
}

// NewAlumniHandler registers the directory browsing routes.
func NewAlumniHandler(protected *gin.RouterGroup, queryUC domain.AlumniQueryUsecase) {
	handler := &AlumniHandler{queryUC: queryUC}

	alumni := protected.Group("/alumni")
	{
		alumni.GET("", handler.ListAlumni)
		alumni.GET("/:id", handler.GetAlumni)
	}
}

// parseAlumniFilter reads directory filters from the query string.
func parseAlumniFilter(c *gin.Context) (domain.AlumniFilter, error) {
	var filter domain.AlumniFilter

	if raw := c.Query("department"); raw != "" {
		dept, ok := domain.ParseDepartment(raw)
		if !ok {
			return filter, apperror.BadRequest("Unknown department")
		}
		filter.Department = &dept
	}
	if raw := c.Query("graduation_year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return filter, apperror.BadRequest("graduation_year must be a number")
		}
		filter.GraduationYear = &year
	}
	filter.Company = c.Query("company")

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return filter, apperror.BadRequest("limit must be a number")
		}
		filter.Limit = limit
	}
	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return filter, apperror.BadRequest("offset must be a number")
		}
		filter.Offset = offset
	}
	return filter, nil
}

// ListAlumni godoc
// @Summary List public alumni
// @Description Public profiles ordered by graduation year then registration, newest first
// @Tags Alumni
// @Produce json
// @Param department query string false "Department"
// @Param company query string false "Company name contains (case-insensitive)"
// @Param graduation_year query int false "Graduation year"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} domain.AlumniConnection
// @Failure 400 {object} response.Response
// @Router /alumni [get]
// @Security BearerAuth
func (h *AlumniHandler) ListAlumni(c *gin.Context) {
	filter, err := parseAlumniFilter(c)
	if err != nil {
		c.Error(err)
		return
	}

	conn, err := h.queryUC.ListPublicAlumni(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Alumni retrieved", conn)
}

// GetAlumni godoc
// @Summary Get public alumni profile
// @Tags Alumni
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} domain.PublicAlumniProfile
// @Failure 404 {object} response.Response
// @Router /alumni/{id} [get]
// @Security BearerAuth
func (h *AlumniHandler) GetAlumni(c *gin.Context) {
	profile, err := h.queryUC.GetPublicAlumni(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Alumni profile", profile)
}
