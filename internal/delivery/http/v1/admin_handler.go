package v1

import (
	"alumni-directory-backend/internal/delivery/http/middleware"
	"alumni-directory-backend/internal/delivery/http/response"
	"alumni-directory-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AdminHandler struct {
	exportUC domain.ExportUsecase
}

// NewAdminHandler registers admin routes
func NewAdminHandler(protected *gin.RouterGroup, exportUC domain.ExportUsecase) {
	handler := &AdminHandler{exportUC: exportUC}

	admin := protected.Group("/admin")
	admin.Use(middleware.RequireRole(domain.RoleAdmin))
	{
		admin.GET("/alumni/export", handler.ExportAlumni)
	}
}

// ExportAlumni godoc
// @Summary Export public alumni
// @Description Downloads every public profile matching the filters as an xlsx workbook
// @Tags Admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param department query string false "Department"
// @Param company query string false "Company name contains"
// @Param graduation_year query int false "Graduation year"
// @Success 200 {file} file
// @Failure 403 {object} response.Response
// @Router /admin/alumni/export [get]
// @Security BearerAuth
func (h *AdminHandler) ExportAlumni(c *gin.Context) {
	filter, err := parseAlumniFilter(c)
	if err != nil {
		c.Error(err)
		return
	}

	data, filename, err := h.exportUC.ExportPublicAlumni(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.File(c, filename, xlsxContentType, data)
}
