package handlers

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"urbannest-properties/internal/importer"
	"urbannest-properties/internal/middleware"
	"urbannest-properties/internal/services"

	"github.com/gin-gonic/gin"
)

const maxImportSize = 10 << 20 // 10 MiB

type ImportHandler struct {
	imports    *services.ImportService
	importPath string
}

func NewImportHandler(imports *services.ImportService, importPath string) *ImportHandler {
	return &ImportHandler{imports: imports, importPath: importPath}
}

// ImportCSV godoc
// @Summary Bulk-import properties from an uploaded CSV file
// @Tags Import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Security BearerAuth
// @Success 201 {object} models.ImportResult
// @Failure 400 {object} map[string]string
// @Router /csv-import [post]
func (h *ImportHandler) ImportCSV(c *gin.Context) {
	caller, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".csv") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only CSV files are accepted"})
		return
	}
	if fileHeader.Size > maxImportSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
		return
	}

	result, err := h.imports.ImportCSV(c.Request.Context(), data, caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// ImportDirect godoc
// @Summary Import the server-side CSV file configured at startup
// @Tags Import
// @Produce json
// @Security BearerAuth
// @Success 201 {object} models.ImportResult
// @Failure 500 {object} map[string]string
// @Router /csv-import/direct [post]
func (h *ImportHandler) ImportDirect(c *gin.Context) {
	caller, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	result, err := h.imports.ImportFromFile(c.Request.Context(), h.importPath, caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// ImportTemplate godoc
// @Summary Download a sample CSV in the import layout
// @Tags Import
// @Produce text/csv
// @Success 200 {string} string
// @Router /csv-import/template [get]
func (h *ImportHandler) ImportTemplate(c *gin.Context) {
	data, err := importer.Template()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="property_import_template.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}
