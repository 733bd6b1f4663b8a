package handlers

import (
	"encoding/csv"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/projects-tool/project-management-api/internal/errors"
	"github.com/projects-tool/project-management-api/internal/importer"
)

// ImportHandler handles bulk CSV imports
type ImportHandler struct {
	registry *importer.Registry
}

// NewImportHandler creates a new ImportHandler
func NewImportHandler(registry *importer.Registry) *ImportHandler {
	return &ImportHandler{registry: registry}
}

// ListEntities handles GET /api/import. It reports which entities can be
// imported and the columns each accepts.
func (h *ImportHandler) ListEntities(c *gin.Context) {
	entities := make([]gin.H, 0)
	for _, entity := range h.registry.Entities() {
		columns, err := h.registry.Columns(entity)
		if err != nil {
			continue
		}
		entities = append(entities, gin.H{"entity": entity, "columns": columns})
	}

	c.JSON(http.StatusOK, gin.H{"entities": entities})
}

// Import handles POST /api/import/:entity. The CSV payload comes either as a
// multipart file field named "file" or as the raw request body. The first
// record is the header.
func (h *ImportHandler) Import(c *gin.Context) {
	entity := importer.Entity(c.Param("entity"))

	reader, err := h.payload(c)
	if err != nil {
		apierrors.BadRequest(c, "CSV payload is required")
		return
	}

	records, err := csv.NewReader(reader).ReadAll()
	if err != nil {
		apierrors.BadRequest(c, "Invalid CSV: "+err.Error())
		return
	}
	if len(records) == 0 {
		apierrors.BadRequest(c, "CSV payload is empty")
		return
	}

	result, err := h.registry.Import(entity, records[0], records[1:])
	if err != nil {
		if errors.Is(err, importer.ErrUnknownEntity) {
			apierrors.NotFound(c, "Unknown import entity: "+string(entity))
			return
		}
		apierrors.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

func (h *ImportHandler) payload(c *gin.Context) (io.Reader, error) {
	if file, err := c.FormFile("file"); err == nil {
		return file.Open()
	}
	if c.Request.Body == nil {
		return nil, errors.New("empty request body")
	}
	return c.Request.Body, nil
}
