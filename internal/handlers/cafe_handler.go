package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/cafe-api/internal/dto"
	"github.com/BruksfildServices01/cafe-api/internal/httperr"
	"github.com/BruksfildServices01/cafe-api/internal/httpresp"
	"github.com/BruksfildServices01/cafe-api/internal/importer"
	ucCafe "github.com/BruksfildServices01/cafe-api/internal/usecase/cafe"
)

// ======================================================
// HANDLER
// ======================================================

type CafeHandler struct {
	svc *ucCafe.Service
	log *zap.Logger
}

func NewCafeHandler(svc *ucCafe.Service, log *zap.Logger) *CafeHandler {
	return &CafeHandler{svc: svc, log: log}
}

type cafeURI struct {
	ID uint `uri:"cafe_id"`
}

// parseID reads the :cafe_id path segment as a base 10 integer. Anything
// else comes back as 0, which the store never assigns.
func parseID(c *gin.Context) uint {
	var uri cafeURI
	if err := c.ShouldBindUri(&uri); err != nil {
		return 0
	}
	return uri.ID
}

// ======================================================
// READ
// ======================================================

func (h *CafeHandler) Random(c *gin.Context) {
	cafe, err := h.svc.GetRandom(c.Request.Context())
	if err != nil {
		h.writeError(c, err, http.StatusNotFound)
		return
	}
	httpresp.One(c, dto.FromCafe(cafe))
}

func (h *CafeHandler) All(c *gin.Context) {
	cafes, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		h.writeError(c, err, http.StatusNotFound)
		return
	}
	httpresp.List(c, dto.FromCafes(cafes))
}

func (h *CafeHandler) Search(c *gin.Context) {
	loc, ok := c.GetQuery("loc")
	if !ok {
		httperr.NotFound(c, msgNoLoc)
		return
	}

	cafes, found, err := h.svc.Search(c.Request.Context(), loc)
	if err != nil {
		h.writeError(c, err, http.StatusNotFound)
		return
	}
	if !found {
		httperr.NotFound(c, msgNoLoc)
		return
	}
	httpresp.List(c, dto.FromCafes(cafes))
}

// ======================================================
// CREATE
// ======================================================

func (h *CafeHandler) Add(c *gin.Context) {
	cafe, err := h.svc.Add(c.Request.Context(), c.GetPostForm)
	if err != nil {
		h.writeError(c, err, http.StatusNotFound)
		return
	}

	h.log.Info("cafe added", zap.Uint("id", cafe.ID), zap.String("name", cafe.Name))
	httpresp.Success(c, "Successfully added the new cafe.", nil)
}

func (h *CafeHandler) Import(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "An .xlsx file is required in the 'file' field.")
		return
	}

	file, err := header.Open()
	if err != nil {
		httperr.BadRequest(c, "Unable to open the uploaded file.")
		return
	}
	defer file.Close()

	rows, err := importer.ReadRows(file)
	if err != nil {
		httperr.BadRequest(c, "The workbook must have a header row and at least one data row.")
		return
	}

	res, err := h.svc.Import(c.Request.Context(), rows)
	if err != nil {
		h.writeError(c, err, http.StatusNotFound)
		return
	}

	h.log.Info("cafes imported", zap.Int("added", res.Added), zap.Int("skipped", res.Skipped))
	httpresp.Success(c, "Successfully imported the cafes.", gin.H{
		"added":   res.Added,
		"skipped": res.Skipped,
	})
}

// ======================================================
// UPDATE
// ======================================================

// Update replaces every field. An unknown id answers 400.
func (h *CafeHandler) Update(c *gin.Context) {
	id := parseID(c)

	if _, err := h.svc.UpdateFull(c.Request.Context(), id, c.GetPostForm); err != nil {
		h.writeError(c, err, http.StatusBadRequest)
		return
	}
	httpresp.Success(c, "Successfully updated the cafe.", nil)
}

func (h *CafeHandler) UpdatePrice(c *gin.Context) {
	id := parseID(c)

	var price *string
	if v, ok := c.GetQuery("new_price"); ok {
		price = &v
	}

	if _, err := h.svc.UpdatePrice(c.Request.Context(), id, price); err != nil {
		h.writeError(c, err, http.StatusNotFound)
		return
	}
	httpresp.Success(c, "Successfully updated the price.", nil)
}

// ======================================================
// DELETE
// ======================================================

func (h *CafeHandler) ReportClosed(c *gin.Context) {
	id := parseID(c)

	if err := h.svc.Delete(c.Request.Context(), id, c.GetHeader("api-key")); err != nil {
		h.writeError(c, err, http.StatusNotFound)
		return
	}

	h.log.Info("cafe reported closed", zap.Uint("id", id))
	httpresp.Success(c, "Successfully deleted the cafe from the database.", nil)
}
