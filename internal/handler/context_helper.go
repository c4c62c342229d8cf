package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-services/internal/models"
	appErrors "github.com/noah-isme/school-services/pkg/errors"
	"github.com/noah-isme/school-services/pkg/response"
)

// pathID parses the named path parameter as a positive id. On failure it
// writes a 400 response and returns false.
func pathID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid "+name+": "+raw))
		return 0, false
	}
	return id, true
}

// pathDate parses the named path parameter as a yyyy-MM-dd date.
func pathDate(c *gin.Context, name string) (models.Date, bool) {
	raw := c.Param(name)
	date, err := models.ParseDate(raw)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid "+name+" "+raw+", use yyyy-MM-dd"))
		return models.Date{}, false
	}
	return date, true
}

// bindJSON decodes the request body into dst, reporting malformed payloads
// as validation errors.
func bindJSON(c *gin.Context, dst interface{}, entity string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid "+entity+" payload"))
		return false
	}
	return true
}

// resourceLocation points at the get-by-id route of a resource created by a
// POST to the collection path.
func resourceLocation(c *gin.Context, id int64) string {
	return strings.TrimRight(c.Request.URL.Path, "/") + "/" + strconv.FormatInt(id, 10)
}
