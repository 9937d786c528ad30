package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lingoport/portal/pkg/response"
)

// idParam parses the :id route segment; on failure it writes the 400
// response and reports false.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, response.Err(response.CodeInvalidRequest))
		return 0, false
	}
	return id, true
}
