package productcontroller

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultPageSize = 10

// pageParams reads page / page_size query params with sane fallbacks.
func pageParams(c *gin.Context) (offset, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if err != nil || size < 1 || size > 100 {
		size = defaultPageSize
	}
	return (page - 1) * size, size
}
