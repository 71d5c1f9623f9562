package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/kiroku/internal/dto"
)

// GetBodyParts returns the static body-part taxonomy and stiffness regions.
func GetBodyParts(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewTaxonomyDTO())
}
