package controllers

import (
	"github.com/gin-gonic/gin"

	"aitrip/pkg/middleware"
	"aitrip/pkg/utils"
)

func currentUserID(c *gin.Context) string {
	return c.GetString(middleware.ContextUserID)
}

func currentClaims(c *gin.Context) *utils.Claims {
	if v, ok := c.Get(middleware.ContextClaims); ok {
		if claims, ok := v.(*utils.Claims); ok {
			return claims
		}
	}
	return nil
}
