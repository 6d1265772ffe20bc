package middleware

import (
	"context"

	"github.com/fbo94/veloflott/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDMiddleware assigns each request an id and propagates the tenant
// and site scope headers into the request context.
func RequestIDMiddleware(c *gin.Context) {
	ctx := c.Request.Context()

	requestID := c.GetHeader(types.HeaderRequestID)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	ctx = context.WithValue(ctx, types.CtxRequestID, requestID)

	if tenantID := c.GetHeader(types.HeaderTenantID); tenantID != "" {
		ctx = context.WithValue(ctx, types.CtxTenantID, tenantID)
	}
	if siteID := c.GetHeader(types.HeaderSiteID); siteID != "" {
		ctx = context.WithValue(ctx, types.CtxSiteID, siteID)
	}

	c.Request = c.Request.WithContext(ctx)
	c.Header(types.HeaderRequestID, requestID)

	c.Next()
}
