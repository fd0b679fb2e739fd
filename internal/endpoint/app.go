package endpoint

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// New builds the schema-validating ingestion app around a registry.
// Success is exactly 200; schema violations come back as 400 with the
// validation error as the body text, which the sampler uses as the error
// counter key.
func New(reg *Registry) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	app := gin.New()

	submit := func(c *gin.Context) {
		schema, ok := reg.Resolve(
			c.Param("namespace"),
			c.Param("doctype"),
			c.Param("version"),
		)
		if !ok {
			c.String(http.StatusNotFound, "no schema registered for %s/%s",
				c.Param("namespace"), c.Param("doctype"))
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.String(http.StatusBadRequest, "reading request body: %v", err)
			return
		}

		result := schema.ValidateJSON(body)
		if !result.IsValid() {
			c.String(http.StatusBadRequest, "%v", result.Errors)
			return
		}
		c.String(http.StatusOK, "OK")
	}

	app.POST("/submit/:namespace/:doctype", submit)
	app.POST("/submit/:namespace/:doctype/:version", submit)

	app.GET("/__heartbeat__", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	app.GET("/__version__", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"schemas": reg.Len()})
	})

	return app
}

// Load builds the app straight from a resources directory.
func Load(resourcesPath string) (*gin.Engine, error) {
	reg, err := LoadRegistry(resourcesPath)
	if err != nil {
		return nil, fmt.Errorf("loading schema registry: %w", err)
	}
	return New(reg), nil
}
