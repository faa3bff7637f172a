//go:build !lambda

package main

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the local web API over a fixed recipe table.
func NewRouter(table RecipeTable) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		recipes := NewRecipeViews(table)
		api.GET("/recipes", func(c *gin.Context) {
			c.JSON(http.StatusOK, recipes)
		})

		api.POST("/compute", func(c *gin.Context) {
			body, err := io.ReadAll(c.Request.Body)
			if err != nil {
				c.JSON(http.StatusBadRequest, errorResponse{Error: "unreadable body"})
				return
			}
			status, resp := handleCompute(string(body), table)
			c.JSON(status, resp)
		})
	}

	return r
}
