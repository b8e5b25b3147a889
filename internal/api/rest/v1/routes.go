package v1

import (
	"github.com/MGTheTrain/aes-workbench/internal/domain/crypto"
	"github.com/MGTheTrain/aes-workbench/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, aesService crypto.AESService, defaults config.CipherDefaults) {
	v1 := r.Group(BasePath) // lookup in version file

	aesHandler := NewAESHandler(aesService, defaults)
	v1.POST("/encrypt", aesHandler.Encrypt)
	v1.POST("/decrypt", aesHandler.Decrypt)
	v1.POST("/keys", aesHandler.GenerateKey)
	v1.POST("/ivs", aesHandler.GenerateIV)
	v1.POST("/convert", aesHandler.Convert)
	v1.POST("/inspect", aesHandler.Inspect)
	v1.GET("/modes", aesHandler.ListModes)
	v1.GET("/health", aesHandler.Health)
}
