package api

import (
	"net/http"

	"github.com/alvinbaena/pwd-strength/internal/strength"
	"github.com/alvinbaena/pwd-strength/internal/util"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func RegisterHealthApi(group *gin.RouterGroup, mode strength.Mode) {
	group.GET("/health", func(c *gin.Context) {
		resp := healthResponse{Status: "ok", Strategy: string(mode)}

		if memory, err := util.HostMemory(); err == nil {
			resp.Memory = &memory
		} else {
			log.Debug().Err(err).Msg("Error getting host memory")
		}

		c.JSON(http.StatusOK, resp)
	})
}
