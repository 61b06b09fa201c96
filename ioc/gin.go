// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/resume-builder/config"
	"github.com/ecodeclub/resume-builder/internal/ai"
	"github.com/ecodeclub/resume-builder/internal/pkg/middleware"
	"github.com/ecodeclub/resume-builder/internal/resume"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	rm *resume.Module,
	am *ai.Module,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	var cfg config.CorsConfig
	err := econf.UnmarshalKey("cors", &cfg)
	if err != nil {
		panic(err)
	}
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token", "Content-Disposition"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			for _, o := range cfg.AllowOrigins {
				if o == origin {
					return true
				}
			}
			return false
		},
	}))
	metrics := middleware.NewMetricsBuilder("ecodeclub", "resume_builder")
	metrics.IgnorePaths = []string{"/health"}
	res.Use(metrics.Build())

	res.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "OK", "message": "Resume Builder API is running"})
	})
	rm.Hdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	rm.Hdl.PrivateRoutes(res.Engine)
	am.Hdl.PrivateRoutes(res.Engine)
	return res
}
