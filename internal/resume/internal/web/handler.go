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

package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/resume-builder/internal/resume/internal/domain"
	"github.com/ecodeclub/resume-builder/internal/resume/internal/errs"
	"github.com/ecodeclub/resume-builder/internal/resume/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const msgDeleted = "Resume deleted successfully"

type Handler struct {
	svc       service.Service
	exportSvc service.ExportService
	logger    *elog.Component
}

func NewHandler(svc service.Service, exportSvc service.ExportService) *Handler {
	return &Handler{
		svc:       svc,
		exportSvc: exportSvc,
		logger:    elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/templates", ginx.W(h.Templates))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/resumes")
	g.GET("", ginx.S(h.List))
	g.POST("", ginx.BS[CreateReq](h.Create))
	g.GET("/:id", ginx.S(h.Get))
	g.PUT("/:id", ginx.BS[UpdateReq](h.Update))
	g.DELETE("/:id", ginx.S(h.Delete))
	g.POST("/:id/duplicate", ginx.S(h.Duplicate))
	g.GET("/:id/export", ginx.S(h.Export))
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	rs, err := h.svc.List(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(rs, func(idx int, src domain.Resume) Resume {
			return newResume(src)
		}),
	}, nil
}

func (h *Handler) Get(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	id, err := h.id(ctx)
	if err != nil {
		return h.abort(ctx, http.StatusBadRequest, errs.InvalidParam)
	}
	r, err := h.svc.Get(ctx.Request.Context(), sess.Claims().Uid, id)
	if err != nil {
		return h.errorResult(ctx, err)
	}
	return ginx.Result{Data: newResume(r)}, nil
}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq, sess session.Session) (ginx.Result, error) {
	r, err := h.svc.Create(ctx.Request.Context(), sess.Claims().Uid, req.toDomain())
	if err != nil {
		return h.errorResult(ctx, err)
	}
	return h.created(ctx, r)
}

func (h *Handler) Update(ctx *ginx.Context, req UpdateReq, sess session.Session) (ginx.Result, error) {
	id, err := h.id(ctx)
	if err != nil {
		return h.abort(ctx, http.StatusBadRequest, errs.InvalidParam)
	}
	r, err := h.svc.Update(ctx.Request.Context(), sess.Claims().Uid, id, req.toPatch())
	if err != nil {
		return h.errorResult(ctx, err)
	}
	return ginx.Result{Data: newResume(r)}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	id, err := h.id(ctx)
	if err != nil {
		return h.abort(ctx, http.StatusBadRequest, errs.InvalidParam)
	}
	err = h.svc.Delete(ctx.Request.Context(), sess.Claims().Uid, id)
	if err != nil {
		return h.errorResult(ctx, err)
	}
	return ginx.Result{Msg: msgDeleted}, nil
}

func (h *Handler) Duplicate(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	id, err := h.id(ctx)
	if err != nil {
		return h.abort(ctx, http.StatusBadRequest, errs.InvalidParam)
	}
	r, err := h.svc.Duplicate(ctx.Request.Context(), sess.Claims().Uid, id)
	if err != nil {
		return h.errorResult(ctx, err)
	}
	return h.created(ctx, r)
}

// Export format 默认是 html
func (h *Handler) Export(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	id, err := h.id(ctx)
	if err != nil {
		return h.abort(ctx, http.StatusBadRequest, errs.InvalidParam)
	}
	format := ctx.Context.DefaultQuery("format", service.FormatHTML)
	doc, err := h.exportSvc.Export(ctx.Request.Context(), sess.Claims().Uid, id, format)
	if err != nil {
		return h.errorResult(ctx, err)
	}
	ctx.Context.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, doc.Filename))
	ctx.Context.Data(http.StatusOK, doc.ContentType, doc.Data)
	return ginx.Result{}, ginx.ErrNoResponse
}

func (h *Handler) Templates(ctx *ginx.Context) (ginx.Result, error) {
	return ginx.Result{Data: h.exportSvc.Templates()}, nil
}

func (h *Handler) id(ctx *ginx.Context) (int64, error) {
	return strconv.ParseInt(ctx.Context.Param("id"), 10, 64)
}

func (h *Handler) created(ctx *ginx.Context, r domain.Resume) (ginx.Result, error) {
	ctx.Context.JSON(http.StatusCreated, ginx.Result{Data: newResume(r)})
	return ginx.Result{}, ginx.ErrNoResponse
}

// abort 直接写响应，ginx 只认识 200 和 500
func (h *Handler) abort(ctx *ginx.Context, status int, code errs.ErrorCode) (ginx.Result, error) {
	ctx.Context.JSON(status, ginx.Result{Code: code.Code, Msg: code.Msg})
	return ginx.Result{}, ginx.ErrNoResponse
}

func (h *Handler) errorResult(ctx *ginx.Context, err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrResumeNotFound):
		return h.abort(ctx, http.StatusNotFound, errs.ResumeNotFound)
	case errors.Is(err, service.ErrInvalidTitle):
		return h.abort(ctx, http.StatusBadRequest, errs.InvalidTitle)
	case errors.Is(err, service.ErrUnsupportedFormat):
		return h.abort(ctx, http.StatusBadRequest, errs.InvalidParam)
	case errors.Is(err, service.ErrVersionConflict):
		return h.abort(ctx, http.StatusConflict, errs.VersionConflict)
	}
	return systemErrorResult, err
}
