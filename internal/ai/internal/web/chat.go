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
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/errs"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

type ChatHandler struct {
	svc    service.ChatService
	logger *elog.Component
}

func NewChatHandler(svc service.ChatService) *ChatHandler {
	return &ChatHandler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *ChatHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/chat")
	g.POST("", ginx.BS[ChatReq](h.Chat))
	g.POST("/suggestions", ginx.BS[SuggestionReq](h.Suggestions))
}

func (h *ChatHandler) Chat(ctx *ginx.Context, req ChatReq, sess session.Session) (ginx.Result, error) {
	reply, err := h.svc.SendPrompt(ctx.Request.Context(), sess.Claims().Uid, req.Message, req.ResumeData)
	switch {
	case errors.Is(err, service.ErrEmptyMessage):
		return h.abort(ctx, http.StatusBadRequest, errs.InvalidInput)
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ChatResp{
			Message:    reply.Text,
			Timestamp:  reply.Timestamp,
			IsFallback: reply.IsFallback,
		},
	}, nil
}

func (h *ChatHandler) Suggestions(ctx *ginx.Context, req SuggestionReq, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.RequestSectionSuggestions(ctx.Request.Context(), sess.Claims().Uid, req.Section, req.Content)
	switch {
	case errors.Is(err, service.ErrEmptySection):
		return h.abort(ctx, http.StatusBadRequest, errs.InvalidSection)
	case err != nil:
		h.logger.Error("生成小节建议失败", elog.FieldErr(err),
			elog.Int64("uid", sess.Claims().Uid), elog.String("section", req.Section))
		return h.abort(ctx, http.StatusInternalServerError, errs.SuggestionFailed)
	}
	return ginx.Result{
		Data: SuggestionResp{
			Suggestions: res.Text,
			Section:     res.Section,
			Timestamp:   res.Timestamp,
		},
	}, nil
}

func (h *ChatHandler) abort(ctx *ginx.Context, status int, code errs.ErrorCode) (ginx.Result, error) {
	ctx.Context.JSON(status, ginx.Result{Code: code.Code, Msg: code.Msg})
	return ginx.Result{}, ginx.ErrNoResponse
}
