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

package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ecodeclub/resume-builder/internal/resume"
	"github.com/go-resty/resty/v2"
)

const (
	defaultTimeout = 10 * time.Second
	// 和服务端 errs.InvalidTitle 保持一致
	codeInvalidTitle = 419002
)

// Client 通过 HTTP 访问 /resumes 接口，实现了 builder.Store
type Client struct {
	cli *resty.Client
}

// NewClient token 是登录之后拿到的 access token
func NewClient(baseURL, token string) *Client {
	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(defaultTimeout).
		SetHeader("Accept", "application/json")
	if token != "" {
		cli.SetAuthToken(token)
	}
	return &Client{cli: cli}
}

// result 服务端统一的返回格式
type result[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}

type updateReq struct {
	resume.Resume
	Version int64 `json:"version"`
}

func (c *Client) List(ctx context.Context) ([]resume.Resume, error) {
	var res result[[]resume.Resume]
	err := c.do(ctx, http.MethodGet, "/resumes", nil, &res)
	return res.Data, err
}

func (c *Client) Get(ctx context.Context, id int64) (resume.Resume, error) {
	var res result[resume.Resume]
	err := c.do(ctx, http.MethodGet, c.path(id), nil, &res)
	return res.Data, err
}

func (c *Client) Create(ctx context.Context, r resume.Resume) (resume.Resume, error) {
	var res result[resume.Resume]
	err := c.do(ctx, http.MethodPost, "/resumes", r, &res)
	return res.Data, err
}

// Update 整份提交，带上版本号，别人改过就返回 resume.ErrVersionConflict
func (c *Client) Update(ctx context.Context, id int64, r resume.Resume) (resume.Resume, error) {
	req := updateReq{Resume: r}
	if !r.Utime.IsZero() {
		req.Version = r.Utime.UnixMilli()
	}
	var res result[resume.Resume]
	err := c.do(ctx, http.MethodPut, c.path(id), req, &res)
	return res.Data, err
}

func (c *Client) Delete(ctx context.Context, id int64) error {
	var res result[any]
	return c.do(ctx, http.MethodDelete, c.path(id), nil, &res)
}

func (c *Client) Duplicate(ctx context.Context, id int64) (resume.Resume, error) {
	var res result[resume.Resume]
	err := c.do(ctx, http.MethodPost, c.path(id)+"/duplicate", nil, &res)
	return res.Data, err
}

func (c *Client) path(id int64) string {
	return "/resumes/" + strconv.FormatInt(id, 10)
}

func (c *Client) do(ctx context.Context, method, url string, body any, res any) error {
	var failed result[any]
	req := c.cli.R().
		SetContext(ctx).
		SetResult(res).
		SetError(&failed)
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Execute(method, url)
	if err != nil {
		return err
	}
	if !resp.IsError() {
		return nil
	}
	switch resp.StatusCode() {
	case http.StatusNotFound:
		return resume.ErrResumeNotFound
	case http.StatusConflict:
		return resume.ErrVersionConflict
	case http.StatusBadRequest:
		if failed.Code == codeInvalidTitle {
			return resume.ErrInvalidTitle
		}
	}
	return fmt.Errorf("请求 %s %s 失败 status %d, code %d, msg %s",
		method, url, resp.StatusCode(), failed.Code, failed.Msg)
}
