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
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecodeclub/resume-builder/internal/builder"
	"github.com/ecodeclub/resume-builder/internal/resume"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ builder.Store = (*Client)(nil)

func TestClient(t *testing.T) {
	utime := time.UnixMilli(1700000000123)
	testCases := []struct {
		name    string
		handler http.HandlerFunc
		call    func(c *Client) (any, error)

		wantRes any
		wantErr error
	}{
		{
			name: "获取",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/resumes/12", r.URL.Path)
				assert.Equal(t, "Bearer my-token", r.Header.Get("Authorization"))
				writeJSON(w, http.StatusOK, `{"code":0,"msg":"","data":{"id":12,"title":"Backend","template":"classic","version":1}}`)
			},
			call: func(c *Client) (any, error) {
				return c.Get(context.Background(), 12)
			},
			wantRes: resume.Resume{Id: 12, Title: "Backend", Template: "classic"},
		},
		{
			name: "创建",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/resumes", r.URL.Path)
				var body map[string]any
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "Backend", body["title"])
				writeJSON(w, http.StatusCreated, `{"code":0,"msg":"","data":{"id":13,"title":"Backend"}}`)
			},
			call: func(c *Client) (any, error) {
				return c.Create(context.Background(), resume.Resume{Title: "Backend"})
			},
			wantRes: resume.Resume{Id: 13, Title: "Backend"},
		},
		{
			name: "更新带上版本号",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPut, r.Method)
				assert.Equal(t, "/resumes/13", r.URL.Path)
				data, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				var body struct {
					Title   string `json:"title"`
					Version int64  `json:"version"`
				}
				require.NoError(t, json.Unmarshal(data, &body))
				assert.Equal(t, "New", body.Title)
				assert.Equal(t, int64(1700000000123), body.Version)
				writeJSON(w, http.StatusOK, `{"code":0,"msg":"","data":{"id":13,"title":"New"}}`)
			},
			call: func(c *Client) (any, error) {
				return c.Update(context.Background(), 13, resume.Resume{Id: 13, Title: "New", Utime: utime})
			},
			wantRes: resume.Resume{Id: 13, Title: "New"},
		},
		{
			name: "列表",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/resumes", r.URL.Path)
				writeJSON(w, http.StatusOK, `{"code":0,"msg":"","data":[{"id":2,"title":"B"},{"id":1,"title":"A"}]}`)
			},
			call: func(c *Client) (any, error) {
				return c.List(context.Background())
			},
			wantRes: []resume.Resume{{Id: 2, Title: "B"}, {Id: 1, Title: "A"}},
		},
		{
			name: "复制",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/resumes/2/duplicate", r.URL.Path)
				writeJSON(w, http.StatusCreated, `{"code":0,"msg":"","data":{"id":3,"title":"B (Copy)"}}`)
			},
			call: func(c *Client) (any, error) {
				return c.Duplicate(context.Background(), 2)
			},
			wantRes: resume.Resume{Id: 3, Title: "B (Copy)"},
		},
		{
			name: "删除",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				writeJSON(w, http.StatusOK, `{"code":0,"msg":"Resume deleted successfully","data":null}`)
			},
			call: func(c *Client) (any, error) {
				return nil, c.Delete(context.Background(), 2)
			},
		},
		{
			name: "不存在",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusNotFound, `{"code":419001,"msg":"Resume not found","data":null}`)
			},
			call: func(c *Client) (any, error) {
				return c.Get(context.Background(), 99)
			},
			wantRes: resume.Resume{},
			wantErr: resume.ErrResumeNotFound,
		},
		{
			name: "版本冲突",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusConflict, `{"code":419004,"msg":"Resume has been modified","data":null}`)
			},
			call: func(c *Client) (any, error) {
				return c.Update(context.Background(), 13, resume.Resume{Id: 13, Title: "New", Utime: utime})
			},
			wantRes: resume.Resume{},
			wantErr: resume.ErrVersionConflict,
		},
		{
			name: "标题为空",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusBadRequest, `{"code":419002,"msg":"Resume title is required","data":null}`)
			},
			call: func(c *Client) (any, error) {
				return c.Create(context.Background(), resume.Resume{})
			},
			wantRes: resume.Resume{},
			wantErr: resume.ErrInvalidTitle,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()
			res, err := tc.call(NewClient(server.URL, "my-token"))
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr != nil {
				return
			}
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func TestClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, `{"code":519001,"msg":"Server error","data":null}`)
	}))
	defer server.Close()
	_, err := NewClient(server.URL, "").List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "519001")
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
