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

package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/resume-builder/internal/ai/internal/domain"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/repository/cache"
	cachemocks "github.com/ecodeclub/resume-builder/internal/ai/internal/repository/cache/mocks"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/repository/dao"
	daomocks "github.com/ecodeclub/resume-builder/internal/ai/internal/repository/dao/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCachedConfigRepository_GetConfig(t *testing.T) {
	stored := domain.BizConfig{
		Id: 3, Biz: domain.BizChat, Model: "gpt-4o-mini",
		Temperature: 0.2, MaxTokens: 256, PromptTemplate: "%s",
		Utime: 100,
	}
	testCases := []struct {
		name    string
		biz     string
		mock    func(ctrl *gomock.Controller) (dao.ConfigDAO, cache.ConfigCache)
		want    domain.BizConfig
		wantErr error
	}{
		{
			name: "命中缓存",
			biz:  domain.BizChat,
			mock: func(ctrl *gomock.Controller) (dao.ConfigDAO, cache.ConfigCache) {
				c := cachemocks.NewMockConfigCache(ctrl)
				c.EXPECT().Get(gomock.Any(), domain.BizChat).Return(stored, nil)
				return daomocks.NewMockConfigDAO(ctrl), c
			},
			want: stored,
		},
		{
			name: "缓存未命中，查数据库并回写",
			biz:  domain.BizChat,
			mock: func(ctrl *gomock.Controller) (dao.ConfigDAO, cache.ConfigCache) {
				c := cachemocks.NewMockConfigCache(ctrl)
				c.EXPECT().Get(gomock.Any(), domain.BizChat).Return(domain.BizConfig{}, cache.ErrConfigNotFound)
				c.EXPECT().Set(gomock.Any(), stored).Return(nil)
				d := daomocks.NewMockConfigDAO(ctrl)
				d.EXPECT().GetConfig(gomock.Any(), domain.BizChat).Return(dao.BizConfig{
					Id: 3, Biz: domain.BizChat, Model: "gpt-4o-mini",
					Temperature: 0.2, MaxTokens: 256, PromptTemplate: "%s",
					Ctime: 99, Utime: 100,
				}, nil)
				return d, c
			},
			want: stored,
		},
		{
			name: "数据库没有配置，使用默认值",
			biz:  domain.BizSuggestion,
			mock: func(ctrl *gomock.Controller) (dao.ConfigDAO, cache.ConfigCache) {
				c := cachemocks.NewMockConfigCache(ctrl)
				c.EXPECT().Get(gomock.Any(), domain.BizSuggestion).Return(domain.BizConfig{}, cache.ErrConfigNotFound)
				c.EXPECT().Set(gomock.Any(), domain.DefaultConfigs()[domain.BizSuggestion]).Return(nil)
				d := daomocks.NewMockConfigDAO(ctrl)
				d.EXPECT().GetConfig(gomock.Any(), domain.BizSuggestion).Return(dao.BizConfig{}, dao.ErrConfigNotFound)
				return d, c
			},
			want: domain.DefaultConfigs()[domain.BizSuggestion],
		},
		{
			name: "未知业务",
			biz:  "unknown",
			mock: func(ctrl *gomock.Controller) (dao.ConfigDAO, cache.ConfigCache) {
				c := cachemocks.NewMockConfigCache(ctrl)
				c.EXPECT().Get(gomock.Any(), "unknown").Return(domain.BizConfig{}, cache.ErrConfigNotFound)
				d := daomocks.NewMockConfigDAO(ctrl)
				d.EXPECT().GetConfig(gomock.Any(), "unknown").Return(dao.BizConfig{}, dao.ErrConfigNotFound)
				return d, c
			},
			wantErr: ErrUnknownBiz,
		},
		{
			name: "缓存和数据库都出错",
			biz:  domain.BizChat,
			mock: func(ctrl *gomock.Controller) (dao.ConfigDAO, cache.ConfigCache) {
				c := cachemocks.NewMockConfigCache(ctrl)
				c.EXPECT().Get(gomock.Any(), domain.BizChat).Return(domain.BizConfig{}, errors.New("redis down"))
				d := daomocks.NewMockConfigDAO(ctrl)
				d.EXPECT().GetConfig(gomock.Any(), domain.BizChat).Return(dao.BizConfig{}, errors.New("db down"))
				return d, c
			},
			wantErr: errors.New("db down"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			d, c := tc.mock(ctrl)
			repo := NewCachedConfigRepository(d, c)
			cfg, err := repo.GetConfig(context.Background(), tc.biz)
			if tc.wantErr != nil {
				assert.Equal(t, tc.wantErr.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, cfg)
		})
	}
}
