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

	"github.com/ecodeclub/resume-builder/internal/ai/internal/domain"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/repository/cache"
	"github.com/ecodeclub/resume-builder/internal/ai/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/singleflight"
)

var ErrUnknownBiz = errors.New("未知的业务")

//go:generate mockgen -source=./config.go -destination=./mocks/config.mock.go -package=repomocks -typed=true ConfigRepository
type ConfigRepository interface {
	GetConfig(ctx context.Context, biz string) (domain.BizConfig, error)
}

// CachedConfigRepository 先查缓存，再查数据库，数据库里面没有就用内置的默认配置
type CachedConfigRepository struct {
	dao      dao.ConfigDAO
	cache    cache.ConfigCache
	defaults map[string]domain.BizConfig
	group    singleflight.Group
	logger   *elog.Component
}

func NewCachedConfigRepository(dao dao.ConfigDAO, c cache.ConfigCache) ConfigRepository {
	return &CachedConfigRepository{
		dao:      dao,
		cache:    c,
		defaults: domain.DefaultConfigs(),
		logger:   elog.DefaultLogger,
	}
}

func (repo *CachedConfigRepository) GetConfig(ctx context.Context, biz string) (domain.BizConfig, error) {
	cfg, err := repo.cache.Get(ctx, biz)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, cache.ErrConfigNotFound) {
		repo.logger.Warn("读取业务配置缓存失败", elog.String("biz", biz), elog.FieldErr(err))
	}
	// 同一个 biz 的并发回源只放一个过去
	val, err, _ := repo.group.Do(biz, func() (any, error) {
		return repo.load(ctx, biz)
	})
	if err != nil {
		return domain.BizConfig{}, err
	}
	return val.(domain.BizConfig), nil
}

func (repo *CachedConfigRepository) load(ctx context.Context, biz string) (domain.BizConfig, error) {
	entity, err := repo.dao.GetConfig(ctx, biz)
	switch {
	case err == nil:
		cfg := repo.toDomain(entity)
		repo.setCache(ctx, cfg)
		return cfg, nil
	case errors.Is(err, dao.ErrConfigNotFound):
		cfg, ok := repo.defaults[biz]
		if !ok {
			return domain.BizConfig{}, ErrUnknownBiz
		}
		// 默认配置也缓存起来，缓存过期之后才会看到数据库里面新加的配置
		repo.setCache(ctx, cfg)
		return cfg, nil
	default:
		return domain.BizConfig{}, err
	}
}

func (repo *CachedConfigRepository) setCache(ctx context.Context, cfg domain.BizConfig) {
	if err := repo.cache.Set(ctx, cfg); err != nil {
		repo.logger.Warn("回写业务配置缓存失败", elog.String("biz", cfg.Biz), elog.FieldErr(err))
	}
}

func (repo *CachedConfigRepository) toDomain(c dao.BizConfig) domain.BizConfig {
	return domain.BizConfig{
		Id:             c.Id,
		Biz:            c.Biz,
		Model:          c.Model,
		Price:          c.Price,
		Temperature:    c.Temperature,
		TopP:           c.TopP,
		MaxTokens:      c.MaxTokens,
		SystemPrompt:   c.SystemPrompt,
		MaxInput:       c.MaxInput,
		PromptTemplate: c.PromptTemplate,
		Utime:          c.Utime,
	}
}
