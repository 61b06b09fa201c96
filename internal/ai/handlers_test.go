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

package ai

import (
	"testing"

	"github.com/ecodeclub/resume-builder/internal/ai/internal/service/llm/handler/platform/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlatform(t *testing.T) {
	h, err := NewPlatform(LLMConfig{})
	require.NoError(t, err)
	assert.IsType(t, &openai.Handler{}, h)

	cfg := LLMConfig{Provider: ProviderOpenAI}
	cfg.OpenAI.BaseURL = "http://localhost:1234/v1/"
	h, err = NewPlatform(cfg)
	require.NoError(t, err)
	assert.IsType(t, &openai.Handler{}, h)

	_, err = NewPlatform(LLMConfig{Provider: "unknown"})
	assert.Error(t, err)
}
