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
	"encoding/json"
	"time"
)

type ChatReq struct {
	Message string `json:"message"`
	// ResumeData 前端当前编辑的简历，原样塞进上下文
	ResumeData json.RawMessage `json:"resumeData,omitempty"`
}

type ChatResp struct {
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
	IsFallback bool      `json:"isFallback,omitempty"`
}

type SuggestionReq struct {
	Section string `json:"section"`
	Content string `json:"content"`
}

type SuggestionResp struct {
	Suggestions string    `json:"suggestions"`
	Section     string    `json:"section"`
	Timestamp   time.Time `json:"timestamp"`
}
