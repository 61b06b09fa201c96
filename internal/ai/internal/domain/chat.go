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

package domain

import "time"

const (
	BizChat       = "resume_chat"
	BizSuggestion = "resume_suggestion"

	NoResumeContext = "No resume data provided"
)

// ChatReply 给用户的回复，IsFallback 表示大模型不可用，这是预设的回复
type ChatReply struct {
	Text       string
	Timestamp  time.Time
	IsFallback bool
}

type Suggestions struct {
	Text      string
	Section   string
	Timestamp time.Time
}

// 大模型出错的时候随机挑一句回复用户
var fallbackReplies = []string{
	"I'm here to help you with your resume! Could you please rephrase your question?",
	"I'm experiencing some technical difficulties. Please try again in a moment.",
	"I'd be happy to help you improve your resume. What specific area would you like to work on?",
}

func FallbackReplies() []string {
	res := make([]string, len(fallbackReplies))
	copy(res, fallbackReplies)
	return res
}

// FallbackReply i 超出范围的时候取模
func FallbackReply(i int) string {
	if i < 0 {
		i = -i
	}
	return fallbackReplies[i%len(fallbackReplies)]
}

// DefaultConfigs 数据库里面没有配置的时候使用
func DefaultConfigs() map[string]BizConfig {
	return map[string]BizConfig{
		BizChat: {
			Biz:         BizChat,
			Model:       "llama3-8b-8192",
			Temperature: 0.7,
			MaxTokens:   500,
			SystemPrompt: "You are an AI resume assistant. Help users improve their resumes by providing " +
				"suggestions, writing tips, and answering questions about resume best practices.\n\n" +
				"Current resume context: %s\n\n" +
				"Provide helpful, specific, and actionable advice. Be encouraging and professional.",
			PromptTemplate: "%s",
		},
		BizSuggestion: {
			Biz:         BizSuggestion,
			Model:       "llama3-8b-8192",
			Temperature: 0.5,
			MaxTokens:   400,
			SystemPrompt: "You are a professional resume writer. Analyze the %[1]s section and provide " +
				"specific suggestions for improvement. Be constructive and specific.\n\n" +
				"Current %[1]s content: %[2]s\n\n" +
				"Provide 3-5 specific suggestions for improvement.",
			PromptTemplate: "Please review my %s section and provide suggestions.",
		},
	}
}
