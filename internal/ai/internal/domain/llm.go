package domain

import (
	"fmt"

	"github.com/ecodeclub/ekit/slice"
)

type LLMRequest struct {
	Biz string
	Uid int64
	// 请求id
	Tid string
	// 用户的输入，用来填充 PromptTemplate
	Input []string
	// 用来填充 SystemPrompt 的参数，比如说简历的上下文
	Context []string
	// 业务相关的配置
	Config BizConfig

	// prompt 将 input 和 PromptTemplate 结合之后生成的正儿八经的 Prompt
	prompt string
}

func (req *LLMRequest) Prompt() string {
	if req.prompt == "" {
		req.prompt = format(req.Config.PromptTemplate, req.Input)
	}
	return req.prompt
}

// SystemPrompt 没有参数的时候原样返回
func (req *LLMRequest) SystemPrompt() string {
	if len(req.Context) == 0 {
		return req.Config.SystemPrompt
	}
	return format(req.Config.SystemPrompt, req.Context)
}

func format(tpl string, input []string) string {
	if tpl == "" {
		if len(input) > 0 {
			return input[0]
		}
		return ""
	}
	args := slice.Map(input, func(idx int, src string) any {
		return src
	})
	return fmt.Sprintf(tpl, args...)
}

type LLMResponse struct {
	// 花费的token
	Tokens int64
	// 花费的金额
	Amount int64
	// llm 的回答
	Answer string
}

type BizConfig struct {
	Id  int64
	Biz string
	// 使用的模型
	Model string
	// 多少分钱/1000 token
	Price int64

	Temperature float64
	TopP        float64
	// 单次回答最多生成多少 token
	MaxTokens int64

	// 系统 Prompt
	SystemPrompt string
	// 允许的最长输入
	// 这里我们不用计算 token，只需要简单约束一下字符串长度就可以
	// 0 表示不限制，内置的默认配置都不限制
	MaxInput int
	// 提示词，这里一般使用 %s
	PromptTemplate string
	Utime          int64
}

type LLMRecord struct {
	Id             int64
	Tid            string
	Uid            int64
	Biz            string
	Tokens         int64
	Amount         int64
	Input          []string
	Status         RecordStatus
	PromptTemplate string
	Answer         string
	Ctime          int64
	Utime          int64
}

type RecordStatus uint8

func (g RecordStatus) ToUint8() uint8 {
	return uint8(g)
}

const (
	RecordStatusProcessing RecordStatus = 0
	RecordStatusSuccess    RecordStatus = 1
	RecordStatusFailed     RecordStatus = 2
)
