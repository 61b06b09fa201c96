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

// Template 模板只是一组样式参数，渲染逻辑只有一份
type Template struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	FontFamily  string `json:"fontFamily"`
	// Accent 标题、分隔线之类的强调色
	Accent string `json:"accent"`
	// Heading 姓名和小节标题的颜色
	Heading string `json:"heading"`
	// Centered 页眉居中
	Centered bool `json:"centered"`
}

var templates = []Template{
	{
		Id: "modern", Name: "Modern", Description: "Clean layout with a blue accent",
		FontFamily: "Arial, sans-serif", Accent: "#3498db", Heading: "#2c3e50",
	},
	{
		Id: "classic", Name: "Classic", Description: "Traditional serif layout",
		FontFamily: "Georgia, 'Times New Roman', serif", Accent: "#111111", Heading: "#2f2f2f",
		Centered: true,
	},
	{
		Id: "creative", Name: "Creative", Description: "Bold colors for creative roles",
		FontFamily: "Inter, sans-serif", Accent: "#ec4899", Heading: "#1f2937",
	},
	{
		Id: "minimal", Name: "Minimal", Description: "Lots of whitespace, no distractions",
		FontFamily: "Inter, sans-serif", Accent: "#e5e7eb", Heading: "#111111",
	},
	{
		Id: "elegant", Name: "Elegant", Description: "Serif typography with warm tones",
		FontFamily: "Georgia, serif", Accent: "#b45309", Heading: "#1f2937",
		Centered: true,
	},
	{
		Id: "technical", Name: "Technical", Description: "Monospace layout for engineers",
		FontFamily: "'Courier New', monospace", Accent: "#0ea5e9", Heading: "#0f172a",
	},
}

// Templates 返回所有内置的模板
func Templates() []Template {
	res := make([]Template, len(templates))
	copy(res, templates)
	return res
}

// TemplateOf 不认识的模板一律按照 modern 处理
func TemplateOf(id string) Template {
	for _, t := range templates {
		if t.Id == id {
			return t
		}
	}
	return templates[0]
}
