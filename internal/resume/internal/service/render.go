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

package service

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/ecodeclub/resume-builder/internal/resume/internal/domain"
)

//go:embed templates/resume.html
var resumeTpl string

// Renderer 所有模板共用一份 HTML，只有样式参数不同
type Renderer struct {
	tpl *template.Template
}

func NewRenderer() *Renderer {
	tpl := template.Must(template.New("resume").Funcs(template.FuncMap{
		"period": period,
		"join":   strings.Join,
	}).Parse(resumeTpl))
	return &Renderer{tpl: tpl}
}

type renderData struct {
	Resume   domain.Resume
	Template domain.Template
	CSS      template.CSS
}

func (r *Renderer) Render(res domain.Resume) (string, error) {
	t := domain.TemplateOf(res.Template)
	var buf bytes.Buffer
	err := r.tpl.Execute(&buf, renderData{
		Resume:   res,
		Template: t,
		CSS:      styleOf(t),
	})
	if err != nil {
		return "", fmt.Errorf("渲染简历失败 %w", err)
	}
	return buf.String(), nil
}

// 模板参数都是内置的常量，可以直接当作可信的 CSS
func styleOf(t domain.Template) template.CSS {
	align := "left"
	if t.Centered {
		align = "center"
	}
	return template.CSS(fmt.Sprintf(`
body { font-family: %[1]s; color: #333; margin: 0; padding: 32px 40px; line-height: 1.5; }
header { text-align: %[4]s; border-bottom: 3px solid %[2]s; padding-bottom: 12px; margin-bottom: 16px; }
h1 { color: %[3]s; margin: 0 0 4px; font-size: 28px; }
h2 { color: %[3]s; border-bottom: 1px solid %[2]s; font-size: 16px; text-transform: uppercase; letter-spacing: 1px; margin: 20px 0 8px; }
.contact span { margin-right: 12px; font-size: 13px; }
.entry { margin-bottom: 12px; }
.entry-head { display: flex; justify-content: space-between; font-weight: bold; }
.meta { color: #666; font-size: 13px; }
.tag { display: inline-block; border: 1px solid %[2]s; border-radius: 4px; padding: 0 6px; margin: 2px; font-size: 12px; }
@media print { body { padding: 0; } }
`, t.FontFamily, t.Accent, t.Heading, align))
}

// period 在职的时候不展示结束时间
func period(start, end string, current bool) string {
	if current {
		end = "Present"
	}
	switch {
	case start == "" && end == "":
		return ""
	case start == "":
		return end
	case end == "":
		return start
	}
	return start + " - " + end
}
