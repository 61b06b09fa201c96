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
	"context"
	"errors"

	"github.com/ecodeclub/resume-builder/internal/pkg/pdf"
	"github.com/ecodeclub/resume-builder/internal/resume/internal/domain"
)

var ErrUnsupportedFormat = errors.New("不支持的导出格式")

const (
	FormatHTML = "html"
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
)

type Document struct {
	ContentType string
	Filename    string
	Data        []byte
}

//go:generate mockgen -source=./export.go -destination=../../mocks/export.mock.go -package=resumemocks -typed=true ExportService
type ExportService interface {
	Export(ctx context.Context, uid, id int64, format string) (Document, error)
	Templates() []domain.Template
}

type exportService struct {
	svc       Service
	renderer  *Renderer
	docx      *DocxWriter
	converter pdf.Converter
}

func NewExportService(svc Service, renderer *Renderer, docx *DocxWriter, converter pdf.Converter) ExportService {
	return &exportService{
		svc:       svc,
		renderer:  renderer,
		docx:      docx,
		converter: converter,
	}
}

func (e *exportService) Export(ctx context.Context, uid, id int64, format string) (Document, error) {
	if format != FormatHTML && format != FormatPDF && format != FormatDOCX {
		return Document{}, ErrUnsupportedFormat
	}
	r, err := e.svc.Get(ctx, uid, id)
	if err != nil {
		return Document{}, err
	}
	if format == FormatDOCX {
		data, err := e.docx.Write(r)
		if err != nil {
			return Document{}, err
		}
		return Document{
			ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			Filename:    filename(r, FormatDOCX),
			Data:        data,
		}, nil
	}
	html, err := e.renderer.Render(r)
	if err != nil {
		return Document{}, err
	}
	if format == FormatHTML {
		return Document{
			ContentType: "text/html; charset=utf-8",
			Filename:    filename(r, FormatHTML),
			Data:        []byte(html),
		}, nil
	}
	data, err := e.converter.ConvertHTMLToPDF(ctx, html, pdf.PaperLetter, pdf.MarginsNormal)
	if err != nil {
		return Document{}, err
	}
	return Document{
		ContentType: "application/pdf",
		Filename:    filename(r, FormatPDF),
		Data:        data,
	}, nil
}

func (e *exportService) Templates() []domain.Template {
	return domain.Templates()
}

// filename 只保留字母数字，其余的替换成下划线
func filename(r domain.Resume, ext string) string {
	name := []rune(r.Title)
	for i, c := range name {
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-') {
			name[i] = '_'
		}
	}
	return string(name) + "." + ext
}
