package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alnah/go-html2tei"
	"github.com/alnah/go-html2tei/internal/config"
	"github.com/alnah/go-html2tei/internal/fileutil"
	"github.com/alnah/go-html2tei/internal/report"
)

// writeReport writes the summary of res next to xmlPath and returns the
// report path.
func writeReport(ctx context.Context, xmlPath string, res *html2tei.Result, format string) (string, error) {
	summary := report.Summarize(res.Document)
	md := report.Markdown(summary, res.XML)

	data := []byte(md)
	if format == config.ReportHTML {
		page, err := report.NewRenderer().ToHTML(ctx, summary.Title, md)
		if err != nil {
			return "", err
		}
		data = []byte(page)
	}

	path := reportPath(xmlPath, format)
	if err := fileutil.WriteFileAtomic(path, data, filePermissions); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWriteReport, err)
	}
	return path, nil
}

// reportPath returns "<dir>/<name>.report.<format>" for "<dir>/<name>.xml".
func reportPath(xmlPath, format string) string {
	return strings.TrimSuffix(xmlPath, filepath.Ext(xmlPath)) + ".report." + format
}
