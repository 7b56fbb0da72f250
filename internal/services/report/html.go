package report

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

var markdownConverter = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()),
)

const htmlShell = `<!DOCTYPE html>
<html lang="zh-CN">
<head>
<meta charset="utf-8">
<style>
body { font-family: sans-serif; max-width: 860px; margin: 2em auto; padding: 0 1em; line-height: 1.6; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 4px 10px; }
</style>
</head>
<body>
%s</body>
</html>
`

// ExportHTML converts a markdown report into a standalone HTML page.
func (s *Service) ExportHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := markdownConverter.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return fmt.Sprintf(htmlShell, buf.String()), nil
}
