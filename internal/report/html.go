package report

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const styleCSS = `
body{font-family:Georgia,serif;color:#1c1917;max-width:880px;margin:0 auto;padding:1rem;}
h1{font-size:1.5rem;border-bottom:2px solid #a8a29e;padding-bottom:0.4rem;}
h2{font-size:1.15rem;margin-top:1.4rem;}
table{width:100%;border-collapse:collapse;font-size:0.85rem;margin:0.6rem 0;}
th,td{border:1px solid #a8a29e;padding:0.35rem 0.45rem;text-align:left;vertical-align:top;}
thead th{background:#f1f5f9;font-weight:700;}
ul{margin:0.4rem 0;}
@media print{ @page{size:auto;margin:12mm;} body{padding:0;max-width:none;} }
`

// RenderHTML converts report markdown into a standalone HTML document with
// the print stylesheet inlined, ready for a browser or the PDF renderer.
func RenderHTML(markdown string) (string, error) {
	var content strings.Builder
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(markdown), &content); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	return "<!doctype html><html><head><meta charset='utf-8'><title>Spectral Averages Summary</title>" +
		"<style>" + styleCSS +
		"html,body,*{-webkit-print-color-adjust:exact !important;print-color-adjust:exact !important;}" +
		"</style></head><body>" +
		"<div class='report-html'>" + content.String() + "</div>" +
		"</body></html>", nil
}
