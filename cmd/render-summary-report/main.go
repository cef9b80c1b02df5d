package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/LBNL-ETA/opticalc/internal/optical"
	"github.com/LBNL-ETA/opticalc/internal/product"
	"github.com/LBNL-ETA/opticalc/internal/report"
)

func main() {
	productPath := flag.String("product", "", "Path to the product JSON the summary was computed for (optional)")
	summaryPath := flag.String("summary", "", "Path to a computed summary JSON")
	format := flag.String("format", "md", "Output format: md, html, or pdf")
	outputPath := flag.String("output", "", "Output path (defaults to stdout; required for pdf)")
	flag.Parse()

	if *summaryPath == "" {
		log.Fatal("missing required -summary")
	}

	var s optical.IntegratedSummary
	if err := readJSON(*summaryPath, &s); err != nil {
		log.Fatalf("read summary: %v", err)
	}

	var p *product.Product
	if *productPath != "" {
		p = &product.Product{}
		if err := readJSON(*productPath, p); err != nil {
			log.Fatalf("read product: %v", err)
		}
	}

	markdown := report.BuildMarkdown(p, &s)

	switch *format {
	case "md":
		if err := writeOut(*outputPath, []byte(markdown)); err != nil {
			log.Fatalf("write markdown: %v", err)
		}
	case "html":
		html, err := report.RenderHTML(markdown)
		if err != nil {
			log.Fatalf("render html: %v", err)
		}
		if err := writeOut(*outputPath, []byte(html)); err != nil {
			log.Fatalf("write html: %v", err)
		}
	case "pdf":
		if *outputPath == "" {
			log.Fatal("pdf output requires -output")
		}
		html, err := report.RenderHTML(markdown)
		if err != nil {
			log.Fatalf("render html: %v", err)
		}
		pdf, err := report.NewPDFRenderer().Render(context.Background(), html)
		if err != nil {
			log.Fatalf("render pdf: %v", err)
		}
		if err := os.WriteFile(*outputPath, pdf, 0o644); err != nil {
			log.Fatalf("write pdf: %v", err)
		}
	default:
		log.Fatalf("unknown format %q (want md, html, or pdf)", *format)
	}
}

func readJSON(path string, out any) error {
	blob, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(blob, out)
}

func writeOut(path string, data []byte) error {
	if path == "" {
		_, err := fmt.Print(string(data))
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
