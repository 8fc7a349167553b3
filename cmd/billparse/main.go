// Command billparse runs receipt text through the extraction engine and prints the result as JSON.
//
//	billparse --file receipt.txt
//	tesseract scan.jpg - -l vie+eng | billparse --pretty
//	billparse --image scan.jpg --categories
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/foxxcyber/billscan/internal/models"
	"github.com/foxxcyber/billscan/internal/services"
)

// output adds canonical categories alongside the engine result
type output struct {
	models.BillData
	Categories []string `json:"categories,omitempty"`
}

type options struct {
	file       string
	image      string
	languages  string
	pretty     bool
	categories bool
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := ff.NewFlagSet("billparse")
	var (
		file       = fs.StringLong("file", "", "Receipt text file (default: stdin)")
		image      = fs.StringLong("image", "", "Receipt image to OCR instead of reading text")
		languages  = fs.StringLong("ocr-lang", "vie+eng", "Tesseract languages used with --image")
		pretty     = fs.BoolLong("pretty", "Indent JSON output")
		categories = fs.BoolLong("categories", "Include the canonical category of each item")
	)
	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix("BILLPARSE")); err != nil {
		if errors.Is(err, ff.ErrHelp) {
			fmt.Fprintf(stdout, "%s\n", ffhelp.Flags(fs))
			return nil
		}
		return fmt.Errorf("%w\n%s", err, ffhelp.Flags(fs))
	}

	opts := options{
		file:       *file,
		image:      *image,
		languages:  *languages,
		pretty:     *pretty,
		categories: *categories,
	}

	text, err := readText(ctx, opts, stdin)
	if err != nil {
		return err
	}

	out := output{BillData: services.ParseText(text, services.SourceCLI)}
	if opts.categories {
		out.Categories = services.ItemCategories(out.BillData)
	}

	enc := json.NewEncoder(stdout)
	enc.SetEscapeHTML(false)
	if opts.pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}

func readText(ctx context.Context, opts options, stdin io.Reader) (string, error) {
	switch {
	case opts.image != "" && opts.file != "":
		return "", errors.New("--file and --image are mutually exclusive")
	case opts.image != "":
		data, err := os.ReadFile(opts.image)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", opts.image, err)
		}
		if len(data) == 0 {
			return "", services.ErrEmptyImage
		}

		prepared, err := services.PrepareForOCR(data, services.ImageContentType(opts.image, data))
		if err != nil {
			return "", fmt.Errorf("%w: %v", services.ErrUnreadableImage, err)
		}

		ocr, err := services.NewOCRService(opts.languages)
		if err != nil {
			return "", err
		}
		defer ocr.Close()

		result, err := ocr.ProcessImage(ctx, prepared)
		if err != nil {
			return "", err
		}
		return result.Text, nil
	case opts.file != "":
		data, err := os.ReadFile(opts.file)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", opts.file, err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
