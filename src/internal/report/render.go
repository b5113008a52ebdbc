// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"gopkg.in/yaml.v3"

	"github.com/H0llyW00dzZ/certlist2pem/src/internal/x509/pemblock"
)

// Format names an output layout.
type Format string

const (
	// FormatPEM prints Issuer/Subject lines followed by the PEM block of each certificate.
	FormatPEM Format = "pem"
	// FormatJSON prints an indented JSON array of certificates.
	FormatJSON Format = "json"
	// FormatYAML prints a YAML sequence of certificates.
	FormatYAML Format = "yaml"
	// FormatTable prints a markdown summary table without PEM bodies.
	FormatTable Format = "table"
)

// Formats lists every supported format name.
var Formats = []Format{FormatPEM, FormatJSON, FormatYAML, FormatTable}

// ParseFormat resolves a case-insensitive format name.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// document is the serialized shape of an entry in JSON and YAML output.
type document struct {
	Index   int    `json:"index" yaml:"index"`
	Issuer  string `json:"issuer" yaml:"issuer"`
	Subject string `json:"subject" yaml:"subject"`
	PEM     string `json:"pem" yaml:"pem"`
}

// Render writes entries to w in format f.
func Render(w io.Writer, f Format, entries []Entry) error {
	switch f {
	case FormatPEM, "":
		return renderPEM(w, entries)
	case FormatJSON:
		return renderJSON(w, entries)
	case FormatYAML:
		return renderYAML(w, entries)
	case FormatTable:
		return renderTable(w, entries)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

func renderPEM(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "Issuer: %s\nSubject: %s\n", e.Issuer, e.Subject); err != nil {
			return err
		}
		if err := pemblock.Write(w, pemblock.TypeCertificate, e.DER); err != nil {
			return err
		}
	}
	return nil
}

func documents(entries []Entry) []document {
	docs := make([]document, len(entries))
	for i, e := range entries {
		docs[i] = document{
			Index:   e.Index,
			Issuer:  e.Issuer,
			Subject: e.Subject,
			PEM:     string(pemblock.Encode(pemblock.TypeCertificate, e.DER)),
		}
	}
	return docs
}

func renderJSON(w io.Writer, entries []Entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(documents(entries))
}

func renderYAML(w io.Writer, entries []Entry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(documents(entries)); err != nil {
		return err
	}
	return enc.Close()
}

func renderTable(w io.Writer, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"#", "Issuer", "Subject", "Bytes"})

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.Itoa(e.Index),
			e.Issuer,
			e.Subject,
			strconv.Itoa(len(e.DER)),
		})
	}

	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}
