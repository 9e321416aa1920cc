/*
Copyright 2026 The KubeLB Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package output renders extracted ingress records as Markdown reports.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"k8c.io/ingress-report/internal/constants"
	"k8c.io/ingress-report/internal/ingress"
)

// tableHeaders is the fixed column set of a cluster report, matching the
// Record field order.
var tableHeaders = []string{"Namespace", "Name", "Hosts", "Address", "Ports"}

// RenderReport produces the full Markdown document for one cluster: a level-1
// heading followed by a pipe table with one row per record.
func RenderReport(clusterName string, records []ingress.Record) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Ingress Summary for Cluster: %s\n\n", clusterName))
	sb.WriteString(renderTable(records))
	sb.WriteString("\n")
	return sb.String()
}

// renderTable renders records as a Markdown pipe table with aligned columns.
// Cell content is written verbatim: never truncated or escaped.
func renderTable(records []ingress.Record) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{r.Namespace, r.Name, r.Hosts, r.Address, r.Ports})
	}

	widths := make([]int, len(tableHeaders))
	for i, h := range tableHeaders {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sb strings.Builder
	writeRow := func(cells []string) {
		sb.WriteString("|")
		for i, cell := range cells {
			sb.WriteString(fmt.Sprintf(" %-*s |", widths[i], cell))
		}
		sb.WriteString("\n")
	}

	writeRow(tableHeaders)

	sb.WriteString("|")
	for _, w := range widths {
		sb.WriteString(":" + strings.Repeat("-", w+1) + "|")
	}
	sb.WriteString("\n")

	for _, row := range rows {
		writeRow(row)
	}

	return sb.String()
}

// WriteReport renders the report for a cluster and writes it to
// {outputDir}/{cluster}_ingress.md, overwriting any previous run's file.
func WriteReport(outputDir, clusterName string, records []ingress.Record) (string, error) {
	path := filepath.Join(outputDir, clusterName+constants.ReportSuffix)
	content := RenderReport(clusterName, records)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write report for cluster %s: %w", clusterName, err)
	}
	return path, nil
}
