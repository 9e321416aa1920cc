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

package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"k8c.io/ingress-report/internal/ingress"
)

var sampleRecords = []ingress.Record{
	{
		Namespace: "default",
		Name:      "web",
		Hosts:     "app.example.com, www.example.com",
		Address:   "203.0.113.10",
		Ports:     "443, 8080",
	},
	{
		Namespace: "kube-system",
		Name:      "dashboard",
		Hosts:     "N/A",
		Address:   "",
		Ports:     "80",
	},
}

// parseTable reads the cell strings back out of a rendered pipe table,
// skipping the separator row. Used to verify cells survive verbatim.
func parseTable(t *testing.T, table string) [][]string {
	t.Helper()

	var rows [][]string
	for _, line := range strings.Split(strings.TrimRight(table, "\n"), "\n") {
		if !strings.HasPrefix(line, "|") {
			continue
		}
		if strings.HasPrefix(line, "|:") {
			continue
		}
		cells := strings.Split(strings.Trim(line, "|"), "|")
		parsed := make([]string, 0, len(cells))
		for _, cell := range cells {
			parsed = append(parsed, strings.TrimRight(strings.TrimPrefix(cell, " "), " "))
		}
		rows = append(rows, parsed)
	}
	return rows
}

func TestRenderReport_Heading(t *testing.T) {
	doc := RenderReport("cluster1-a", sampleRecords)

	if !strings.HasPrefix(doc, "# Ingress Summary for Cluster: cluster1-a\n\n") {
		t.Errorf("report heading wrong:\n%s", doc)
	}
}

func TestRenderReport_TableRoundTrip(t *testing.T) {
	doc := RenderReport("cluster1-a", sampleRecords)
	rows := parseTable(t, doc)

	if len(rows) != len(sampleRecords)+1 {
		t.Fatalf("parsed %d rows, want %d", len(rows), len(sampleRecords)+1)
	}

	header := rows[0]
	wantHeader := []string{"Namespace", "Name", "Hosts", "Address", "Ports"}
	for i, h := range wantHeader {
		if header[i] != h {
			t.Errorf("header[%d] = %q, want %q", i, header[i], h)
		}
	}

	for i, record := range sampleRecords {
		row := rows[i+1]
		cells := []string{record.Namespace, record.Name, record.Hosts, record.Address, record.Ports}
		for j, want := range cells {
			if row[j] != want {
				t.Errorf("row %d cell %d = %q, want %q", i, j, row[j], want)
			}
		}
	}
}

func TestRenderReport_EmptyRecords(t *testing.T) {
	doc := RenderReport("cluster1-a", nil)
	rows := parseTable(t, doc)

	// Header row only
	if len(rows) != 1 {
		t.Errorf("empty report parsed to %d rows, want 1", len(rows))
	}
}

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteReport(dir, "cluster1-a", sampleRecords)
	if err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}

	want := filepath.Join(dir, "cluster1-a_ingress.md")
	if path != want {
		t.Errorf("WriteReport() path = %s, want %s", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != RenderReport("cluster1-a", sampleRecords) {
		t.Error("written file differs from rendered report")
	}
}

func TestWriteReport_Overwrites(t *testing.T) {
	dir := t.TempDir()

	if _, err := WriteReport(dir, "cluster1-a", sampleRecords); err != nil {
		t.Fatal(err)
	}
	if _, err := WriteReport(dir, "cluster1-a", sampleRecords[:1]); err != nil {
		t.Fatalf("second WriteReport() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "cluster1-a_ingress.md"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "dashboard") {
		t.Error("second write did not overwrite the first report")
	}
}
