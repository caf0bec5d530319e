package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/yeisme/gitloc/pkg/models"
)

func sampleReport() *models.Report {
	return &models.Report{
		Revision: "HEAD",
		GroupBy:  "language",
		Categories: map[string]models.CountRecord{
			"Python":   {Files: 1, Lines: 3, Blanks: 1, Bytes: 5},
			"Go":       {Files: 2, Lines: 14, Blanks: 2, Bytes: 160},
			"Markdown": {Files: 1, Lines: 1, Blanks: 0, Bytes: 8},
		},
		Total: models.CountRecord{Files: 4, Lines: 18, Blanks: 3, Bytes: 173},
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{"": FormatTable, "TABLE": FormatTable, "csv": FormatCSV, "json": FormatJSON, "yml": FormatYAML, "toml": FormatTOML}
	for in, want := range cases {
		if got, err := ParseFormat(in); err != nil || got != want {
			t.Fatalf("%q => %q %v", in, got, err)
		}
	}
	_, err := ParseFormat("xml")
	var fe *UnsupportedFormatError
	if !errors.As(err, &fe) || fe.Value != "xml" {
		t.Fatalf("want UnsupportedFormatError, got %v", err)
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Fatalf("no suggestion expected: %v", err)
	}

	_, err = ParseFormat("jsn")
	if err == nil || !strings.HasSuffix(err.Error(), `did you mean "json"?`) {
		t.Fatalf("want json suggestion, got %v", err)
	}
}

func TestRender_CSV(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleReport(), Options{Format: FormatCSV}); err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "category,files,lines,blanks,bytes\n" +
		"Go,2,14,2,160\n" +
		"Markdown,1,1,0,8\n" +
		"Python,1,3,1,5\n"
	if buf.String() != want {
		t.Fatalf("csv:\n%s", buf.String())
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil || len(records) != 4 {
		t.Fatalf("csv parse %v len %d", err, len(records))
	}
}

func TestRender_JSONRoundTrip(t *testing.T) {
	rep := sampleReport()
	var buf bytes.Buffer
	if err := Render(&buf, rep, Options{Format: FormatJSON}); err != nil {
		t.Fatalf("render: %v", err)
	}
	var got map[string]models.CountRecord
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got, rep.Categories) {
		t.Fatalf("round trip %+v", got)
	}
	if strings.Contains(buf.String(), TotalLabel) || strings.Contains(buf.String(), "total") {
		t.Fatal("json output should not carry totals")
	}
	// encoding/json 按键排序输出
	if strings.Index(buf.String(), `"Go"`) > strings.Index(buf.String(), `"Python"`) {
		t.Fatal("keys not sorted")
	}
}

func TestRender_YAMLAndTOML(t *testing.T) {
	rep := sampleReport()

	var ybuf bytes.Buffer
	if err := Render(&ybuf, rep, Options{Format: FormatYAML}); err != nil {
		t.Fatalf("render yaml: %v", err)
	}
	var ygot map[string]models.CountRecord
	if err := yaml.Unmarshal(ybuf.Bytes(), &ygot); err != nil {
		t.Fatalf("yaml unmarshal: %v", err)
	}
	if !reflect.DeepEqual(ygot, rep.Categories) {
		t.Fatalf("yaml round trip %+v", ygot)
	}

	var tbuf bytes.Buffer
	if err := Render(&tbuf, rep, Options{Format: FormatTOML}); err != nil {
		t.Fatalf("render toml: %v", err)
	}
	var tgot map[string]models.CountRecord
	if err := toml.Unmarshal(tbuf.Bytes(), &tgot); err != nil {
		t.Fatalf("toml unmarshal: %v", err)
	}
	if !reflect.DeepEqual(tgot, rep.Categories) {
		t.Fatalf("toml round trip %+v", tgot)
	}
}

func TestRender_Table(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleReport(), Options{Format: FormatTable, Width: 80}); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"CATEGORY", "BLANKS", "Go", "Markdown", "Python", TotalLabel, "173"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in\n%s", want, out)
		}
	}
	goIdx, mdIdx, pyIdx, totIdx := strings.Index(out, "Go"), strings.Index(out, "Markdown"), strings.Index(out, "Python"), strings.Index(out, TotalLabel)
	if goIdx >= mdIdx || mdIdx >= pyIdx || pyIdx >= totIdx {
		t.Fatalf("rows out of order:\n%s", out)
	}
}

func TestRender_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, &models.Report{}, Options{Format: FormatCSV}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.String() != "category,files,lines,blanks,bytes\n" {
		t.Fatalf("csv %q", buf.String())
	}
	buf.Reset()
	if err := Render(&buf, &models.Report{}, Options{Format: FormatJSON}); err != nil || buf.String() != "{}\n" {
		t.Fatalf("json %q %v", buf.String(), err)
	}
}

func TestRender_Unsupported(t *testing.T) {
	err := Render(&bytes.Buffer{}, sampleReport(), Options{Format: "xml"})
	var fe *UnsupportedFormatError
	if !errors.As(err, &fe) {
		t.Fatalf("want UnsupportedFormatError, got %v", err)
	}
}
