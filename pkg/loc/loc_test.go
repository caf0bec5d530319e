package loc

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/yeisme/gitloc/pkg/classify"
	"github.com/yeisme/gitloc/pkg/models"
	"github.com/yeisme/gitloc/pkg/repo"
	"github.com/yeisme/gitloc/pkg/repo/repotest"
	"github.com/yeisme/gitloc/pkg/report"
)

const (
	goSource = "package pkg\n\nfunc A() {}\n"
	pngHead  = "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"
)

func fixtureRepo(t *testing.T) *repo.Repository {
	t.Helper()
	g := repotest.NewMemory(t,
		repotest.Regular("main.py", "a\nb\n\n"),
		repotest.Regular("README.md", "# hi\n"),
		repotest.Regular("pkg/util.go", goSource),
		repotest.Regular("copy.go", goSource),
		repotest.Regular("logo.png", pngHead),
		repotest.Regular("data.bin", strings.Repeat("\x00", 100)),
		repotest.Symlink("link.py", "main.py"),
		repotest.Submodule("third_party/mod"),
	)
	return repo.FromGit(g)
}

func sumFiles(categories map[string]models.CountRecord) int {
	n := 0
	for _, r := range categories {
		n += r.Files
	}
	return n
}

func TestCountRepository_Language(t *testing.T) {
	rep, err := CountRepository(context.Background(), fixtureRepo(t), Options{CacheSize: DefaultCacheSize})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	want := map[string]models.CountRecord{
		"Python":        {Files: 1, Lines: 3, Blanks: 1, Bytes: 5},
		"Markdown":      {Files: 1, Lines: 1, Blanks: 0, Bytes: 5},
		"Go":            {Files: 2, Lines: 6, Blanks: 2, Bytes: 50},
		classify.Binary: {Files: 2, Lines: 0, Blanks: 0, Bytes: 116},
	}
	if !reflect.DeepEqual(rep.Categories, want) {
		t.Fatalf("categories %+v", rep.Categories)
	}
	if rep.Total != (models.CountRecord{Files: 6, Lines: 10, Blanks: 3, Bytes: 176}) {
		t.Fatalf("total %+v", rep.Total)
	}
	if rep.Revision != repo.HeadRevision || len(rep.Commit) != 40 || rep.GroupBy != "language" {
		t.Fatalf("report header %+v", rep)
	}
	// 符号链接与子模块不计入
	if sumFiles(rep.Categories) != 6 {
		t.Fatalf("files %d", sumFiles(rep.Categories))
	}
}

func TestCountRepository_Schemes(t *testing.T) {
	r := fixtureRepo(t)

	ext, err := CountRepository(context.Background(), r, Options{GroupBy: "extension"})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	wantFiles := map[string]int{"py": 1, "md": 1, "go": 2, "png": 1, "bin": 1}
	for k, n := range wantFiles {
		if ext.Categories[k].Files != n {
			t.Fatalf("extension %s files %d want %d", k, ext.Categories[k].Files, n)
		}
	}
	if ext.Categories["png"].Lines != 0 || ext.Categories["png"].Bytes != int64(len(pngHead)) {
		t.Fatalf("png record %+v", ext.Categories["png"])
	}

	mime, err := CountRepository(context.Background(), r, Options{GroupBy: "mime"})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if mime.Categories[classify.GroupText].Files != 4 || mime.Categories[classify.GroupImage].Files != 1 {
		t.Fatalf("mime categories %+v", mime.Categories)
	}
	if sumFiles(mime.Categories) != 6 {
		t.Fatalf("mime files %d", sumFiles(mime.Categories))
	}
}

func TestCountRepository_CacheDoesNotChangeCounts(t *testing.T) {
	r := fixtureRepo(t)
	without, err := CountRepository(context.Background(), r, Options{CacheSize: 0})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	with, err := CountRepository(context.Background(), r, Options{CacheSize: 1})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if !reflect.DeepEqual(without.Categories, with.Categories) {
		t.Fatalf("cache changed counts: %+v vs %+v", without.Categories, with.Categories)
	}
}

func TestCountRepository_Revisions(t *testing.T) {
	g := repotest.NewMemory(t, repotest.Regular("a.go", "package a\n"))
	repotest.Commit(t, g, "master", "second",
		repotest.Regular("a.go", "package a\n"),
		repotest.Regular("b.go", "package a\n\n"),
	)
	r := repo.FromGit(g)

	head, err := CountRepository(context.Background(), r, Options{})
	if err != nil || head.Total.Files != 2 {
		t.Fatalf("HEAD %+v %v", head, err)
	}
	prev, err := CountRepository(context.Background(), r, Options{Revision: "HEAD~1"})
	if err != nil || prev.Total.Files != 1 || prev.Revision != "HEAD~1" {
		t.Fatalf("HEAD~1 %+v %v", prev, err)
	}

	_, err = CountRepository(context.Background(), r, Options{Revision: "no-such-branch"})
	var re *repo.RevisionNotFoundError
	if !errors.As(err, &re) || re.Revision != "no-such-branch" {
		t.Fatalf("want RevisionNotFoundError, got %v", err)
	}
}

func TestCountRepository_Filters(t *testing.T) {
	rep, err := CountRepository(context.Background(), fixtureRepo(t), Options{
		Include: []string{"**/*.go", "*.py"},
		Exclude: []string{"pkg"},
	})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if rep.Total.Files != 3 || rep.Categories["Go"].Files != 2 {
		t.Fatalf("include should win over exclude: %+v", rep.Categories)
	}

	rep, err = CountRepository(context.Background(), fixtureRepo(t), Options{Exclude: []string{"pkg/", "*.bin"}})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if rep.Total.Files != 4 || rep.Categories["Go"].Files != 1 {
		t.Fatalf("exclude result %+v", rep.Categories)
	}
}

func TestCountRepository_InvalidOptions(t *testing.T) {
	_, err := CountRepository(context.Background(), nil, Options{GroupBy: "size"})
	var ge *classify.UnsupportedGroupByError
	if !errors.As(err, &ge) {
		t.Fatalf("want UnsupportedGroupByError, got %v", err)
	}
	_, err = CountRepository(context.Background(), nil, Options{Format: "xml"})
	var fe *report.UnsupportedFormatError
	if !errors.As(err, &fe) {
		t.Fatalf("want UnsupportedFormatError, got %v", err)
	}
	if err := (Options{CacheSize: -1}).Validate(); err == nil {
		t.Fatal("negative cache size should fail")
	}
	for _, o := range []Options{{Include: []string{"[bad"}}, {Exclude: []string{"pkg/["}}} {
		rep, err := CountRepository(context.Background(), fixtureRepo(t), o)
		if !errors.Is(err, doublestar.ErrBadPattern) || rep != nil {
			t.Fatalf("%+v: want ErrBadPattern and no report, got %v %+v", o, err, rep)
		}
	}
}

func TestCountRepository_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := CountRepository(ctx, fixtureRepo(t), Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestCountRepository_CustomTable(t *testing.T) {
	p := filepath.Join(t.TempDir(), "table.yaml")
	data := "version: test\nlanguages:\n  - name: Source\n    extensions: [.go, .py]\n"
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	rep, err := CountRepository(context.Background(), fixtureRepo(t), Options{Table: p})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if rep.Categories["Source"].Files != 3 {
		t.Fatalf("custom table categories %+v", rep.Categories)
	}
}

func TestExecute_OutputFile(t *testing.T) {
	dir := repotest.NewDisk(t, map[string]string{"main.py": "a\nb\n\n", "docs/readme.md": "# hi\n"})
	// 工作区中未提交的文件不参与统计
	if err := os.WriteFile(filepath.Join(dir, "scratch.py"), []byte("x\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	out := filepath.Join(t.TempDir(), "reports", "totals.csv")
	var buf bytes.Buffer
	err := Execute(context.Background(), Options{WorkingDir: dir, Format: "csv", Output: out}, &buf)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("writer should stay empty, got %q", buf.String())
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := "category,files,lines,blanks,bytes\nMarkdown,1,1,0,5\nPython,1,3,1,5\n"
	if string(data) != want {
		t.Fatalf("csv:\n%s", data)
	}
}

func TestWrite_FailureKeepsOutputUntouched(t *testing.T) {
	rep := &models.Report{Categories: map[string]models.CountRecord{"Go": {Files: 1, Lines: 3, Bytes: 20}}}
	dir := t.TempDir()

	fresh := filepath.Join(dir, "reports", "totals.xml")
	err := Write(context.Background(), rep, Options{Format: "xml", Output: fresh}, &bytes.Buffer{})
	var fe *report.UnsupportedFormatError
	if !errors.As(err, &fe) {
		t.Fatalf("want UnsupportedFormatError, got %v", err)
	}
	if _, err := os.Stat(fresh); !os.IsNotExist(err) {
		t.Fatalf("output file should not exist, stat err %v", err)
	}

	existing := filepath.Join(dir, "totals.csv")
	if err := os.WriteFile(existing, []byte("old\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := Write(context.Background(), rep, Options{Format: "xml", Output: existing}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error")
	}
	data, err := os.ReadFile(existing)
	if err != nil || string(data) != "old\n" {
		t.Fatalf("existing file changed: %q %v", data, err)
	}

	if err := Write(context.Background(), rep, Options{Format: "csv", Output: existing}, &bytes.Buffer{}); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, _ = os.ReadFile(existing)
	if string(data) != "category,files,lines,blanks,bytes\nGo,1,3,0,20\n" {
		t.Fatalf("csv:\n%s", data)
	}
}

func TestExecute_Writer(t *testing.T) {
	dir := repotest.NewDisk(t, map[string]string{"main.py": "a\nb\n\n"})
	var buf bytes.Buffer
	if err := Execute(context.Background(), Options{WorkingDir: filepath.Join(dir), Format: "json", Color: true}, &buf); err != nil {
		t.Fatalf("execute: %v", err)
	}
	// bytes.Buffer 不是终端，不会着色
	want := "{\n  \"Python\": {\n    \"files\": 1,\n    \"lines\": 3,\n    \"blanks\": 1,\n    \"bytes\": 5\n  }\n}\n"
	if buf.String() != want {
		t.Fatalf("json:\n%s", buf.String())
	}
}

func TestExecute_Errors(t *testing.T) {
	out := filepath.Join(t.TempDir(), "totals.csv")
	err := Execute(context.Background(), Options{WorkingDir: t.TempDir(), Output: out}, &bytes.Buffer{})
	var nf *repo.RepositoryNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("want RepositoryNotFoundError, got %v", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Fatal("no report should be written on failure")
	}

	dir := repotest.NewDisk(t, map[string]string{"main.py": "x\n"})
	err = Execute(context.Background(), Options{WorkingDir: dir, Revision: "v9"}, &bytes.Buffer{})
	var re *repo.RevisionNotFoundError
	if !errors.As(err, &re) {
		t.Fatalf("want RevisionNotFoundError, got %v", err)
	}
}
