package main

import (
	"bytes"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/robfig/curly"
	"github.com/robfig/curly/render"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	var path = filepath.Join(dir, name)
	if err := ioutil.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	defer func() {
		dataFile, globalsFile, helperFiles, helperNames, joinLines = "", "", nil, nil, false
	}()
	var err = rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRenderCommand(t *testing.T) {
	var dir = t.TempDir()
	var tmpl = writeFile(t, dir, "greeting.curly", "<ul>\n  {{each people}}\n    <li>{{shout @this.name}}{{punct}}</li>\n  {{/each}}\n</ul>")
	var yaml = writeFile(t, dir, "data.yaml", "people:\n  - name: kim\n  - name: lee\n")
	var globals = writeFile(t, dir, "globals.txt", "punct = '!'\n")
	var helpers = writeFile(t, dir, "helpers.js", "function shout(s) { return s.toUpperCase(); }")

	var out, _, err = run(t, "render", tmpl,
		"--data", yaml,
		"--globals", globals,
		"--helpers", helpers,
		"--helper", "shout",
		"--join-lines")
	if err != nil {
		t.Fatal(err)
	}
	if out != "<ul><li>KIM!</li><li>LEE!</li></ul>" {
		t.Errorf("got %q", out)
	}
}

func TestCheckCommand(t *testing.T) {
	var dir = t.TempDir()
	var good = writeFile(t, dir, "good.curly", "{{if a}}x{{/if}}")
	var bad = writeFile(t, dir, "bad.curly", "line one\n{{each items}}")

	if _, _, err := run(t, "check", good); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	var _, stderr, err = run(t, "check", good, bad)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(stderr, bad+":2:1: each needs {{/each}} expression") {
		t.Errorf("unexpected output: %q", stderr)
	}
}

func TestServer(t *testing.T) {
	var dir = t.TempDir()
	var tmpl = writeFile(t, dir, "page.curly", "<p>{{greeting}}, {{name}}</p>")
	dataFile = writeFile(t, dir, "data.yaml", "greeting: Hello\nname: nobody\n")
	defer func() { dataFile = "" }()

	var handler = &server{
		name: "page",
		tofu: func() (*render.Tofu, error) { return curly.NewBundle().AddTemplateFile(tmpl).CompileToTofu() },
	}
	var rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/?name=Kim", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Body.String() != "<p>Hello, Kim</p>" {
		t.Errorf("got %q", rec.Body.String())
	}

	handler.name = "missing"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected an error status, got %d", rec.Code)
	}
}
