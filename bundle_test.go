package curly

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/robfig/curly/data"
	"github.com/robfig/curly/errortypes"
	"github.com/robfig/curly/template"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	var dir = t.TempDir()
	for name, content := range files {
		var path = filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := ioutil.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestBundleDir(t *testing.T) {
	var dir = writeFiles(t, map[string]string{
		"page.curly":         "<h1>{{title}}</h1>",
		"widgets/list.curly": "<ul>\n  {{each items}}\n    <li>{{@this}}{{suffix}}</li>\n  {{/each}}\n</ul>",
		"globals.txt":        "suffix = '!'\n",
		"notes.txt":          "{{if unclosed}}",
	})
	var bundle = NewBundle().
		JoinLines(true).
		AddGlobalsFile(filepath.Join(dir, "globals.txt")).
		AddTemplateDir(dir)
	var registry, err = bundle.Compile()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"page", "widgets/list"}, registry.Names()); diff != "" {
		t.Errorf("names (-want +got):\n%s", diff)
	}

	tofu, err := bundle.CompileToTofu()
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err = tofu.Render(&buf, "widgets/list", d{"items": []string{"a", "b"}}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "<ul><li>a!</li><li>b!</li></ul>" {
		t.Errorf("got %q", buf.String())
	}
}

func TestBundleTofu(t *testing.T) {
	var tofu, err = NewBundle().
		AddGlobalsMap(data.NewMap("brand", "Acme")).
		AddTemplateString("hello", "Hello {{name}} from {{brand}}").
		CompileToTofu()
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err = tofu.Render(&buf, "hello", d{"name": "Kim"}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "Hello Kim from Acme" {
		t.Errorf("got %q", buf.String())
	}
}

func TestBundleUnclosedBlock(t *testing.T) {
	var dir = writeFiles(t, map[string]string{
		"broken.curly": "<div>\n  {{if a}}\n    {{each items}}x{{/if}}\n</div>",
	})
	var filename = filepath.Join(dir, "broken.curly")
	var _, err = NewBundle().
		JoinLines(true).
		AddTemplateFile(filename).
		Compile()
	var pos = errortypes.ToErrFilePos(err)
	if pos == nil {
		t.Fatalf("expected positioned error, got %v", err)
	}
	if pos.File() != filename || pos.Line() != 3 || pos.Col() != 5 {
		t.Errorf("got %v", err)
	}
}

func TestBundleErrors(t *testing.T) {
	var tests = []struct {
		name   string
		bundle *Bundle
	}{
		{"duplicate global", NewBundle().
			AddGlobalsMap(data.NewMap("a", 1)).
			AddGlobalsMap(data.NewMap("a", 2))},
		{"duplicate template", NewBundle().
			AddTemplateString("a", "x").
			AddTemplateString("a", "y")},
		{"missing file", NewBundle().AddTemplateFile("does/not/exist.curly")},
		{"missing globals", NewBundle().AddGlobalsFile("does/not/exist.txt")},
		{"missing dir", NewBundle().AddTemplateDir("does/not/exist")},
	}
	for _, test := range tests {
		if _, err := test.bundle.Compile(); err == nil {
			t.Errorf("%s: expected error", test.name)
		}
	}
}

func TestBundleWatch(t *testing.T) {
	var dir = writeFiles(t, map[string]string{"a.curly": "one"})
	var updates = make(chan *template.Registry, 1)
	var bundle = NewBundle().
		WatchFiles(true).
		AddTemplateFile(filepath.Join(dir, "a.curly")).
		SetRecompilationCallback(func(r *template.Registry) {
			if tree, ok := r.Template("a"); !ok || tree.Source != "two" {
				return
			}
			select {
			case updates <- r:
			default:
			}
		})
	defer bundle.Close()
	if _, err := bundle.Compile(); err != nil {
		t.Fatal(err)
	}

	if err := ioutil.WriteFile(filepath.Join(dir, "a.curly"), []byte("two"), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case r := <-updates:
		if diff := cmp.Diff([]string{"a"}, r.Names()); diff != "" {
			t.Errorf("names (-want +got):\n%s", diff)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no recompilation after file change")
	}
}
