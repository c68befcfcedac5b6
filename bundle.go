package curly

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/robfig/curly/data"
	"github.com/robfig/curly/parse"
	"github.com/robfig/curly/render"
	"github.com/robfig/curly/template"
)

// Logger is used to print notifications and compile errors when using the
// "WatchFiles" feature.
var Logger = log.New(os.Stderr, "[curly] ", 0)

// Ext is the file extension of template files found by AddTemplateDir.
const Ext = ".curly"

type templateFile struct{ name, filename, content string }

// Bundle is a collection of template content (templates and globals).  It
// acts as input for the compiler.
type Bundle struct {
	files                 []templateFile
	globals               *data.Map
	joinLines             bool
	err                   error
	watcher               *fsnotify.Watcher
	recompilationCallback func(*template.Registry)
}

// NewBundle returns an empty bundle.
func NewBundle() *Bundle {
	return &Bundle{globals: data.NewMap()}
}

// WatchFiles tells the bundle to watch any template files added to it,
// re-compile as necessary, and propagate the updates to your tofu.  It should
// be called once, before adding any files.
func (b *Bundle) WatchFiles(watch bool) *Bundle {
	if watch && b.err == nil && b.watcher == nil {
		b.watcher, b.err = fsnotify.NewWatcher()
	}
	return b
}

// JoinLines tells the bundle to remove line breaks, and the indentation that
// follows them, from every template before it is compiled.
func (b *Bundle) JoinLines(join bool) *Bundle {
	b.joinLines = join
	return b
}

// AddTemplateDir adds all *.curly files found within the given directory
// (including sub-directories) to the bundle.  Each template is named by its
// slash-separated path relative to root, without the extension.
func (b *Bundle) AddTemplateDir(root string) *Bundle {
	var err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, Ext) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		b.addTemplateFile(filepath.ToSlash(strings.TrimSuffix(rel, Ext)), path)
		return nil
	})
	if err != nil {
		b.err = err
	}
	return b
}

// AddTemplateFile adds the given template file to this bundle, named by its
// base name without extension.  If WatchFiles is on, it will be subsequently
// watched for updates.
func (b *Bundle) AddTemplateFile(filename string) *Bundle {
	var base = filepath.Base(filename)
	return b.addTemplateFile(strings.TrimSuffix(base, filepath.Ext(base)), filename)
}

func (b *Bundle) addTemplateFile(name, filename string) *Bundle {
	content, err := ioutil.ReadFile(filename)
	if err != nil && b.err == nil {
		b.err = err
	}
	if b.err == nil && b.watcher != nil {
		b.err = b.watcher.Add(filename)
	}
	b.files = append(b.files, templateFile{name, filename, string(content)})
	return b
}

// AddTemplateString adds the given template to the bundle under name.
func (b *Bundle) AddTemplateString(name, content string) *Bundle {
	b.files = append(b.files, templateFile{name, "", content})
	return b
}

// AddGlobalsFile opens and parses the given filename for globals, and adds
// the resulting data map to the bundle.
func (b *Bundle) AddGlobalsFile(filename string) *Bundle {
	var f, err = os.Open(filename)
	if err != nil {
		b.err = err
		return b
	}
	defer f.Close()
	globals, err := ParseGlobals(f)
	if err != nil {
		b.err = fmt.Errorf("%s: %w", filename, err)
		return b
	}
	return b.AddGlobalsMap(globals)
}

// AddGlobalsMap adds the given globals to the bundle.  A global may only be
// defined once.
func (b *Bundle) AddGlobalsMap(globals *data.Map) *Bundle {
	for _, k := range globals.Keys() {
		if existing, ok := b.globals.Lookup(k); ok {
			b.err = fmt.Errorf("global %q already defined as %q", k, existing)
			return b
		}
		b.globals.Set(k, globals.Key(k))
	}
	return b
}

// SetRecompilationCallback assigns the bundle a function to call after
// recompilation.  This is called before updating the in-use registry.
func (b *Bundle) SetRecompilationCallback(c func(*template.Registry)) *Bundle {
	b.recompilationCallback = c
	return b
}

// Compile splits all of the templates in this bundle, verifies that every
// block is closed, and returns the completed template registry.
func (b *Bundle) Compile() (*template.Registry, error) {
	if b.err != nil {
		return nil, b.err
	}

	var registry = template.Registry{Globals: b.globals}
	for _, file := range b.files {
		var tree, err = b.parse(file)
		if err != nil {
			return nil, err
		}
		if err = registry.Add(tree); err != nil {
			return nil, err
		}
	}

	if b.watcher != nil {
		go b.recompiler(&registry)
	}
	return &registry, nil
}

// parse checks the file as written, so that errors point into it, before
// joining its lines.
func (b *Bundle) parse(file templateFile) (*parse.Tree, error) {
	var errName = file.filename
	if errName == "" {
		errName = file.name
	}
	var tree, err = parse.Parse(errName, file.content)
	if err != nil {
		return nil, err
	}
	if b.joinLines {
		if tree, err = parse.Parse(errName, parse.JoinLines(file.content)); err != nil {
			return nil, err
		}
	}
	tree.Name = file.name
	return tree, nil
}

// CompileToTofu returns a render.Tofu object that allows you to render the
// bundle's templates by name.
func (b *Bundle) CompileToTofu() (*render.Tofu, error) {
	var registry, err = b.Compile()
	if err != nil {
		return nil, err
	}
	return render.NewTofu(registry), nil
}

func (b *Bundle) recompiler(reg *template.Registry) {
	for {
		select {
		case ev, ok := <-b.watcher.Events:
			if !ok {
				return
			}
			// If it's a rename, then fsnotify has removed the watch.
			// Add it back, after a delay.
			if ev.Op&(fsnotify.Rename|fsnotify.Remove) != 0 {
				time.Sleep(10 * time.Millisecond)
				if err := b.watcher.Add(ev.Name); err != nil {
					Logger.Println(err)
				}
			}

			// Recompile all the templates.
			var bundle = NewBundle().
				JoinLines(b.joinLines).
				AddGlobalsMap(b.globals)
			for _, file := range b.files {
				if file.filename == "" {
					bundle.AddTemplateString(file.name, file.content)
				} else {
					bundle.addTemplateFile(file.name, file.filename)
				}
			}
			var registry, err = bundle.Compile()
			if err != nil {
				Logger.Println(err)
				continue
			}

			if b.recompilationCallback != nil {
				b.recompilationCallback(registry)
			}

			// update the existing template registry.
			// (this is not goroutine-safe, but that seems ok for a development aid,
			// as long as it works in practice)
			*reg = *registry
			Logger.Printf("update successful (%v)", ev)

		case err, ok := <-b.watcher.Errors:
			if !ok {
				return
			}
			Logger.Println(err)
		}
	}
}

// Close stops watching files.  The registries already compiled keep their
// last contents.
func (b *Bundle) Close() error {
	if b.watcher == nil {
		return nil
	}
	return b.watcher.Close()
}
