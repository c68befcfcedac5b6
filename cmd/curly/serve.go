package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/robfig/curly"
	"github.com/robfig/curly/data"
	"github.com/robfig/curly/render"
	"github.com/spf13/cobra"
)

var (
	port  int
	watch bool
)

var serveCmd = cobra.Command{
	Use:   "serve [template]",
	Short: "Serve a rendered template over HTTP, for development",
	Long: `Serve renders the template on every request.  Parameters may be
provided to the template in the URL query string; they are laid over the
--data file, if one is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var filename = args[0]
		var handler = &server{name: templateName(filename)}
		if watch {
			var bundle = curly.NewBundle().WatchFiles(true)
			defer bundle.Close()
			var tofu, err = compile(bundle, filename)
			if err != nil {
				return err
			}
			handler.tofu = func() (*render.Tofu, error) { return tofu, nil }
		} else {
			handler.tofu = func() (*render.Tofu, error) { return compile(curly.NewBundle(), filename) }
		}

		log.Printf("Listening on :%d...", port)
		return http.ListenAndServe(fmt.Sprintf(":%d", port), handler)
	},
}

type server struct {
	name string
	tofu func() (*render.Tofu, error)
}

func (s *server) ServeHTTP(res http.ResponseWriter, req *http.Request) {
	var tofu, err = s.tofu()
	if err != nil {
		http.Error(res, err.Error(), 500)
		return
	}

	ctx, err := loadData()
	if err != nil {
		http.Error(res, err.Error(), 500)
		return
	}
	var query = data.NewMap()
	for k, v := range req.URL.Query() {
		query.Set(k, data.String(v[0]))
	}

	var buf bytes.Buffer
	err = tofu.NewRenderer(s.name).Execute(&buf, ctx.Extend(query))
	if err != nil {
		http.Error(res, err.Error(), 500)
		return
	}

	res.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.Copy(res, &buf)
}
