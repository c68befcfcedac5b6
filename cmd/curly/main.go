// Command curly renders and checks templates.
//
//   curly render page.curly --data page.yaml
//   curly check views/*.curly
//   curly serve page.curly --watch
//
// Template data is read from a YAML file whose top level is a mapping.
// Helpers may be written in JavaScript and loaded with --helpers.
package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/robfig/curly"
	"github.com/robfig/curly/data"
	"github.com/robfig/curly/render"
	"github.com/robfig/curly/scripted"
	"github.com/spf13/cobra"
)

var (
	dataFile    string
	globalsFile string
	helperFiles []string
	helperNames []string
	joinLines   bool
)

var rootCmd = cobra.Command{
	Use:           "curly",
	Short:         "Render and check curly-brace templates",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var renderCmd = cobra.Command{
	Use:   "render [template]",
	Short: "Render a template file to standard output",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var tofu, err = compile(curly.NewBundle(), args[0])
		if err != nil {
			return err
		}
		ctx, err := loadData()
		if err != nil {
			return err
		}
		return tofu.NewRenderer(templateName(args[0])).Execute(cmd.OutOrStdout(), ctx)
	},
}

var checkCmd = cobra.Command{
	Use:   "check [template...]",
	Short: "Verify that every block in the given templates is closed",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var failed int
		for _, filename := range args {
			if _, err := curly.NewBundle().AddTemplateFile(filename).Compile(); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d templates failed", failed, len(args))
		}
		return nil
	},
}

// compile builds a tofu holding the named template file, along with the
// globals and helpers given on the command line.
func compile(bundle *curly.Bundle, filename string) (*render.Tofu, error) {
	bundle.JoinLines(joinLines).AddTemplateFile(filename)
	if globalsFile != "" {
		bundle.AddGlobalsFile(globalsFile)
	}
	var tofu, err = bundle.CompileToTofu()
	if err != nil {
		return nil, err
	}
	funcs, err := loadHelpers()
	if err != nil {
		return nil, err
	}
	return tofu.AddFuncs(funcs), nil
}

func loadHelpers() (map[string]data.Func, error) {
	if len(helperFiles) == 0 {
		return nil, nil
	}
	var sources []string
	for _, filename := range helperFiles {
		var src, err = ioutil.ReadFile(filename)
		if err != nil {
			return nil, err
		}
		sources = append(sources, string(src))
	}
	var vm, err = scripted.New(sources...)
	if err != nil {
		return nil, err
	}
	return vm.Funcs(helperNames...)
}

func loadData() (*data.Map, error) {
	if dataFile == "" {
		return data.NewMap(), nil
	}
	var f, err = os.Open(dataFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := data.ReadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", dataFile, err)
	}
	return m, nil
}

// templateName is the name a bundle gives to a template file.
func templateName(filename string) string {
	var base = filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globalsFile, "globals", "", "File of globals, one 'name = literal' per line")
	rootCmd.PersistentFlags().StringArrayVar(&helperFiles, "helpers", nil, "JavaScript file defining helper functions (repeatable)")
	rootCmd.PersistentFlags().StringArrayVar(&helperNames, "helper", nil, "Name of a JavaScript function to use as a helper (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&joinLines, "join-lines", false, "Remove line breaks and the indentation after them")

	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "YAML file holding the template data")

	rootCmd.AddCommand(&renderCmd)

	rootCmd.AddCommand(&checkCmd)

	serveCmd.Flags().IntVar(&port, "port", 9812, "Port on which to listen")
	serveCmd.Flags().BoolVar(&watch, "watch", false, "Recompile when the template file changes, instead of on every request")
	rootCmd.AddCommand(&serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
