/*
Package curly renders logic-light "{{ }}" templates against a context of
values and helpers.

Syntax

A template is literal text with tags.  Text that is not a well-formed tag is
copied through unchanged, and nothing is escaped.

  {{name}}                    a value from the context
  {{user.name}} {{list[i]}}   member and index access
  {{true}} {{3.5}}            literals
  {{helper arg1 arg2}}        a helper, called with its arguments resolved
  {{if a}}..{{elseif b}}..{{else}}..{{/if}}
  {{each items}}..{{@index}} {{@key}} {{@this}}..{{/each}}
  {{with expr as alias}}..{{alias}}..{{/with}}

A name that can not be resolved renders as the empty string.  A block opened
without a matching closer is an error, and no output is produced.

Usage example

For a single template:

  out, err := curly.Template(`<h1>{{title}}</h1>`, data.NewMap("title", "Hi"))

Typically in a web application you have a directory containing views for all
of your pages.  This code snippet will parse a file of globals, all templates
within app/views, and provide back a Tofu instance that can be used to render
any of them by name.  (Error checking is skipped.)

On startup:

  tofu, _ := curly.NewBundle().
      WatchFiles(mode == "dev").            // watch template files, reload on changes (in dev)
      JoinLines(true).                      // drop line breaks used for layout
      AddGlobalsFile("views/globals.txt").  // parse a file of globals
      AddTemplateDir("views").              // load *.curly in all sub-directories
      CompileToTofu()

To render a page:

  tofu.Render(resp, "account/overview", map[string]interface{}{
    "user":    user,
    "account": account,
  })

Go values are converted with data.New.  Go functions become helpers, so the
context may carry them alongside the data they work on.

Advanced Usage

The curly package provides a friendly interface to its sub-packages.  Use
curly/parse to inspect templates, and curly/render to evaluate expressions
or render with a custom set of helpers.
*/
package curly
