// Package budgetconfig loads budgeting configuration from files.
//
// The engine itself takes its configuration as an explicit argument and
// never touches the filesystem; this package is the optional file-backed
// front door for tools built on it. TOML, YAML, and JSON are supported,
// dispatched by extension:
//
//	f, err := budgetconfig.Load("docbudget.toml")
//	cfg, err := f.Config()     // budget.Config, tier preset + overrides
//	counter, err := f.Counter() // tokens.Counter per the estimator block
//	report, err := budget.Run(items, cfg, counter)
//
// A minimal file names a tier; everything else is optional:
//
//	tier = "comprehensive"
//
//	[category_weights]
//	"Core Concepts" = 5.0
//	"Examples" = 3.0
//
//	[estimator]
//	kind = "tiktoken"
//
// # Schema
//
// Schema exports a JSON Schema for the file format, for editor
// validation:
//
//	data, err := budgetconfig.Schema()
//
// # Watching
//
// Watch reloads the file on change, debounced, until the context is
// cancelled:
//
//	events, err := budgetconfig.Watch(ctx, "docbudget.toml")
//	for ev := range events {
//		if ev.Err != nil { ... } else { apply(ev.File) }
//	}
package budgetconfig
