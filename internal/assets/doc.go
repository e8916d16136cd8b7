// Package assets loads page templates, one per layout.
//
// # Loader Architecture
//
//	TemplateLoader (interface)
//	    │
//	    ├── FilesystemLoader  - loads {dir}/{name}.{ext} from disk
//	    ├── EmbeddedLoader    - built-in templates compiled into the binary
//	    └── Resolver          - filesystem first, optional embedded fallback
//
// Templates are read on every call. Nothing is cached, so edits to a
// template take effect on the next run without restarting anything.
//
// # Directory Structure
//
//	{dir}/
//	└── {layout}.tmpltl
//
// The extension is configurable; "tmpltl" is the default.
//
// # Security
//
// Template names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within the template directory.
package assets
