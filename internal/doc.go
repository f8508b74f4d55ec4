// Package internal contains the implementation packages for the diary server.
//
// # Package Organization
//
// The internal packages are organized by functional domain:
//
//   - diary: diaries, retrospects, emotions and the in-memory store
//   - theme: color and typography tokens, light and dark modes
//   - markup, components: HTML writer and the shared UI building blocks
//     (components, layout and modal markup lives in .templ files)
//   - layout, modal, pages: page chrome, dialogs and per-route bodies
//   - routes, pagination: route table metadata and page-window math
//   - config, logging, errors: viper configuration, slog logging, typed errors
//   - http, middleware, server: ServeMux routes, handler chain, request handlers
//   - watcher, websocket: data file watching and browser live reload
//
// # Inter-Package Communication
//
//   - Server owns the store and renders pages through layout and pages
//   - Watcher reports data file edits; server reloads the store
//   - The websocket manager tells open browsers to refresh after a reload
//   - UI state such as the open filter or modal travels in the query string
//
// # Security Considerations
//
//   - Config validates paths and ports before the server starts
//   - Middleware sets security headers and checks origins for CORS
//   - The websocket manager rejects upgrades from unknown origins
//   - Theme redirects only follow same-site relative paths
package internal

//go:generate templ generate
