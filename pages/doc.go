// Package pages holds the handlers for the demo site: home, about, portfolio
// and contact. Each handler maps a request onto a template identifier and a
// typed context struct; rendering and routing belong to package core.
//
// The contexts carry JSON tags matching the keys the templates were written
// against, so /api/<page> exposes exactly what a template receives.
package pages
