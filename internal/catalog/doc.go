// Package catalog holds the issue templates a report is synthesized from. The
// default catalog ships embedded as YAML; alternative catalogs load from disk
// and go through the same validation.
package catalog
