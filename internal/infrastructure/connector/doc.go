// Package connector stores uploaded files on the local filesystem or in Azure Blob Storage.
// Both backends use the same relative layout, e.g. "equipment/<uuid>.pdf".
package connector
