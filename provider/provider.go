// Package provider defines the translation provider interface and implementations.
package provider

import "github.com/contextbridge/idiomate"

// Provider is the interface for translation backends.
// This is an alias to the main package interface for convenience.
type Provider = idiomate.Provider

// Request is an alias to the main package type.
type Request = idiomate.Request
