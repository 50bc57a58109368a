// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values shared by the
dictionary client layers.

Categories:

  - Client Timing: default request timeout.
  - Stub Server: listener timeouts of the local dictionary stub.
  - API Resources: relative paths of the dictionary service endpoints.
  - Query Defaults: limits and offsets applied when the caller omits them.
  - Headers: names of the headers set on every outbound request.

Using this package keeps magic strings and numbers out of the domain code.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "dictionary-client"
	AppVersion = "0.1.0-dev"
)

// # Client Timing

const (
	// DefaultRequestTimeout bounds a single call to the dictionary service.
	DefaultRequestTimeout = 10 * time.Second
)

// # Stub Server

const (
	DefaultReadTimeout       = 15 * time.Second
	DefaultWriteTimeout      = 15 * time.Second
	DefaultIdleTimeout       = 60 * time.Second
	DefaultReadHeaderTimeout = 5 * time.Second

	// GlobalRequestTimeout bounds a single request handled by the stub.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long in-flight requests get on shutdown.
	ShutdownTimeout = 10 * time.Second
)

// # API Resources

const (
	// APIPathPrefix is inserted between the service URL and the API version.
	APIPathPrefix = "/api/v"

	PathTags       = "tags/"
	PathTag        = "tags/{type}/{id}/"
	PathTagsBulk   = "tags/bulk"
	PathSuggestion = "suggestions/"

	PathPermissionRole   = "permission/role/"
	PathPermissionRights = "permission/rights/"
)

// # Query Defaults

const (
	// DefaultTagLimit is the page size of batch tag lookups.
	DefaultTagLimit = 30

	// DefaultSuggestionLimit is the page size of suggestion queries.
	DefaultSuggestionLimit = 10

	// MaxLimit is the upper bound for any page size.
	MaxLimit = 100
)

// # Headers

const (
	HeaderXRequestID  = "X-Request-ID"
	HeaderContentType = "Content-Type"
	HeaderAccept      = "Accept"
	HeaderUserAgent   = "User-Agent"

	MIMEApplicationJSON = "application/json"
)

// # Query Parameter Names

const (
	ParamIDs            = "ids"
	ParamNames          = "names"
	ParamPaths          = "paths"
	ParamTypes          = "types"
	ParamLimit          = "limit"
	ParamOffset         = "offset"
	ParamWithParent     = "withParent"
	ParamSuggestionType = "suggestionType"
	ParamQuery          = "query"
	ParamParentIDs      = "parentIds"

	ParamUserID           = "userId"
	ParamAccessObjectType = "accessObjectType"
	ParamAccessObjectID   = "accessObjectId"
)
