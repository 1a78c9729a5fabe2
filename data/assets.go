//go:build dev
// +build dev

package data

import (
	"net/http"

	"github.com/shurcooL/httpfs/filter"
)

// Assets contains the default settings read from the package directory.
var Assets http.FileSystem = filter.Skip(http.Dir("."), filter.FilesWithExtensions(".go"))
