// SPDX-License-Identifier: Apache-2.0

// Package args defines the typed command-line argument surface shared by
// the importer commands.
package args

import "flag"

// Args holds the recognized command-line flags. Fields are empty when
// the corresponding flag was not supplied.
type Args struct {
	// File is the local source to import (CSV or raw payload).
	File string
	// PayloadFile, when set, receives a local echo of every outgoing
	// JSON request body, for debugging and audit.
	PayloadFile string
	// OutputFile, when set, captures the pretty-printed JSON response
	// instead of rendering it to the console.
	OutputFile string
	// URL is the target API endpoint, relative to the configured base
	// URL or absolute.
	URL string
	// ContentType is the Content-Type header used for raw file uploads.
	ContentType string
}

// Parse parses arguments (normally os.Args[1:]) into an *Args.
//
// Flags:
//
//	-file source file to import
//	-payload-file local echo of the outgoing JSON body
//	-output-file local capture of the response JSON
//	-url target endpoint
//	-content-type content type for raw file uploads
func Parse(arguments []string) (*Args, error) {
	a := &Args{}

	fs := flag.NewFlagSet("dishctl", flag.ContinueOnError)
	fs.StringVar(&a.File, "file", "", "Source file to import")
	fs.StringVar(&a.PayloadFile, "payload-file", "", "Write the outgoing JSON body to this path")
	fs.StringVar(&a.OutputFile, "output-file", "", "Write the response JSON to this path")
	fs.StringVar(&a.URL, "url", "", "Target endpoint")
	fs.StringVar(&a.ContentType, "content-type", "application/json", "Content type for raw file uploads")

	if err := fs.Parse(arguments); err != nil {
		return nil, err
	}

	return a, nil
}

// Has reports whether the named flag was supplied with a non-empty
// value. Unknown names report false.
func (a *Args) Has(name string) bool {
	switch name {
	case "file":
		return a.File != ""
	case "payload-file":
		return a.PayloadFile != ""
	case "output-file":
		return a.OutputFile != ""
	case "url":
		return a.URL != ""
	case "content-type":
		return a.ContentType != ""
	default:
		return false
	}
}
