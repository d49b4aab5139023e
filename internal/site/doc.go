// Package site defines the fixed set of site types the generator can scaffold
// and the request value that carries one scaffold invocation: the chosen type
// and the project name derived from it and the current time.
package site
