// Package scaffold generates a new Next.js project for a site type. It powers
// the "sitegen create" command: it runs create-next-app, installs the
// animation dependency, and overwrites the page entry point and content
// component with the embedded templates. Every path is derived from the
// request's target directory; the process working directory never changes.
package scaffold
