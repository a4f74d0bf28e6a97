// Package app holds the validated goesproc configuration and the dispatch
// from a processing mode to the pipeline that handles it, decoupled from
// any specific entrypoint like the CLI.
package app
