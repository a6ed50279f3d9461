// Package source provides driven.RecordSource implementations that read
// record lines from files, stdin or any io.Reader.
package source
